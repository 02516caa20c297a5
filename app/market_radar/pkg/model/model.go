package model

import (
	"fmt"
	"time"
)

// Difficulty 市场进入难度
type Difficulty string

const (
	DifficultyLow    Difficulty = "低"
	DifficultyMedium Difficulty = "中"
	DifficultyHigh   Difficulty = "高"
)

// Difficulties 全部难度等级，按从低到高排列
var Difficulties = []Difficulty{DifficultyLow, DifficultyMedium, DifficultyHigh}

// Valid 判断是否为三种固定等级之一
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return true
	}
	return false
}

// Trend 搜索趋势
const (
	TrendRising = "rising"
	TrendStable = "stable"
)

// AnalysisData 综合分析结果
type AnalysisData struct {
	PainPoints    []string   `json:"painPoints"`    // 市场痛点
	Competitors   []string   `json:"competitors"`   // 竞品
	Opportunities []string   `json:"opportunities"` // 商业机会
	Difficulty    Difficulty `json:"difficulty"`    // 进入难度
	MarketSize    string     `json:"marketSize"`    // 市场规模
	Suggestions   []string   `json:"suggestions"`   // 执行建议
}

// KeywordRecord 静态关键词数据
type KeywordRecord struct {
	PainPoints    []string   `yaml:"pain_points"`
	Competitors   []string   `yaml:"competitors"`
	Opportunities []string   `yaml:"opportunities"`
	Difficulty    Difficulty `yaml:"difficulty"`
	MarketSize    string     `yaml:"market_size"`
}

// Validate 校验记录：列表非空，难度合法
func (r KeywordRecord) Validate() error {
	if len(r.PainPoints) == 0 {
		return fmt.Errorf("pain_points is empty")
	}
	if len(r.Competitors) == 0 {
		return fmt.Errorf("competitors is empty")
	}
	if len(r.Opportunities) == 0 {
		return fmt.Errorf("opportunities is empty")
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q", r.Difficulty)
	}
	if r.MarketSize == "" {
		return fmt.Errorf("market_size is empty")
	}
	return nil
}

// TrendData 关键词搜索趋势
type TrendData struct {
	SearchVolume    int      `json:"searchVolume"`
	Trend           string   `json:"trend"`
	RelatedKeywords []string `json:"relatedKeywords"`
}

// MarketData 市场机会分析结果
type MarketData struct {
	Opportunities []string
	MarketSize    string
	Difficulty    Difficulty
}

// AnalysisRecord 一次分析的存档
type AnalysisRecord struct {
	ID        string       `json:"id"`
	Keyword   string       `json:"keyword"`
	Data      AnalysisData `json:"data"`
	Trend     *TrendData   `json:"trend,omitempty"`
	Format    string       `json:"format,omitempty"` // markdown or html
	Report    string       `json:"report,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
