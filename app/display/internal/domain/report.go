package domain

import (
	"time"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// ReportSummary 历史报告摘要
type ReportSummary struct {
	ID         string           `json:"id"`
	Keyword    string           `json:"keyword"`
	Difficulty model.Difficulty `json:"difficulty"`
	MarketSize string           `json:"marketSize"`
	CreatedAt  string           `json:"createdAt"`
}

// Summarize 由存档生成摘要
func Summarize(rec *model.AnalysisRecord) *ReportSummary {
	return &ReportSummary{
		ID:         rec.ID,
		Keyword:    rec.Keyword,
		Difficulty: rec.Data.Difficulty,
		MarketSize: rec.Data.MarketSize,
		CreatedAt:  rec.CreatedAt.Format(time.DateTime),
	}
}

// ReportList 分页结果
type ReportList struct {
	Reports []*ReportSummary `json:"reports"`
	Total   int              `json:"total"`
}
