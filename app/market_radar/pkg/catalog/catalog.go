// Package catalog holds the static keyword table used by the mock source.
package catalog

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// builtin 内置关键词数据
var builtin = map[string]model.KeywordRecord{
	"人工智能": {
		PainPoints: []string{
			"技术门槛高，普通企业难以应用",
			"算法黑盒问题，缺乏可解释性",
			"数据隐私和安全风险较大",
		},
		Competitors: []string{
			"OpenAI - ChatGPT及GPT系列产品",
			"百度 - 文心一言和智能云服务",
			"阿里云 - 通义千问和AI解决方案",
		},
		Opportunities: []string{
			"垂直行业AI解决方案市场空白",
			"中小企业AI工具需求增长迅速",
			"AI+教育、医疗等细分领域机会",
		},
		Difficulty: model.DifficultyHigh,
		MarketSize: "1500亿人民币",
	},
	"新能源汽车": {
		PainPoints: []string{
			"充电基础设施不完善",
			"电池续航里程焦虑",
			"维修保养成本较高",
		},
		Competitors: []string{
			"特斯拉 - 全球电动车领导者",
			"比亚迪 - 国产新能源汽车龙头",
			"蔚来 - 高端智能电动汽车",
		},
		Opportunities: []string{
			"三四线城市市场渗透率低",
			"充电服务生态链机会",
			"二手新能源车市场待开发",
		},
		Difficulty: model.DifficultyHigh,
		MarketSize: "8000亿人民币",
	},
	"宠物经济": {
		PainPoints: []string{
			"宠物医疗费用过高",
			"优质宠物服务供给不足",
			"宠物食品安全问题频发",
		},
		Competitors: []string{
			"皇家 - 宠物食品知名品牌",
			"瑞鹏宠物 - 连锁宠物医院",
			"波奇网 - 宠物电商平台",
		},
		Opportunities: []string{
			"宠物保险市场刚起步",
			"智能宠物用品需求增长",
			"宠物社交和服务平台机会",
		},
		Difficulty: model.DifficultyMedium,
		MarketSize: "2000亿人民币",
	},
}

// Catalog 只读关键词表，创建后不再修改
type Catalog struct {
	records map[string]model.KeywordRecord
}

// Default 返回只包含内置数据的关键词表
func Default() *Catalog {
	return New(builtin)
}

// New 基于给定数据创建关键词表（会复制输入）
func New(records map[string]model.KeywordRecord) *Catalog {
	c := &Catalog{records: make(map[string]model.KeywordRecord, len(records))}
	for k, r := range records {
		c.records[k] = clone(r)
	}
	return c
}

// LoadFile 读取 YAML 文件中的额外关键词，覆盖到内置数据之上
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var extra map[string]model.KeywordRecord
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	merged := make(map[string]model.KeywordRecord, len(builtin)+len(extra))
	for k, r := range builtin {
		merged[k] = r
	}
	for k, r := range extra {
		if k == "" {
			return nil, fmt.Errorf("catalog %s: empty keyword", path)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: keyword %q: %w", path, k, err)
		}
		merged[k] = r
	}
	return New(merged), nil
}

// Lookup 查找关键词，返回记录副本
func (c *Catalog) Lookup(keyword string) (model.KeywordRecord, bool) {
	r, ok := c.records[keyword]
	if !ok {
		return model.KeywordRecord{}, false
	}
	return clone(r), true
}

// Keywords 返回已收录的关键词（已排序）
func (c *Catalog) Keywords() []string {
	keys := make([]string, 0, len(c.records))
	for k := range c.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clone(r model.KeywordRecord) model.KeywordRecord {
	return model.KeywordRecord{
		PainPoints:    slices.Clone(r.PainPoints),
		Competitors:   slices.Clone(r.Competitors),
		Opportunities: slices.Clone(r.Opportunities),
		Difficulty:    r.Difficulty,
		MarketSize:    r.MarketSize,
	}
}
