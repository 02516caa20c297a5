package fallback

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// RandSource 伪随机数来源，测试时可替换为确定性实现
type RandSource interface {
	// Intn 返回 [0, n) 内的整数
	Intn(n int) int
}

// Generator 未收录关键词的模板数据生成器
type Generator struct {
	mu  sync.Mutex
	rnd RandSource
}

// NewGenerator 创建生成器，rnd 为空时使用按时间播种的随机源
func NewGenerator(rnd RandSource) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

// PainPoints 通用痛点
func (g *Generator) PainPoints(keyword string) []string {
	return []string{
		fmt.Sprintf("%s行业成本控制困难", keyword),
		fmt.Sprintf("%s产品同质化严重", keyword),
		fmt.Sprintf("%s用户体验有待提升", keyword),
	}
}

// Competitors 通用竞品
func (g *Generator) Competitors(keyword string) []string {
	return []string{
		fmt.Sprintf("%s领域头部企业A", keyword),
		fmt.Sprintf("%s创新型公司B", keyword),
		fmt.Sprintf("%s传统转型企业C", keyword),
	}
}

// Opportunities 通用市场机会
func (g *Generator) Opportunities(keyword string) []string {
	return []string{
		fmt.Sprintf("%s下沉市场潜力巨大", keyword),
		fmt.Sprintf("%s技术创新带来新机会", keyword),
		fmt.Sprintf("%s政策支持力度加大", keyword),
	}
}

// MarketSize 随机市场规模，范围 100-1099 亿
func (g *Generator) MarketSize() string {
	return fmt.Sprintf("%d亿人民币", g.intn(1000)+100)
}

// Difficulty 随机进入难度
func (g *Generator) Difficulty() model.Difficulty {
	return model.Difficulties[g.intn(len(model.Difficulties))]
}

// Market 组合机会、规模和难度
func (g *Generator) Market(keyword string) *model.MarketData {
	return &model.MarketData{
		Opportunities: g.Opportunities(keyword),
		MarketSize:    g.MarketSize(),
		Difficulty:    g.Difficulty(),
	}
}

// Trend 随机搜索趋势
func (g *Generator) Trend(keyword string) *model.TrendData {
	trend := model.TrendStable
	if g.intn(2) == 1 {
		trend = model.TrendRising
	}
	return &model.TrendData{
		SearchVolume: g.intn(1000000) + 100000,
		Trend:        trend,
		RelatedKeywords: []string{
			keyword + "市场",
			keyword + "前景",
			keyword + "投资",
		},
	}
}
