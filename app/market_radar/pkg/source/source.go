package source

import (
	"context"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// Source 定义四类相互独立的数据获取操作
type Source interface {
	// SearchKeywordTrends 搜索引擎趋势
	SearchKeywordTrends(ctx context.Context, keyword string) (*model.TrendData, error)
	// AnalyzePainPoints 社交媒体痛点分析
	AnalyzePainPoints(ctx context.Context, keyword string) ([]string, error)
	// AnalyzeCompetitors 竞品分析
	AnalyzeCompetitors(ctx context.Context, keyword string) ([]string, error)
	// AnalyzeMarketOpportunities 市场机会、规模与难度
	AnalyzeMarketOpportunities(ctx context.Context, keyword string) (*model.MarketData, error)
}
