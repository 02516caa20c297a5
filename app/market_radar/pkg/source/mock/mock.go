// Package mock serves canned market data from the keyword catalog, falling
// back to templated text for unknown keywords.
package mock

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/catalog"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/fallback"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/logger"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/source"
)

// 查询结果
const (
	outcomeResolved = "resolved"
	outcomeFallback = "fallback"
)

// Source 基于静态关键词表的模拟数据源
type Source struct {
	catalog   *catalog.Catalog
	generator *fallback.Generator
	latency   config.LatencyConfig
}

var _ source.Source = (*Source)(nil)

// NewSource 创建模拟数据源
func NewSource(c *catalog.Catalog, g *fallback.Generator, latency config.LatencyConfig) *Source {
	if c == nil {
		c = catalog.Default()
	}
	if g == nil {
		g = fallback.NewGenerator(nil)
	}
	return &Source{catalog: c, generator: g, latency: latency}
}

// SearchKeywordTrends implements source.Source
func (s *Source) SearchKeywordTrends(ctx context.Context, keyword string) (*model.TrendData, error) {
	if err := sleep(ctx, s.latency.Trends); err != nil {
		return nil, err
	}
	return s.generator.Trend(keyword), nil
}

// AnalyzePainPoints implements source.Source
func (s *Source) AnalyzePainPoints(ctx context.Context, keyword string) ([]string, error) {
	if err := sleep(ctx, s.latency.PainPoints); err != nil {
		return nil, err
	}
	if r, ok := s.lookup(keyword, "pain_points"); ok {
		return r.PainPoints, nil
	}
	return s.generator.PainPoints(keyword), nil
}

// AnalyzeCompetitors implements source.Source
func (s *Source) AnalyzeCompetitors(ctx context.Context, keyword string) ([]string, error) {
	if err := sleep(ctx, s.latency.Competitors); err != nil {
		return nil, err
	}
	if r, ok := s.lookup(keyword, "competitors"); ok {
		return r.Competitors, nil
	}
	return s.generator.Competitors(keyword), nil
}

// AnalyzeMarketOpportunities implements source.Source
func (s *Source) AnalyzeMarketOpportunities(ctx context.Context, keyword string) (*model.MarketData, error) {
	if err := sleep(ctx, s.latency.Opportunities); err != nil {
		return nil, err
	}
	if r, ok := s.lookup(keyword, "opportunities"); ok {
		return &model.MarketData{
			Opportunities: r.Opportunities,
			MarketSize:    r.MarketSize,
			Difficulty:    r.Difficulty,
		}, nil
	}
	return s.generator.Market(keyword), nil
}

func (s *Source) lookup(keyword, op string) (model.KeywordRecord, bool) {
	r, ok := s.catalog.Lookup(keyword)
	outcome := outcomeFallback
	if ok {
		outcome = outcomeResolved
	}
	logger.ForKeyword(keyword).WithFields(logrus.Fields{logger.FieldOp: op, "outcome": outcome}).Debug("关键词查询")
	return r, ok
}

// sleep 模拟接口延迟，可被 ctx 取消
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
