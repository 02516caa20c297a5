package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/catalog"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/fallback"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/logger"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/report"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/source"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/source/mock"
)

// ErrAnalysisFailed 任一数据源失败时返回的统一错误
var ErrAnalysisFailed = errors.New("分析过程中出现错误，请稍后重试")

// Store 分析结果持久化
type Store interface {
	SaveAnalysis(ctx context.Context, rec *model.AnalysisRecord) error
}

// Engine 核心处理引擎
type Engine struct {
	cfg      *config.Config
	store    Store
	source   source.Source
	exporter *report.Exporter
	limiter  *rate.Limiter
}

// Option 引擎可选项
type Option func(*Engine)

// WithSource 替换数据源
func WithSource(s source.Source) Option {
	return func(e *Engine) { e.source = s }
}

// WithExporter 替换报告渲染器
func WithExporter(x *report.Exporter) Option {
	return func(e *Engine) { e.exporter = x }
}

// NewEngine 创建引擎实例，store 可为空
func NewEngine(cfg *config.Config, store Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:      cfg,
		store:    store,
		exporter: report.NewExporter(nil),
		limiter:  newLimiter(cfg.Concurrency),
	}
	for _, o := range opts {
		o(e)
	}

	if e.source == nil {
		c := catalog.Default()
		if cfg.CatalogFile != "" {
			loaded, err := catalog.LoadFile(cfg.CatalogFile)
			if err != nil {
				return nil, fmt.Errorf("关键词数据加载失败: %w", err)
			}
			c = loaded
		}
		e.source = mock.NewSource(c, fallback.NewGenerator(nil), cfg.Latency)
	}

	return e, nil
}

// Limit 设置为 RPM/60，Burst 设置为 QPS；RPM 未配置时不限流
func newLimiter(c config.ConcurrencyConfig) *rate.Limiter {
	burst := c.QPS
	if burst <= 0 {
		burst = 1
	}
	if c.RPM <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Limit(float64(c.RPM)/60.0), burst)
}

// PerformComprehensiveAnalysis 并发请求四个数据源并合并结果
func (e *Engine) PerformComprehensiveAnalysis(ctx context.Context, keyword string) (*model.AnalysisData, error) {
	data, _, err := e.analyze(ctx, keyword)
	return data, err
}

func (e *Engine) analyze(ctx context.Context, keyword string) (*model.AnalysisData, *model.TrendData, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		logger.ForKeyword(keyword).Errorf("analysis failed: limiter wait: %v", err)
		return nil, nil, ErrAnalysisFailed
	}

	var (
		trends      *model.TrendData
		painPoints  []string
		competitors []string
		market      *model.MarketData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		trends, err = e.source.SearchKeywordTrends(gctx, keyword)
		return err
	})
	g.Go(func() (err error) {
		painPoints, err = e.source.AnalyzePainPoints(gctx, keyword)
		return err
	})
	g.Go(func() (err error) {
		competitors, err = e.source.AnalyzeCompetitors(gctx, keyword)
		return err
	})
	g.Go(func() (err error) {
		market, err = e.source.AnalyzeMarketOpportunities(gctx, keyword)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.ForKeyword(keyword).Errorf("analysis failed: %v", err)
		return nil, nil, ErrAnalysisFailed
	}
	if market == nil || len(painPoints) == 0 || len(competitors) == 0 ||
		len(market.Opportunities) == 0 || !market.Difficulty.Valid() {
		logger.ForKeyword(keyword).Error("analysis failed: incomplete data from source")
		return nil, nil, ErrAnalysisFailed
	}

	data := &model.AnalysisData{
		PainPoints:    painPoints,
		Competitors:   competitors,
		Opportunities: market.Opportunities,
		Difficulty:    market.Difficulty,
		MarketSize:    market.MarketSize,
		Suggestions:   GenerateSuggestions(keyword, market.Difficulty),
	}
	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		b, _ := json.Marshal(data)
		logger.ForKeyword(keyword).Debugf("分析完成: %s", b)
	}
	return data, trends, nil
}

// RunOptions 运行选项
type RunOptions struct {
	Keywords         []string
	Format           string
	ProgressCallback func(status string, progress int)
}

// Run 批量分析关键词，渲染报告并在配置了存储时保存
func (e *Engine) Run(ctx context.Context, opts RunOptions) ([]*model.AnalysisRecord, error) {
	keywords := normalizeKeywords(opts.Keywords)
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords provided")
	}
	format := opts.Format
	if format == "" {
		format = report.FormatMarkdown
	}
	logger.Log.Infof("开始生成报告，包含 %d 个关键词", len(keywords))
	if opts.ProgressCallback != nil {
		opts.ProgressCallback("starting", 0)
	}

	records := make([]*model.AnalysisRecord, len(keywords))
	var mu sync.Mutex
	var wg sync.WaitGroup
	completed := 0

	for i, keyword := range keywords {
		wg.Add(1)
		go func(i int, keyword string) {
			defer wg.Done()

			data, trend, err := e.analyze(ctx, keyword)
			if err != nil {
				logger.ForKeyword(keyword).Errorf("分析关键词失败: %v", err)
				return
			}

			rendered, err := e.exporter.Render(format, keyword, data)
			if err != nil {
				logger.ForKeyword(keyword).Errorf("渲染报告失败: %v", err)
				return
			}

			rec := &model.AnalysisRecord{
				Keyword:   keyword,
				Data:      *data,
				Trend:     trend,
				Format:    format,
				Report:    rendered,
				CreatedAt: time.Now(),
			}
			if e.store != nil {
				if err := e.store.SaveAnalysis(ctx, rec); err != nil {
					logger.ForKeyword(keyword).Errorf("保存分析结果失败: %v", err)
				}
			}
			records[i] = rec

			mu.Lock()
			completed++
			progress := int(math.Round(float64(completed) / float64(len(keywords)) * 90))
			if opts.ProgressCallback != nil {
				opts.ProgressCallback(fmt.Sprintf("processed keyword: %s", keyword), progress)
			}
			mu.Unlock()
		}(i, keyword)
	}

	wg.Wait()

	out := records[:0]
	for _, rec := range records {
		if rec != nil {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no reports generated")
	}

	if opts.ProgressCallback != nil {
		opts.ProgressCallback("completed", 100)
	}
	return out, nil
}

// normalizeKeywords 去除空白与重复关键词，保持原有顺序
func normalizeKeywords(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, k := range in {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
