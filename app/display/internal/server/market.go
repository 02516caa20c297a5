package server

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/market_radar/app/display/internal/conf"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/engine"
	mrLogger "github.com/iWorld-y/market_radar/app/market_radar/pkg/logger"
)

// NewMarketEngine 初始化 market_radar 引擎
func NewMarketEngine(c *conf.Market, logger log.Logger) (*engine.Engine, func(), error) {
	helper := log.NewHelper(logger)
	cfg, err := toConfig(c)
	if err != nil {
		return nil, nil, err
	}

	if err := mrLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init market_radar logger: %v", err)
		_ = mrLogger.InitLogger("info", "") // 降级处理
	}

	// 历史记录由 data 层负责，引擎本身不做持久化
	eng, err := engine.NewEngine(cfg, nil)
	if err != nil {
		helper.Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		helper.Info("Cleaning up market_radar engine")
	}
	return eng, cleanup, nil
}

// toConfig 将 internal/conf.Market 转换为 pkg/config.Config
func toConfig(c *conf.Market) (*config.Config, error) {
	cfg := &config.Config{Latency: config.DefaultLatency}
	if c == nil {
		return cfg, cfg.Validate()
	}

	cfg.CatalogFile = c.CatalogFile
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{QPS: int(c.Concurrency.Qps), RPM: int(c.Concurrency.Rpm)}
	}
	if l := c.Latency; l != nil {
		fields := []struct {
			raw string
			dst *time.Duration
		}{
			{l.Trends, &cfg.Latency.Trends},
			{l.PainPoints, &cfg.Latency.PainPoints},
			{l.Competitors, &cfg.Latency.Competitors},
			{l.Opportunities, &cfg.Latency.Opportunities},
		}
		for _, f := range fields {
			if f.raw == "" {
				continue
			}
			d, err := time.ParseDuration(f.raw)
			if err != nil {
				return nil, err
			}
			*f.dst = d
		}
	}
	return cfg, cfg.Validate()
}
