package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/engine"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/logger"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/report"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/storage"
)

var (
	flagconf   string
	flagFormat string
	flagOut    string
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/market_radar/configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagFormat, "format", "", "report format: markdown or html (overrides config)")
	flag.StringVar(&flagOut, "out", "", "output directory (overrides config)")
}

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}
	if err := applyOverrides(cfg, flagFormat, flagOut); err != nil {
		log.Fatalf("配置错误: %v", err)
	}

	// 命令行参数优先于配置中的关键词
	keywords := cfg.Keywords
	if flag.NArg() > 0 {
		keywords = flag.Args()
	}
	if len(keywords) == 0 {
		log.Fatal("配置错误: 未设置分析关键词 (keywords)")
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动市场雷达...")

	ctx := context.Background()

	// 3. 如果配置了数据库信息，则尝试连接
	var store engine.Store
	if cfg.DB.Host != "" {
		s, err := storage.NewStorage(cfg.DB)
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅生成报告文件。", err)
		} else {
			store = s
			defer s.Close()
			logger.Log.Info("已成功连接到数据库")
		}
	} else {
		logger.Log.Info("未配置数据库信息，跳过数据库连接")
	}

	// 4. 初始化引擎
	eng, err := engine.NewEngine(cfg, store)
	if err != nil {
		logger.Log.Fatalf("引擎初始化失败: %v", err)
	}

	records, err := eng.Run(ctx, engine.RunOptions{
		Keywords: keywords,
		Format:   cfg.Output.Format,
		ProgressCallback: func(status string, progress int) {
			logger.Log.Infof("[%3d%%] %s", progress, status)
		},
	})
	if err != nil {
		logger.Log.Fatalf("生成报告失败: %v", err)
	}

	// 5. 写入报告文件
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Log.Fatalf("无法创建输出目录: %v", err)
	}
	for _, rec := range records {
		path := filepath.Join(cfg.Output.Dir, fileName(rec.Keyword)+report.Ext(rec.Format))
		if err := os.WriteFile(path, []byte(rec.Report), 0o644); err != nil {
			logger.Log.Errorf("写入报告失败 [%s]: %v", rec.Keyword, err)
			continue
		}
		logger.Log.Infof("✅ 报告已生成: %s", path)
	}
}

// applyOverrides 应用命令行参数并重新校验配置
func applyOverrides(cfg *config.Config, format, out string) error {
	if format != "" {
		cfg.Output.Format = format
	}
	if out != "" {
		cfg.Output.Dir = out
	}
	return cfg.Validate()
}

// fileName 将关键词转换为安全的文件名
func fileName(keyword string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, keyword)
}
