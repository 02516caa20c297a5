package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	Keywords    []string          `yaml:"keywords"`
	CatalogFile string            `yaml:"catalog_file"` // 额外关键词数据，可选
	Latency     LatencyConfig     `yaml:"latency"`
	Output      OutputConfig      `yaml:"output"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	DB          DBConfig          `yaml:"db"`
}

// LatencyConfig 模拟数据源的延迟
type LatencyConfig struct {
	Trends        time.Duration `yaml:"trends"`
	PainPoints    time.Duration `yaml:"pain_points"`
	Competitors   time.Duration `yaml:"competitors"`
	Opportunities time.Duration `yaml:"opportunities"`
}

// DefaultLatency 默认模拟延迟
var DefaultLatency = LatencyConfig{
	Trends:        800 * time.Millisecond,
	PainPoints:    600 * time.Millisecond,
	Competitors:   700 * time.Millisecond,
	Opportunities: 900 * time.Millisecond,
}

// OutputConfig 报告输出配置
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // markdown or html
}

// DBConfig 数据库相关配置
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"` // <= 0 表示不限流
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{Latency: DefaultLatency}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验配置并填充默认值
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		c.Output.Dir = "reports"
	}
	switch c.Output.Format {
	case "":
		c.Output.Format = "markdown"
	case "markdown", "html":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.DB.Host != "" && c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	l := c.Latency
	if l.Trends < 0 || l.PainPoints < 0 || l.Competitors < 0 || l.Opportunities < 0 {
		return fmt.Errorf("latency must not be negative")
	}
	return nil
}
