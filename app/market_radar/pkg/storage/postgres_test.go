package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "market"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=market sslmode=disable", dsn)
}

func TestRemoveNullBytes(t *testing.T) {
	assert.Equal(t, "ab", removeNullBytes("a\x00b"))
}

// 需要真实数据库：MARKET_RADAR_TEST_DSN="host=... dbname=..." go test ./...
func TestStorage_RoundTrip(t *testing.T) {
	dsn := os.Getenv("MARKET_RADAR_TEST_DSN")
	if dsn == "" {
		t.Skip("MARKET_RADAR_TEST_DSN not set")
	}

	s, err := Open(dsn)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	rec := &model.AnalysisRecord{
		Keyword: "人工智能",
		Data: model.AnalysisData{
			PainPoints:    []string{"a"},
			Competitors:   []string{"b"},
			Opportunities: []string{"c"},
			Difficulty:    model.DifficultyHigh,
			MarketSize:    "1500亿人民币",
			Suggestions:   []string{"d"},
		},
		Trend:  &model.TrendData{SearchVolume: 100000, Trend: model.TrendStable},
		Format: "markdown",
		Report: "# 人工智能",
	}
	require.NoError(t, s.SaveAnalysis(ctx, rec))
	require.NotEmpty(t, rec.ID)

	got, err := s.GetAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Data, got.Data)
	assert.Equal(t, rec.Trend, got.Trend)

	list, total, err := s.ListAnalyses(ctx, 1, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, list)
	assert.GreaterOrEqual(t, total, 1)

	_, err = s.GetAnalysis(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
