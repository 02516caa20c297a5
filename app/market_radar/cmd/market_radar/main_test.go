package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
)

func TestApplyOverrides(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())

	require.NoError(t, applyOverrides(cfg, "html", "out"))
	assert.Equal(t, "html", cfg.Output.Format)
	assert.Equal(t, "out", cfg.Output.Dir)

	require.NoError(t, applyOverrides(cfg, "", ""))
	assert.Equal(t, "html", cfg.Output.Format)

	assert.Error(t, applyOverrides(cfg, "pdf", ""))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "AI_机器人_2026", fileName("AI/机器人 2026"))
	assert.Equal(t, "宠物经济", fileName("宠物经济"))
}
