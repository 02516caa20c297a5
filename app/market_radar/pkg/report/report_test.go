package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

func sampleData() *model.AnalysisData {
	return &model.AnalysisData{
		PainPoints:    []string{"痛点一", "痛点二"},
		Competitors:   []string{"竞品甲"},
		Opportunities: []string{"机会A", "机会B", "机会C"},
		Difficulty:    model.DifficultyMedium,
		MarketSize:    "2000亿人民币",
		Suggestions:   []string{"建议1", "建议2", "建议3", "建议4"},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMarkdown_ContainsEveryItem(t *testing.T) {
	data := sampleData()
	md := NewExporter(fixedClock(time.Date(2026, 3, 5, 9, 8, 7, 0, time.Local))).Markdown("宠物经济", data)

	lines := strings.Split(md, "\n")
	assert.Equal(t, "# 宠物经济行业商业机会分析报告", lines[0])

	for _, list := range [][]string{data.PainPoints, data.Competitors, data.Opportunities, data.Suggestions} {
		for _, item := range list {
			assert.Contains(t, lines, "- "+item)
		}
	}
	assert.Contains(t, md, "- **市场规模**: 2000亿人民币")
	assert.Contains(t, md, "- **进入难度**: 中")
	assert.Contains(t, md, "- **分析时间**: 2026/3/5")
	assert.Contains(t, md, "生成时间: 2026/3/5 09:08:07")
	assert.Contains(t, md, "1. 深入研究目标用户群体")
}

func TestMarkdown_Sections(t *testing.T) {
	md := NewExporter(nil).Markdown("人工智能", sampleData())

	order := []string{"## 📊 市场概览", "## 🔥 市场痛点分析", "## 💰 商业机会", "## ⚡ 竞品格局", "## 💡 执行建议", "## 🎯 下一步行动"}
	last := -1
	for _, h := range order {
		idx := strings.Index(md, h)
		require.GreaterOrEqual(t, idx, 0, h)
		assert.Greater(t, idx, last, h)
		last = idx
	}
}

func TestMarkdown_IdempotentExceptTime(t *testing.T) {
	data := sampleData()
	first := NewExporter(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))).Markdown("茶饮", data)
	second := NewExporter(fixedClock(time.Date(2027, 6, 30, 23, 59, 59, 0, time.Local))).Markdown("茶饮", data)
	again := NewExporter(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))).Markdown("茶饮", data)

	assert.Equal(t, first, again)

	a := strings.Split(first, "\n")
	b := strings.Split(second, "\n")
	require.Equal(t, len(a), len(b))
	for i := range a {
		if strings.Contains(a[i], "分析时间") || strings.Contains(a[i], "生成时间") {
			assert.NotEqual(t, a[i], b[i])
			continue
		}
		assert.Equal(t, a[i], b[i])
	}
}

func TestExportToMarkdown(t *testing.T) {
	md := ExportToMarkdown("新能源汽车", sampleData())
	assert.True(t, strings.HasPrefix(md, "# 新能源汽车行业商业机会分析报告"))
}

func TestHTML_EscapesAndLists(t *testing.T) {
	data := sampleData()
	data.PainPoints = append(data.PainPoints, "<script>")

	out, err := NewExporter(nil).HTML("宠物经济", data)
	require.NoError(t, err)

	assert.Contains(t, out, "<title>宠物经济行业商业机会分析报告</title>")
	assert.Contains(t, out, "<li>机会B</li>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<li><script></li>")
}

func TestRender(t *testing.T) {
	e := NewExporter(nil)

	md, err := e.Render(FormatMarkdown, "人工智能", sampleData())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "# 人工智能"))

	_, err = e.Render("pdf", "人工智能", sampleData())
	assert.Error(t, err)

	assert.Equal(t, ".html", Ext(FormatHTML))
	assert.Equal(t, ".md", Ext(FormatMarkdown))
}
