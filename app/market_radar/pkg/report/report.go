package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// 支持的导出格式
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

const (
	dateLayout     = "2006/1/2"
	dateTimeLayout = "2006/1/2 15:04:05"
)

// nextSteps 固定的下一步行动
var nextSteps = []string{
	"深入研究目标用户群体",
	"制作MVP原型验证假设",
	"寻找种子用户和早期反馈",
	"根据反馈迭代优化产品",
}

// Exporter 报告渲染器
type Exporter struct {
	now func() time.Time
}

// NewExporter 创建渲染器，now 为空时使用 time.Now
func NewExporter(now func() time.Time) *Exporter {
	if now == nil {
		now = time.Now
	}
	return &Exporter{now: now}
}

// ExportToMarkdown 使用当前时间渲染 Markdown 报告
func ExportToMarkdown(keyword string, data *model.AnalysisData) string {
	return NewExporter(nil).Markdown(keyword, data)
}

// Markdown 渲染 Markdown 报告
func (e *Exporter) Markdown(keyword string, data *model.AnalysisData) string {
	now := e.now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s行业商业机会分析报告\n\n", keyword)

	sb.WriteString("## 📊 市场概览\n")
	fmt.Fprintf(&sb, "- **市场规模**: %s\n", data.MarketSize)
	fmt.Fprintf(&sb, "- **进入难度**: %s\n", data.Difficulty)
	fmt.Fprintf(&sb, "- **分析时间**: %s\n\n", now.Format(dateLayout))

	writeSection(&sb, "## 🔥 市场痛点分析", data.PainPoints)
	writeSection(&sb, "## 💰 商业机会", data.Opportunities)
	writeSection(&sb, "## ⚡ 竞品格局", data.Competitors)
	writeSection(&sb, "## 💡 执行建议", data.Suggestions)

	sb.WriteString("## 🎯 下一步行动\n")
	for i, step := range nextSteps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}

	sb.WriteString("\n---\n")
	fmt.Fprintf(&sb, "*本报告由 MarketRadar 自动生成 | 生成时间: %s*\n", now.Format(dateTimeLayout))
	sb.WriteString("*📧 想要更深入的分析？联系我们获取定制报告*")

	return sb.String()
}

func writeSection(sb *strings.Builder, heading string, items []string) {
	sb.WriteString(heading)
	sb.WriteByte('\n')
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteByte('\n')
}

const htmlTpl = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{ .Keyword }}行业商业机会分析报告</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; line-height: 1.6; color: #333; }
        .section { border-bottom: 1px solid #eee; padding-bottom: 20px; margin-bottom: 20px; }
        .overview { background-color: #f9f9f9; padding: 15px; border-radius: 5px; border-left: 4px solid #3498db; }
        .footer { font-size: 0.9em; color: #7f8c8d; text-align: center; }
        h1 { text-align: center; color: #2c3e50; }
    </style>
</head>
<body>
    <h1>{{ .Keyword }}行业商业机会分析报告</h1>
    <div class="section overview">
        <h2>📊 市场概览</h2>
        <ul>
            <li><b>市场规模</b>: {{ .Data.MarketSize }}</li>
            <li><b>进入难度</b>: {{ .Data.Difficulty }}</li>
            <li><b>分析时间</b>: {{ .Date }}</li>
        </ul>
    </div>
    {{range .Sections}}
    <div class="section">
        <h2>{{ .Heading }}</h2>
        <ul>{{range .Items}}
            <li>{{ . }}</li>{{end}}
        </ul>
    </div>
    {{end}}
    <div class="section">
        <h2>🎯 下一步行动</h2>
        <ol>{{range .NextSteps}}
            <li>{{ . }}</li>{{end}}
        </ol>
    </div>
    <p class="footer">本报告由 MarketRadar 自动生成 | 生成时间: {{ .DateTime }}</p>
</body>
</html>`

var htmlTemplate = template.Must(template.New("report").Parse(htmlTpl))

type htmlSection struct {
	Heading string
	Items   []string
}

// HTML 渲染 HTML 报告
func (e *Exporter) HTML(keyword string, data *model.AnalysisData) (string, error) {
	now := e.now()
	view := struct {
		Keyword   string
		Data      *model.AnalysisData
		Date      string
		DateTime  string
		Sections  []htmlSection
		NextSteps []string
	}{
		Keyword:  keyword,
		Data:     data,
		Date:     now.Format(dateLayout),
		DateTime: now.Format(dateTimeLayout),
		Sections: []htmlSection{
			{Heading: "🔥 市场痛点分析", Items: data.PainPoints},
			{Heading: "💰 商业机会", Items: data.Opportunities},
			{Heading: "⚡ 竞品格局", Items: data.Competitors},
			{Heading: "💡 执行建议", Items: data.Suggestions},
		},
		NextSteps: nextSteps,
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return sb.String(), nil
}

// Render 按格式渲染报告
func (e *Exporter) Render(format, keyword string, data *model.AnalysisData) (string, error) {
	switch format {
	case FormatMarkdown, "md", "":
		return e.Markdown(keyword, data), nil
	case FormatHTML:
		return e.HTML(keyword, data)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}
}

// Ext 返回格式对应的文件扩展名
func Ext(format string) string {
	if format == FormatHTML {
		return ".html"
	}
	return ".md"
}
