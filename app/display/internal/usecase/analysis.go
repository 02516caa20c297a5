package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/market_radar/app/display/internal/domain"
	"github.com/iWorld-y/market_radar/app/display/internal/repo"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/engine"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/report"
)

// Analyzer 综合分析能力，由 engine.Engine 提供
type Analyzer interface {
	PerformComprehensiveAnalysis(ctx context.Context, keyword string) (*model.AnalysisData, error)
}

// AnalysisUseCase 市场分析业务逻辑
type AnalysisUseCase struct {
	analyzer Analyzer
	repo     repo.ReportRepo
	exporter *report.Exporter
	log      *log.Helper
}

// NewAnalysisUseCase 创建市场分析业务逻辑实例
func NewAnalysisUseCase(analyzer Analyzer, repo repo.ReportRepo, logger log.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		analyzer: analyzer,
		repo:     repo,
		exporter: report.NewExporter(nil),
		log:      log.NewHelper(logger),
	}
}

// Analyze 执行综合分析并存档
func (uc *AnalysisUseCase) Analyze(ctx context.Context, keyword string) (*model.AnalysisData, error) {
	data, _, err := uc.analyzeAndSave(ctx, keyword, report.FormatMarkdown)
	return data, err
}

// Export 分析并按格式渲染报告，存档内容与返回内容一致
func (uc *AnalysisUseCase) Export(ctx context.Context, keyword, format string) (string, error) {
	switch format {
	case "":
		format = report.FormatMarkdown
	case report.FormatMarkdown, report.FormatHTML:
	default:
		return "", kerrors.BadRequest("UNKNOWN_FORMAT", "format must be markdown or html")
	}

	_, out, err := uc.analyzeAndSave(ctx, keyword, format)
	return out, err
}

func (uc *AnalysisUseCase) analyzeAndSave(ctx context.Context, keyword, format string) (*model.AnalysisData, string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, "", kerrors.BadRequest("KEYWORD_REQUIRED", "keyword is required")
	}

	data, err := uc.analyzer.PerformComprehensiveAnalysis(ctx, keyword)
	if err != nil {
		if errors.Is(err, engine.ErrAnalysisFailed) {
			return nil, "", kerrors.InternalServer("ANALYSIS_FAILED", err.Error())
		}
		return nil, "", err
	}

	out, err := uc.exporter.Render(format, keyword, data)
	if err != nil {
		return nil, "", kerrors.InternalServer("RENDER_FAILED", err.Error())
	}

	rec := &model.AnalysisRecord{
		Keyword:   keyword,
		Data:      *data,
		Format:    format,
		Report:    out,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.SaveReport(ctx, rec); err != nil {
		uc.log.WithContext(ctx).Warnf("save report [%s] failed: %v", keyword, err)
	}
	return data, out, nil
}

// List 分页列出历史报告摘要
func (uc *AnalysisUseCase) List(ctx context.Context, page, pageSize int) (*domain.ReportList, error) {
	records, total, err := uc.repo.ListReports(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	list := &domain.ReportList{Reports: make([]*domain.ReportSummary, 0, len(records)), Total: total}
	for _, rec := range records {
		list.Reports = append(list.Reports, domain.Summarize(rec))
	}
	return list, nil
}

// GetByID 根据ID获取历史报告
func (uc *AnalysisUseCase) GetByID(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	return uc.repo.GetReportByID(ctx, id)
}
