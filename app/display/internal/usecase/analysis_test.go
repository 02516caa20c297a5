package usecase

import (
	"context"
	"strings"
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/engine"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// mockAnalyzer 模拟分析引擎
type mockAnalyzer struct {
	err error
}

func (m *mockAnalyzer) PerformComprehensiveAnalysis(ctx context.Context, keyword string) (*model.AnalysisData, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &model.AnalysisData{
		PainPoints:    []string{keyword + "痛点"},
		Competitors:   []string{keyword + "竞品"},
		Opportunities: []string{keyword + "机会"},
		Difficulty:    model.DifficultyLow,
		MarketSize:    "100亿人民币",
		Suggestions:   engine.GenerateSuggestions(keyword, model.DifficultyLow),
	}, nil
}

// mockReportRepo 模拟报表仓库
type mockReportRepo struct {
	saved []*model.AnalysisRecord
}

func (m *mockReportRepo) SaveReport(ctx context.Context, rec *model.AnalysisRecord) error {
	rec.ID = "r1"
	m.saved = append(m.saved, rec)
	return nil
}

func (m *mockReportRepo) ListReports(ctx context.Context, page, pageSize int) ([]*model.AnalysisRecord, int, error) {
	return m.saved, len(m.saved), nil
}

func (m *mockReportRepo) GetReportByID(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	for _, r := range m.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, kerrors.NotFound("REPORT_NOT_FOUND", "report not found")
}

func TestAnalysisUseCase_Analyze(t *testing.T) {
	repo := &mockReportRepo{}
	uc := NewAnalysisUseCase(&mockAnalyzer{}, repo, log.DefaultLogger)

	data, err := uc.Analyze(context.Background(), " 露营 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"露营痛点"}, data.PainPoints)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "露营", repo.saved[0].Keyword)
	assert.True(t, strings.HasPrefix(repo.saved[0].Report, "# 露营行业商业机会分析报告"))

	list, err := uc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "r1", list.Reports[0].ID)
	assert.Equal(t, model.DifficultyLow, list.Reports[0].Difficulty)

	rec, err := uc.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "露营", rec.Keyword)
}

func TestAnalysisUseCase_Errors(t *testing.T) {
	uc := NewAnalysisUseCase(&mockAnalyzer{err: engine.ErrAnalysisFailed}, &mockReportRepo{}, log.DefaultLogger)

	_, err := uc.Analyze(context.Background(), "  ")
	assert.True(t, kerrors.IsBadRequest(err))

	_, err = uc.Analyze(context.Background(), "人工智能")
	assert.True(t, kerrors.IsInternalServer(err))
	assert.Equal(t, "ANALYSIS_FAILED", kerrors.Reason(err))
	assert.Equal(t, engine.ErrAnalysisFailed.Error(), kerrors.FromError(err).Message)
}

func TestAnalysisUseCase_Export(t *testing.T) {
	repo := &mockReportRepo{}
	uc := NewAnalysisUseCase(&mockAnalyzer{}, repo, log.DefaultLogger)

	md, err := uc.Export(context.Background(), "咖啡", "")
	require.NoError(t, err)
	assert.Contains(t, md, "- 咖啡痛点")

	html, err := uc.Export(context.Background(), " 咖啡 ", "html")
	require.NoError(t, err)
	assert.Contains(t, html, "<li>咖啡机会</li>")

	// 存档记录与返回的报告一致
	require.Len(t, repo.saved, 2)
	assert.Equal(t, "markdown", repo.saved[0].Format)
	assert.Equal(t, md, repo.saved[0].Report)
	assert.Equal(t, "html", repo.saved[1].Format)
	assert.Equal(t, html, repo.saved[1].Report)
	assert.Equal(t, "咖啡", repo.saved[1].Keyword)

	_, err = uc.Export(context.Background(), "咖啡", "pdf")
	assert.True(t, kerrors.IsBadRequest(err))
	assert.Len(t, repo.saved, 2)
}
