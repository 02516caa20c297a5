package repo

import (
	"context"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// ReportRepo 分析存档仓库接口
type ReportRepo interface {
	// SaveReport 保存一次分析
	SaveReport(ctx context.Context, rec *model.AnalysisRecord) error
	// ListReports 分页获取存档，按时间倒序
	ListReports(ctx context.Context, page, pageSize int) ([]*model.AnalysisRecord, int, error)
	// GetReportByID 根据ID获取存档
	GetReportByID(ctx context.Context, id string) (*model.AnalysisRecord, error)
}
