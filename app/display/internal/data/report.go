package data

import (
	"context"
	"errors"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/market_radar/app/display/internal/repo"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/storage"
)

type reportRepo struct {
	data *Data
	log  *log.Helper
}

func NewReportRepo(data *Data, logger log.Logger) repo.ReportRepo {
	return &reportRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func errReportNotFound() error {
	return kerrors.NotFound("REPORT_NOT_FOUND", "report not found")
}

func (r *reportRepo) SaveReport(ctx context.Context, rec *model.AnalysisRecord) error {
	if r.data.store != nil {
		return r.data.store.SaveAnalysis(ctx, rec)
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if r.data.history.Add(rec.ID, rec) {
		r.log.Debug("history full, evicted the oldest report")
	}
	return nil
}

func (r *reportRepo) ListReports(ctx context.Context, page, pageSize int) ([]*model.AnalysisRecord, int, error) {
	if r.data.store != nil {
		return r.data.store.ListAnalyses(ctx, page, pageSize)
	}

	// Keys 从旧到新
	keys := r.data.history.Keys()
	total := len(keys)
	offset := (page - 1) * pageSize

	var records []*model.AnalysisRecord
	for i := total - 1 - offset; i >= 0 && len(records) < pageSize; i-- {
		v, ok := r.data.history.Peek(keys[i])
		if !ok {
			continue
		}
		records = append(records, v.(*model.AnalysisRecord))
	}
	return records, total, nil
}

func (r *reportRepo) GetReportByID(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	if r.data.store != nil {
		rec, err := r.data.store.GetAnalysis(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, errReportNotFound()
		}
		return rec, err
	}

	// Peek 不刷新访问顺序，保持按时间倒序和最旧淘汰
	v, ok := r.data.history.Peek(id)
	if !ok {
		return nil, errReportNotFound()
	}
	return v.(*model.AnalysisRecord), nil
}
