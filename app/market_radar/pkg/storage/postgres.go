package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/iWorld-y/market_radar/app/market_radar/pkg/config"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/model"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("analysis not found")

type Storage struct {
	db *sql.DB
}

// DSN 由配置拼接 PostgreSQL 连接串
func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

func NewStorage(cfg config.DBConfig) (*Storage, error) {
	return Open(DSN(cfg))
}

// Open 使用连接串打开数据库并初始化表结构
func Open(dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS analysis_reports (
		id TEXT PRIMARY KEY,
		keyword TEXT NOT NULL,
		pain_points TEXT NOT NULL,
		competitors TEXT NOT NULL,
		opportunities TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		market_size TEXT NOT NULL,
		suggestions TEXT NOT NULL,
		trend TEXT,
		format TEXT,
		report TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// SaveAnalysis 保存一次分析，ID 为空时自动生成
func (s *Storage) SaveAnalysis(ctx context.Context, rec *model.AnalysisRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	lists := make([]string, 0, 4)
	for _, l := range [][]string{rec.Data.PainPoints, rec.Data.Competitors, rec.Data.Opportunities, rec.Data.Suggestions} {
		b, err := json.Marshal(l)
		if err != nil {
			return err
		}
		lists = append(lists, string(b))
	}

	var trend sql.NullString
	if rec.Trend != nil {
		b, err := json.Marshal(rec.Trend)
		if err != nil {
			return err
		}
		trend = sql.NullString{String: string(b), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO analysis_reports
		(id, keyword, pain_points, competitors, opportunities, difficulty, market_size, suggestions, trend, format, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rec.ID, removeNullBytes(rec.Keyword), lists[0], lists[1], lists[2],
		string(rec.Data.Difficulty), rec.Data.MarketSize, lists[3], trend,
		rec.Format, removeNullBytes(rec.Report), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

const selectColumns = `id, keyword, pain_points, competitors, opportunities, difficulty, market_size, suggestions, trend, format, report, created_at`

// GetAnalysis 按 ID 获取
func (s *Storage) GetAnalysis(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM analysis_reports WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// ListAnalyses 分页列出，按时间倒序
func (s *Storage) ListAnalyses(ctx context.Context, page, pageSize int) ([]*model.AnalysisRecord, int, error) {
	offset := (page - 1) * pageSize

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM analysis_reports ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*model.AnalysisRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis_reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*model.AnalysisRecord, error) {
	var rec model.AnalysisRecord
	var painPoints, competitors, opportunities, difficulty, suggestions string
	var trend, format, rpt sql.NullString
	if err := sc.Scan(&rec.ID, &rec.Keyword, &painPoints, &competitors, &opportunities,
		&difficulty, &rec.Data.MarketSize, &suggestions, &trend, &format, &rpt, &rec.CreatedAt); err != nil {
		return nil, err
	}

	targets := []struct {
		raw string
		dst *[]string
	}{
		{painPoints, &rec.Data.PainPoints},
		{competitors, &rec.Data.Competitors},
		{opportunities, &rec.Data.Opportunities},
		{suggestions, &rec.Data.Suggestions},
	}
	for _, t := range targets {
		if err := json.Unmarshal([]byte(t.raw), t.dst); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", rec.ID, err)
		}
	}
	rec.Data.Difficulty = model.Difficulty(difficulty)
	rec.Format = format.String
	rec.Report = rpt.String

	if trend.Valid && trend.String != "" {
		var td model.TrendData
		if err := json.Unmarshal([]byte(trend.String), &td); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", rec.ID, err)
		}
		rec.Trend = &td
	}
	return &rec, nil
}

// PostgreSQL 文本字段不支持 NULL 字节
func removeNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
