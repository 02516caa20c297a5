package service

import (
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/market_radar/app/display/internal/usecase"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/report"
)

const (
	OperationAnalyze    = "/market.v1.Market/Analyze"
	OperationExport     = "/market.v1.Market/Export"
	OperationListReport = "/market.v1.Market/ListReports"
	OperationGetReport  = "/market.v1.Market/GetReport"
)

type MarketService struct {
	uc  *usecase.AnalysisUseCase
	log *log.Helper
}

func NewMarketService(uc *usecase.AnalysisUseCase, logger log.Logger) *MarketService {
	return &MarketService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

// RegisterMarketHTTPServer 注册市场分析接口
func RegisterMarketHTTPServer(s *http.Server, svc *MarketService) {
	r := s.Route("/api/v1")
	r.GET("/analysis", svc.Analyze)
	r.GET("/analysis/export", svc.Export)
	r.GET("/reports", svc.ListReports)
	r.GET("/reports/{id}", svc.GetReport)
}

func (s *MarketService) Analyze(ctx http.Context) error {
	keyword := ctx.Query().Get("keyword")
	http.SetOperation(ctx, OperationAnalyze)
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return s.uc.Analyze(c, req.(string))
	})
	out, err := h(ctx, keyword)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, out)
}

type exportReq struct {
	keyword string
	format  string
}

func (s *MarketService) Export(ctx http.Context) error {
	q := ctx.Query()
	in := exportReq{keyword: q.Get("keyword"), format: q.Get("format")}
	if in.format == "" {
		in.format = report.FormatMarkdown
	}
	http.SetOperation(ctx, OperationExport)
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		r := req.(exportReq)
		return s.uc.Export(c, r.keyword, r.format)
	})
	out, err := h(ctx, in)
	if err != nil {
		return err
	}

	contentType := "text/markdown; charset=utf-8"
	if in.format == report.FormatHTML {
		contentType = "text/html; charset=utf-8"
	}
	return ctx.Blob(nethttp.StatusOK, contentType, []byte(out.(string)))
}

type pageReq struct {
	page     int
	pageSize int
}

func (s *MarketService) ListReports(ctx http.Context) error {
	q := ctx.Query()
	in := pageReq{page: atoi(q.Get("page"), 1), pageSize: atoi(q.Get("page_size"), 10)}
	http.SetOperation(ctx, OperationListReport)
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		r := req.(pageReq)
		return s.uc.List(c, r.page, r.pageSize)
	})
	out, err := h(ctx, in)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, out)
}

func (s *MarketService) GetReport(ctx http.Context) error {
	id := ctx.Vars().Get("id")
	http.SetOperation(ctx, OperationGetReport)
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return s.uc.GetByID(c, req.(string))
	})
	out, err := h(ctx, id)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, out)
}

// atoi 解析正整数，失败或非正数时返回默认值
func atoi(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
