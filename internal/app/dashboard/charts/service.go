package charts

import (
	"bytes"
	"io"
	"net/http"

	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/respond"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/rankings"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/trends"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

type ChartsService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewChartsService(st *store.Store, logger *zap.Logger) *ChartsService {
	return &ChartsService{
		store:  st,
		logger: logger,
	}
}

func (s *ChartsService) TrendsPNG(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Records(r.Context())
	if err != nil {
		s.logger.Error("trend chart: dataset unavailable", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "dataset unavailable")
		return
	}

	selected := trends.SelectedRegions(r.URL.Query()["regions"])
	points := store.AggregateByYearRegion(records, selected)
	if len(points) == 0 {
		respond.Error(w, http.StatusNotFound, "no data for selection")
		return
	}

	graph := TrendChart(points, highlightParam(r))
	s.writePNG(w, "trend chart", &graph)
}

func (s *ChartsService) RankingsPNG(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Records(r.Context())
	if err != nil {
		s.logger.Error("ranking chart: dataset unavailable", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "dataset unavailable")
		return
	}

	totals := rankings.Sorted(store.AggregateByRegionAcrossYears(records))
	if len(totals) == 0 {
		respond.Error(w, http.StatusNotFound, "no data")
		return
	}

	graph := RankingChart(totals, highlightParam(r))
	s.writePNG(w, "ranking chart", &graph)
}

func (s *ChartsService) writePNG(w http.ResponseWriter, what string, graph renderable) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		s.logger.Error("chart render failed", zap.String("chart", what), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "chart render failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

func highlightParam(r *http.Request) string {
	if h := r.URL.Query().Get("highlight"); h != "" {
		return h
	}
	return DefaultHighlight
}
