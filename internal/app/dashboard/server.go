// Package dashboard wires the dataset store and the API services into one
// HTTP handler: JSON endpoints for the map, trends and rankings, PNG chart
// endpoints, an explicit dataset refresh, and the index page.
package dashboard

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/mapdata"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/overview"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/rankings"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/respond"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/trends"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/charts"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

// NewMux builds the dashboard's HTTP routes over the given store.
func NewMux(st *store.Store, logger *zap.Logger) *http.ServeMux {
	overviewService := overview.NewOverviewService(st, logger)
	mapDataService := mapdata.NewMapDataService(st, logger)
	trendsService := trends.NewTrendsService(st, logger)
	rankingsService := rankings.NewRankingsService(st, logger)
	chartsService := charts.NewChartsService(st, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/overview", overviewService.GetOverview)
	mux.HandleFunc("GET /api/map", mapDataService.GetMap)
	mux.HandleFunc("GET /api/trends", trendsService.GetTrends)
	mux.HandleFunc("GET /api/rankings", rankingsService.GetRankings)
	mux.HandleFunc("POST /api/refresh", refreshHandler(st, logger))
	mux.HandleFunc("GET /charts/trends.png", chartsService.TrendsPNG)
	mux.HandleFunc("GET /charts/rankings.png", chartsService.RankingsPNG)
	mux.HandleFunc("GET /{$}", indexHandler(logger))
	return mux
}

func refreshHandler(st *store.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Refresh(r.Context()); err != nil {
			logger.Error("dataset refresh failed", zap.Error(err))
			var loadErr *store.LoadError
			if errors.As(err, &loadErr) {
				respond.Error(w, http.StatusInternalServerError, loadErr.Error())
				return
			}
			respond.Error(w, http.StatusInternalServerError, "refresh failed")
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
	}
}
