package mapdata

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/respond"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

// MapDataService serves the bubble-map rows for one year: per-region totals
// joined with coordinates, with regions the table cannot place dropped.
type MapDataService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewMapDataService(st *store.Store, logger *zap.Logger) *MapDataService {
	return &MapDataService{
		store:  st,
		logger: logger,
	}
}

func (s *MapDataService) GetMap(w http.ResponseWriter, r *http.Request) {
	yearParam := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "year query parameter must be an integer")
		return
	}

	records, err := s.store.Records(r.Context())
	if err != nil {
		s.logger.Error("map: dataset unavailable", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "dataset unavailable")
		return
	}

	totals := store.AggregateByRegionYear(records, year)
	respond.JSON(w, http.StatusOK, store.WithCoordinates(totals, s.store.Table()))
}
