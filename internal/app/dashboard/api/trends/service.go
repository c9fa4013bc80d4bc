package trends

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/respond"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

// TrendsService serves per-region yearly totals for the trend comparison
// chart. Years with no records for a region are absent, never zero-filled.
type TrendsService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewTrendsService(st *store.Store, logger *zap.Logger) *TrendsService {
	return &TrendsService{
		store:  st,
		logger: logger,
	}
}

func (s *TrendsService) GetTrends(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Records(r.Context())
	if err != nil {
		s.logger.Error("trends: dataset unavailable", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "dataset unavailable")
		return
	}

	selected := SelectedRegions(r.URL.Query()["regions"])
	respond.JSON(w, http.StatusOK, store.AggregateByYearRegion(records, selected))
}

// SelectedRegions flattens repeated and comma-separated regions parameters
// into one list, dropping empty entries. An empty result means no filter.
func SelectedRegions(params []string) []string {
	var selected []string
	for _, param := range params {
		for _, name := range strings.Split(param, ",") {
			if name = strings.TrimSpace(name); name != "" {
				selected = append(selected, name)
			}
		}
	}
	return selected
}
