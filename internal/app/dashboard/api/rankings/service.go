package rankings

import (
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/respond"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

// RankingsService serves all-time per-region totals sorted descending for the
// ranking bar chart.
type RankingsService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewRankingsService(st *store.Store, logger *zap.Logger) *RankingsService {
	return &RankingsService{
		store:  st,
		logger: logger,
	}
}

func (s *RankingsService) GetRankings(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Records(r.Context())
	if err != nil {
		s.logger.Error("rankings: dataset unavailable", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "dataset unavailable")
		return
	}

	respond.JSON(w, http.StatusOK, Sorted(store.AggregateByRegionAcrossYears(records)))
}

// Sorted orders totals by descending case count, breaking ties by region name
// so the ranking is stable.
func Sorted(totals []store.RegionTotal) []store.RegionTotal {
	out := make([]store.RegionTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalCases != out[j].TotalCases {
			return out[i].TotalCases > out[j].TotalCases
		}
		return out[i].Region < out[j].Region
	})
	return out
}
