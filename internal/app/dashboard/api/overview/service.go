package overview

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/api/respond"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

// Overview backs the narrative panel and the slider/multi-select controls:
// the all-time total, the hardest-hit region, and the values the controls
// offer. Totals here are spatially unfiltered; only map output drops regions
// without coordinates.
type Overview struct {
	TotalCases     int      `json:"totalCases"`
	TopRegion      string   `json:"topRegion"`
	TopRegionCases int      `json:"topRegionCases"`
	Years          []int    `json:"years"`
	Regions        []string `json:"regions"`
}

type OverviewService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewOverviewService(st *store.Store, logger *zap.Logger) *OverviewService {
	return &OverviewService{
		store:  st,
		logger: logger,
	}
}

func (s *OverviewService) GetOverview(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Records(r.Context())
	if err != nil {
		s.logger.Error("overview: dataset unavailable", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "dataset unavailable")
		return
	}

	out := Overview{
		Years:   store.Years(records),
		Regions: store.RegionNames(records),
	}
	for _, rt := range store.AggregateByRegionAcrossYears(records) {
		out.TotalCases += rt.TotalCases
		if rt.TotalCases > out.TopRegionCases {
			out.TopRegion = rt.Region
			out.TopRegionCases = rt.TotalCases
		}
	}

	respond.JSON(w, http.StatusOK, out)
}
