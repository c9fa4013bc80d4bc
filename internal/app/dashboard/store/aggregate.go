package store

import (
	"sort"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/regions"
)

// RegionTotal is a per-region case sum.
type RegionTotal struct {
	Region     string `json:"region"`
	TotalCases int    `json:"totalCases"`
}

// TrendPoint is a per-region, per-year case sum.
type TrendPoint struct {
	Region     string `json:"region"`
	Year       int    `json:"year"`
	TotalCases int    `json:"totalCases"`
}

// MapPoint is a RegionTotal placed at its map coordinates.
type MapPoint struct {
	Region     string  `json:"region"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	TotalCases int     `json:"totalCases"`
}

// AggregateByRegionYear sums cases per region for a single year. Results are
// sorted by region name.
func AggregateByRegionYear(records []Record, year int) []RegionTotal {
	sums := make(map[string]int)
	for _, rec := range records {
		if rec.Year == year {
			sums[rec.Region] += rec.Cases
		}
	}
	return sortedTotals(sums)
}

// AggregateByRegionAcrossYears sums cases per region over the whole dataset.
// Results are sorted by region name.
func AggregateByRegionAcrossYears(records []Record) []RegionTotal {
	sums := make(map[string]int)
	for _, rec := range records {
		sums[rec.Region] += rec.Cases
	}
	return sortedTotals(sums)
}

// AggregateByYearRegion sums cases per (region, year) pair, restricted to the
// given regions; an empty region list means no restriction. Pairs with no
// records are absent from the result, not zero. Results are sorted by region
// name, then year.
func AggregateByYearRegion(records []Record, regionNames []string) []TrendPoint {
	var filter map[string]struct{}
	if len(regionNames) > 0 {
		filter = make(map[string]struct{}, len(regionNames))
		for _, name := range regionNames {
			filter[name] = struct{}{}
		}
	}

	type key struct {
		region string
		year   int
	}
	sums := make(map[key]int)
	for _, rec := range records {
		if filter != nil {
			if _, ok := filter[rec.Region]; !ok {
				continue
			}
		}
		sums[key{rec.Region, rec.Year}] += rec.Cases
	}

	points := make([]TrendPoint, 0, len(sums))
	for k, total := range sums {
		points = append(points, TrendPoint{Region: k.region, Year: k.year, TotalCases: total})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Region != points[j].Region {
			return points[i].Region < points[j].Region
		}
		return points[i].Year < points[j].Year
	})
	return points
}

// WithCoordinates joins per-region totals with the coordinate table. Regions
// the table cannot place are dropped; only map rendering applies this filter,
// every other aggregate stays spatially unfiltered.
func WithCoordinates(totals []RegionTotal, table *regions.Table) []MapPoint {
	points := make([]MapPoint, 0, len(totals))
	for _, t := range totals {
		c, ok := table.Coords(t.Region)
		if !ok {
			continue
		}
		points = append(points, MapPoint{
			Region:     t.Region,
			Lat:        c.Lat,
			Lon:        c.Lon,
			TotalCases: t.TotalCases,
		})
	}
	return points
}

// Years returns the distinct years present in the dataset, ascending.
func Years(records []Record) []int {
	seen := make(map[int]struct{})
	for _, rec := range records {
		seen[rec.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// RegionNames returns the distinct region names present in the dataset,
// sorted.
func RegionNames(records []Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		seen[rec.Region] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedTotals(sums map[string]int) []RegionTotal {
	totals := make([]RegionTotal, 0, len(sums))
	for region, total := range sums {
		totals = append(totals, RegionTotal{Region: region, TotalCases: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Region < totals[j].Region })
	return totals
}
