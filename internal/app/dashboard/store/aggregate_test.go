package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/regions"
)

func loadFixture(t *testing.T) ([]Record, *regions.Table) {
	t.Helper()
	table := regions.Default()
	records, err := Load(filepath.Join("testdata", "cases.csv"), table)
	require.NoError(t, err)
	return records, table
}

func TestAggregateByRegionYear(t *testing.T) {
	records, _ := loadFixture(t)

	t.Run("SumsAndMergesAliases", func(t *testing.T) {
		got := AggregateByRegionYear(records, 2019)
		require.Equal(t, []RegionTotal{
			{Region: "Beqaa Valley", TotalCases: 5},
			{Region: "Tripoli", TotalCases: 7},
		}, got)
	})

	t.Run("PreservesTotalForYear", func(t *testing.T) {
		got := AggregateByRegionYear(records, 2020)
		sum := 0
		for _, rt := range got {
			sum += rt.TotalCases
		}
		want := 0
		for _, rec := range records {
			if rec.Year == 2020 {
				want += rec.Cases
			}
		}
		require.Equal(t, want, sum)
	})

	t.Run("AbsentYearIsEmpty", func(t *testing.T) {
		require.Empty(t, AggregateByRegionYear(records, 1999))
	})
}

func TestAggregateByRegionAcrossYears(t *testing.T) {
	records, _ := loadFixture(t)

	got := AggregateByRegionAcrossYears(records)
	require.Equal(t, []RegionTotal{
		{Region: "Beirut", TotalCases: 2},
		{Region: "Beqaa Valley", TotalCases: 12},
		{Region: "Keserwan District", TotalCases: 1},
		{Region: "Tripoli", TotalCases: 7},
	}, got)

	t.Run("SingleRowSpansYears", func(t *testing.T) {
		// Beqaa Valley has records in 2019 and 2020 but one output row.
		for _, rt := range got {
			if rt.Region == "Beqaa Valley" {
				require.Equal(t, 5+7, rt.TotalCases)
			}
		}
	})
}

func TestAggregateByYearRegion(t *testing.T) {
	records, _ := loadFixture(t)

	t.Run("FiltersToRequestedRegions", func(t *testing.T) {
		got := AggregateByYearRegion(records, []string{"Beqaa Valley"})
		require.Equal(t, []TrendPoint{
			{Region: "Beqaa Valley", Year: 2019, TotalCases: 5},
			{Region: "Beqaa Valley", Year: 2020, TotalCases: 7},
		}, got)
	})

	t.Run("EmptyFilterMeansAllRegions", func(t *testing.T) {
		got := AggregateByYearRegion(records, nil)
		require.Len(t, got, 5)
	})

	t.Run("NoZeroFilling", func(t *testing.T) {
		// Beirut only has 2020 data; no synthetic 2019 point appears.
		got := AggregateByYearRegion(records, []string{"Beirut"})
		require.Equal(t, []TrendPoint{
			{Region: "Beirut", Year: 2020, TotalCases: 2},
		}, got)
	})

	t.Run("UnknownRegionYieldsNothing", func(t *testing.T) {
		require.Empty(t, AggregateByYearRegion(records, []string{"Atlantis"}))
	})
}

func TestWithCoordinates(t *testing.T) {
	records, table := loadFixture(t)

	totals := AggregateByRegionAcrossYears(records)
	points := WithCoordinates(totals, table)

	t.Run("DropsUnmappedRegionsOnly", func(t *testing.T) {
		require.Len(t, points, len(totals)-1)
		for _, p := range points {
			require.True(t, table.Known(p.Region))
			require.NotEqual(t, "Keserwan District", p.Region)
		}
	})

	t.Run("AttachesTableCoordinates", func(t *testing.T) {
		for _, p := range points {
			c, ok := table.Coords(p.Region)
			require.True(t, ok)
			require.Equal(t, c.Lat, p.Lat)
			require.Equal(t, c.Lon, p.Lon)
		}
	})

	t.Run("EmptyInputEmptyOutput", func(t *testing.T) {
		require.Empty(t, WithCoordinates(nil, table))
	})
}

func TestYearsAndRegionNames(t *testing.T) {
	records, _ := loadFixture(t)

	require.Equal(t, []int{2019, 2020}, Years(records))
	require.Equal(t, []string{"Beirut", "Beqaa Valley", "Keserwan District", "Tripoli"}, RegionNames(records))
}
