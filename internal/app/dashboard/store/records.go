package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/regions"
)

// Source column headers expected in the dataset file.
const (
	areaColumn   = "refArea"
	periodColumn = "refPeriod"
	casesColumn  = "Number of cases"
)

// Record is one normalized row of the dataset. The raw refArea/refPeriod
// identifiers are consumed during load and not retained.
type Record struct {
	Region string
	Year   int
	Month  time.Month
	Cases  int
}

// LoadError is the single failure mode of the pipeline: the dataset file is
// missing, unreadable, or contains a row that cannot be normalized. Loads are
// all-or-nothing; there is no row-level skip.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the dataset at path and normalizes every row: the region name is
// derived from the final refArea path segment (underscores to spaces, then the
// alias remap), and the month/year from the final refPeriod segment parsed as
// MM-YYYY. Any malformed row fails the whole load with a *LoadError.
func Load(path string, table *regions.Table) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("missing header row")}
	}

	areaIdx, periodIdx, casesIdx := -1, -1, -1
	for i, name := range rows[0] {
		switch strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF") {
		case areaColumn:
			areaIdx = i
		case periodColumn:
			periodIdx = i
		case casesColumn:
			casesIdx = i
		}
	}
	if areaIdx < 0 || periodIdx < 0 || casesIdx < 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf(
			"header row missing one of %q, %q, %q", areaColumn, periodColumn, casesColumn)}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := normalizeRow(row, areaIdx, periodIdx, casesIdx, table)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeRow(row []string, areaIdx, periodIdx, casesIdx int, table *regions.Table) (Record, error) {
	rec := Record{Region: table.CanonicalFromRef(row[areaIdx])}

	period := row[periodIdx]
	segment := period
	if i := strings.LastIndex(period, "/"); i >= 0 {
		segment = period[i+1:]
	}
	monthYear, err := time.Parse("01-2006", segment)
	if err != nil {
		return Record{}, fmt.Errorf("period %q: %w", period, err)
	}
	rec.Year = monthYear.Year()
	rec.Month = monthYear.Month()

	cases, err := strconv.Atoi(strings.TrimSpace(row[casesIdx]))
	if err != nil {
		return Record{}, fmt.Errorf("case count %q: %w", row[casesIdx], err)
	}
	if cases < 0 {
		return Record{}, fmt.Errorf("case count %d is negative", cases)
	}
	rec.Cases = cases

	return rec, nil
}
