// Package charts renders the trend line and ranking bar charts server-side.
// The highlighted region is drawn in color, every other region muted, matching
// the dashboard's emphasis convention.
package charts

import (
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
)

// DefaultHighlight is the region emphasized when the caller names none.
const DefaultHighlight = "Beqaa Valley"

var (
	highlightColor = drawing.Color{R: 205, G: 92, B: 92, A: 255}
	mutedColor     = drawing.Color{R: 211, G: 211, B: 211, A: 255}
)

func intValueFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f))
	}
	return ""
}

func seriesColor(region, highlight string) drawing.Color {
	if region == highlight {
		return highlightColor
	}
	return mutedColor
}

// TrendChart builds a yearly line chart with one series per region. Regions
// with a single data point are padded to two so the renderer accepts them.
func TrendChart(points []store.TrendPoint, highlight string) chart.Chart {
	var series []chart.Series
	for start := 0; start < len(points); {
		end := start
		for end < len(points) && points[end].Region == points[start].Region {
			end++
		}

		region := points[start].Region
		xs := make([]float64, 0, end-start)
		ys := make([]float64, 0, end-start)
		for _, p := range points[start:end] {
			xs = append(xs, float64(p.Year))
			ys = append(ys, float64(p.TotalCases))
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}

		color := seriesColor(region, highlight)
		series = append(series, chart.ContinuousSeries{
			Name:    region,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
		start = end
	}

	return chart.Chart{
		Width:  900,
		Height: 420,
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: intValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Total Cases",
		},
		Series: series,
	}
}

// RankingChart builds a bar chart of all-time totals. Callers pass totals
// already sorted descending.
func RankingChart(totals []store.RegionTotal, highlight string) chart.BarChart {
	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		color := seriesColor(t.Region, highlight)
		bars = append(bars, chart.Value{
			Value: float64(t.TotalCases),
			Label: t.Region,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		})
	}

	return chart.BarChart{
		Width:    900,
		Height:   420,
		BarWidth: 48,
		YAxis: chart.YAxis{
			Name:           "Total Cases",
			ValueFormatter: intValueFormatter,
		},
		Bars: bars,
	}
}
