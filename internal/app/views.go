package app

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jwulff/bmi-go/internal/domain"
	"github.com/jwulff/bmi-go/internal/render"
)

// HistoryLine formats a measurement for the history listing, with height
// shown in centimeters.
func HistoryLine(m domain.Measurement, now time.Time) string {
	return fmt.Sprintf("Date: %s, Weight: %s kg, Height: %s cm, BMI: %s (%s)",
		m.Date(),
		humanize.FtoaWithDigits(m.WeightKg, 2),
		humanize.FtoaWithDigits(m.HeightCm(), 2),
		humanize.FtoaWithDigits(m.BMI, 2),
		humanize.RelTime(m.Timestamp, now, "ago", "from now"),
	)
}

// HistoryLines formats every measurement in order. An empty input gives an
// empty, non-nil slice.
func HistoryLines(measurements []domain.Measurement, now time.Time) []string {
	lines := make([]string, 0, len(measurements))
	for _, m := range measurements {
		lines = append(lines, HistoryLine(m, now))
	}
	return lines
}

// TrendPoints extracts (timestamp, BMI) pairs in insertion order.
func TrendPoints(measurements []domain.Measurement) []render.ChartPoint {
	points := make([]render.ChartPoint, len(measurements))
	for i, m := range measurements {
		points[i] = render.ChartPoint{Timestamp: m.Timestamp, Value: m.BMI}
	}
	return points
}
