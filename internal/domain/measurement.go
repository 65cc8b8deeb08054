package domain

import (
	"fmt"
	"time"
)

// DateLayout is how measurement timestamps are persisted and displayed.
// It sorts lexically in chronological order.
const DateLayout = "2006-01-02 15:04:05"

// Measurement is one recorded BMI computation.
type Measurement struct {
	ID        int64
	Timestamp time.Time
	WeightKg  float64
	HeightM   float64
	BMI       float64
}

// NewMeasurement creates a measurement captured at t, truncated to the second.
func NewMeasurement(t time.Time, weightKg, heightM, bmi float64) *Measurement {
	return &Measurement{
		Timestamp: t.Truncate(time.Second),
		WeightKg:  weightKg,
		HeightM:   heightM,
		BMI:       bmi,
	}
}

// HeightCm returns the height converted back to centimeters.
func (m Measurement) HeightCm() float64 {
	return m.HeightM * 100
}

// Date returns the timestamp in DateLayout.
func (m Measurement) Date() string {
	return m.Timestamp.Format(DateLayout)
}

// ParseDate parses a timestamp stored in DateLayout as local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid measurement date %q: %w", s, err)
	}
	return t, nil
}
