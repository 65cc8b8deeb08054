// Package storage provides storage abstractions for the BMI tracker.
package storage

import (
	"context"

	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/domain"
)

// Store is an append-only log of measurements.
type Store interface {
	// Append writes m and sets its ID.
	Append(ctx context.Context, m *domain.Measurement) error
	// ListAll returns every measurement in insertion order.
	ListAll(ctx context.Context) ([]domain.Measurement, error)
	Count(ctx context.Context) (int, error)

	// Lifecycle
	Close() error
}

// ErrInvalidRecord is returned when a measurement cannot be stored as given.
type ErrInvalidRecord struct {
	Reason string
}

func (e ErrInvalidRecord) Error() string {
	return "invalid measurement: " + e.Reason
}

// IsInvalidRecord checks if an error is an invalid record error.
func IsInvalidRecord(err error) bool {
	_, ok := err.(ErrInvalidRecord)
	return ok
}

// Validate checks the invariants every stored measurement must hold.
func Validate(m *domain.Measurement) error {
	switch {
	case m == nil:
		return ErrInvalidRecord{Reason: "nil measurement"}
	case m.Timestamp.IsZero():
		return ErrInvalidRecord{Reason: "missing timestamp"}
	case m.WeightKg <= 0 || m.HeightM <= 0:
		return ErrInvalidRecord{Reason: "weight and height must be positive"}
	case m.BMI != bmi.Compute(m.WeightKg, m.HeightM):
		return ErrInvalidRecord{Reason: "bmi does not match weight and height"}
	}
	return nil
}
