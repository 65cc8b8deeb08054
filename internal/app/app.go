// Package app wires the BMI form actions to the record store and the views.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/domain"
	"github.com/jwulff/bmi-go/internal/render"
	"github.com/jwulff/bmi-go/internal/storage"
)

// NoDataMessage is shown instead of a chart when nothing has been recorded.
const NoDataMessage = "No data available to show the trend."

// ErrNoData is returned by Trend when the store is empty.
var ErrNoData = errors.New("no data available to show the trend")

// Default chart size in pixels.
const (
	DefaultChartWidth  = 128
	DefaultChartHeight = 64
)

// App holds the handlers behind the calculate, history and trend actions.
// Handlers are not safe for concurrent use; they are meant to run one at a
// time from a single interaction loop.
type App struct {
	store       storage.Store
	now         func() time.Time
	logger      *slog.Logger
	chartWidth  int
	chartHeight int
}

// Option configures an App.
type Option func(*App)

// WithClock sets the time source used to stamp new measurements.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithChartSize sets the trend chart size in pixels.
func WithChartSize(width, height int) Option {
	return func(a *App) {
		a.chartWidth = width
		a.chartHeight = height
	}
}

// New creates an App over store. The caller keeps ownership of store and
// must close it.
func New(store storage.Store, opts ...Option) *App {
	a := &App{
		store:       store,
		now:         time.Now,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		chartWidth:  DefaultChartWidth,
		chartHeight: DefaultChartHeight,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Calculate validates the raw form fields, computes and classifies the BMI
// and appends a measurement. Input errors leave the store untouched.
func (a *App) Calculate(ctx context.Context, weightText, heightText string) (bmi.Result, error) {
	result, err := bmi.Calculate(weightText, heightText)
	if err != nil {
		return bmi.Result{}, err
	}

	m := domain.NewMeasurement(a.now(), result.WeightKg, result.HeightM, result.BMI)
	if err := a.store.Append(ctx, m); err != nil {
		return result, fmt.Errorf("failed to save measurement: %w", err)
	}

	a.logger.Debug("measurement saved", "id", m.ID, "bmi", m.BMI, "category", result.Category)
	return result, nil
}

// History returns one display line per stored measurement, oldest first.
func (a *App) History(ctx context.Context) ([]string, error) {
	measurements, err := a.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return HistoryLines(measurements, a.now()), nil
}

// Trend renders the BMI trend chart, or returns ErrNoData for an empty store.
func (a *App) Trend(ctx context.Context) (*domain.Frame, error) {
	measurements, err := a.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(measurements) == 0 {
		return nil, ErrNoData
	}

	a.logger.Debug("rendering trend", "points", len(measurements), "width", a.chartWidth, "height", a.chartHeight)
	return render.ComposeTrendFrame(TrendPoints(measurements), a.chartWidth, a.chartHeight), nil
}
