// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jwulff/bmi-go/internal/domain"
	"github.com/jwulff/bmi-go/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore opens the SQLite file at path, creating it and its schema if absent.
func NewFileStore(path string) (*Store, error) {
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer, and an in-memory database lives only as long as its connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, m *domain.Measurement) error {
	if err := storage.Validate(m); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bmi (date, weight, height, bmi)
		VALUES (?, ?, ?, ?)
	`, m.Date(), m.WeightKg, m.HeightM, m.BMI)
	if err != nil {
		return fmt.Errorf("failed to insert measurement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read measurement id: %w", err)
	}
	m.ID = id
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]domain.Measurement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, weight, height, bmi FROM bmi ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	measurements := []domain.Measurement{}
	for rows.Next() {
		var m domain.Measurement
		var date string
		if err := rows.Scan(&m.ID, &date, &m.WeightKg, &m.HeightM, &m.BMI); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		if m.Timestamp, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("failed to parse date of measurement %d: %w", m.ID, err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate measurements: %w", err)
	}
	return measurements, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bmi").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count measurements: %w", err)
	}
	return count, nil
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
