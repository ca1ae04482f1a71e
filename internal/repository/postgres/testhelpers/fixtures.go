package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// MetricFixture - одна строка metric_values
type MetricFixture struct {
	Dataset string
	Region  string
	Year    *string
	Disease string
	Value   *string
}

// InsertMetrics вставляет строки в порядке следования
func InsertMetrics(ctx context.Context, db *sqlx.DB, rows []MetricFixture) error {
	for i, r := range rows {
		_, err := db.ExecContext(ctx,
			"INSERT INTO metric_values (dataset, region, year, disease, value) VALUES ($1, $2, $3, $4, $5)",
			r.Dataset, r.Region, r.Year, r.Disease, r.Value,
		)
		if err != nil {
			return fmt.Errorf("insert fixture %d: %w", i, err)
		}
	}
	return nil
}

// Ptr возвращает указатель на строку
func Ptr(s string) *string {
	return &s
}
