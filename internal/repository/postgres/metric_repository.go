package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vaccination-dashboard/internal/config"
	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// Schema - длинная таблица метрик. Год и значение хранятся текстом,
// приведение типов делает нормализатор, как и для файлов.
const Schema = `
CREATE TABLE IF NOT EXISTS metric_values (
	id      BIGSERIAL PRIMARY KEY,
	dataset TEXT NOT NULL,
	region  TEXT NOT NULL,
	year    TEXT,
	disease TEXT NOT NULL,
	value   TEXT
);
CREATE INDEX IF NOT EXISTS metric_values_dataset_idx ON metric_values (dataset);
`

type metricValue struct {
	Dataset string         `db:"dataset"`
	Region  string         `db:"region"`
	Year    sql.NullString `db:"year"`
	Disease string         `db:"disease"`
	Value   sql.NullString `db:"value"`
}

// insertBatchSize - строк в одном INSERT при импорте
const insertBatchSize = 500

type metricRepository struct {
	db     *DB
	cfg    *config.DataConfig
	logger *zap.Logger
}

// NewMetricRepository - таблицы метрик из postgres
func NewMetricRepository(db *DB, cfg *config.DataConfig) repository.MetricRepository {
	return &metricRepository{
		db:     db,
		cfg:    cfg,
		logger: db.logger,
	}
}

// NewMetricWriter - запись таблиц метрик в postgres (импорт из файлов)
func NewMetricWriter(db *DB) repository.MetricWriter {
	return &metricRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *metricRepository) LoadVaccination(ctx context.Context) (*domain.RawTable, error) {
	return r.load(ctx, domain.DatasetVaccination)
}

func (r *metricRepository) LoadIncidence(ctx context.Context) (*domain.RawTable, error) {
	return r.load(ctx, domain.DatasetIncidence)
}

func (r *metricRepository) load(ctx context.Context, dataset string) (*domain.RawTable, error) {
	query := `
		SELECT region, year, disease, value
		FROM metric_values
		WHERE dataset = $1
		ORDER BY id
	`

	var values []metricValue
	if err := r.db.SelectContext(ctx, &values, query, dataset); err != nil {
		r.logger.Error("failed to load metric values", zap.String("dataset", dataset), zap.Error(err))
		return nil, fmt.Errorf("load %s metric values: %w", dataset, err)
	}

	table := pivot(dataset, r.cfg.RegionColumn, r.cfg.YearColumn, values)

	r.logger.Info("Table loaded",
		zap.String("dataset", dataset),
		zap.Int("columns", len(table.Header)),
		zap.Int("rows", len(table.Rows)),
	)
	return table, nil
}

// pivot разворачивает (region, year, disease, value) в широкую таблицу
// с заголовком [регион, год, болезни...]. Порядок строк и столбцов - по первому
// появлению; при повторе ячейки сохраняется первое значение.
func pivot(name, regionColumn, yearColumn string, values []metricValue) *domain.RawTable {
	table := &domain.RawTable{
		Name:   name,
		Header: []string{regionColumn, yearColumn},
	}

	columns := make(map[string]int)
	rows := make(map[[2]string]int)
	filled := make(map[[3]string]bool)

	for _, v := range values {
		col, ok := columns[v.Disease]
		if !ok {
			col = len(table.Header)
			columns[v.Disease] = col
			table.Header = append(table.Header, v.Disease)
		}

		key := [2]string{v.Region, v.Year.String}
		idx, ok := rows[key]
		if !ok {
			idx = len(table.Rows)
			rows[key] = idx
			table.Rows = append(table.Rows, []string{v.Region, v.Year.String})
		}

		cellKey := [3]string{v.Region, v.Year.String, v.Disease}
		if filled[cellKey] {
			continue
		}
		filled[cellKey] = true

		row := table.Rows[idx]
		for len(row) <= col {
			row = append(row, "")
		}
		if v.Value.Valid {
			row[col] = v.Value.String
		}
		table.Rows[idx] = row
	}

	return table
}

// ReplaceDataset удаляет старые значения набора и вставляет новые в одной транзакции
func (r *metricRepository) ReplaceDataset(ctx context.Context, dataset string, values []domain.MetricValue) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM metric_values WHERE dataset = $1", dataset); err != nil {
		return 0, fmt.Errorf("delete %s metric values: %w", dataset, err)
	}

	rows := make([]metricValue, 0, len(values))
	for _, v := range values {
		row := metricValue{
			Dataset: dataset,
			Region:  v.Region,
			Year:    sql.NullString{String: v.Year, Valid: v.Year != ""},
			Disease: v.Disease,
		}
		if v.Value != nil {
			row.Value = sql.NullString{String: *v.Value, Valid: true}
		}
		rows = append(rows, row)
	}

	query := `
		INSERT INTO metric_values (dataset, region, year, disease, value)
		VALUES (:dataset, :region, :year, :disease, :value)
	`

	var inserted int64
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		res, err := tx.NamedExecContext(ctx, query, rows[start:end])
		if err != nil {
			return 0, fmt.Errorf("insert %s metric values: %w", dataset, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("Dataset replaced",
		zap.String("dataset", dataset),
		zap.Int64("rows", inserted),
	)
	return inserted, nil
}
