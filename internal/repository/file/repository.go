package file

import (
	"context"

	"github.com/vaccination-dashboard/internal/config"
	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

type metricRepository struct {
	cfg    *config.DataConfig
	logger *zap.Logger
}

// NewMetricRepository - таблицы метрик из xlsx/csv файлов
func NewMetricRepository(cfg *config.DataConfig, logger *zap.Logger) repository.MetricRepository {
	return &metricRepository{cfg: cfg, logger: logger}
}

func (r *metricRepository) LoadVaccination(ctx context.Context) (*domain.RawTable, error) {
	return r.load(r.cfg.VaccinationFile)
}

func (r *metricRepository) LoadIncidence(ctx context.Context) (*domain.RawTable, error) {
	return r.load(r.cfg.IncidenceFile)
}

func (r *metricRepository) load(path string) (*domain.RawTable, error) {
	table, err := ReadTable(path)
	if err != nil {
		r.logger.Error("Failed to read table", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	r.logger.Info("Table loaded",
		zap.String("path", path),
		zap.Int("columns", len(table.Header)),
		zap.Int("rows", len(table.Rows)),
	)
	return table, nil
}

type geometryRepository struct {
	cfg    *config.DataConfig
	logger *zap.Logger
}

// NewGeometryRepository - геометрии из GeoJSON файлов
func NewGeometryRepository(cfg *config.DataConfig, logger *zap.Logger) repository.GeometryRepository {
	return &geometryRepository{cfg: cfg, logger: logger}
}

func (r *geometryRepository) LoadCounties(ctx context.Context) ([]domain.Feature, error) {
	return r.load(r.cfg.CountiesFile)
}

func (r *geometryRepository) LoadSettlements(ctx context.Context) ([]domain.Feature, error) {
	return r.load(r.cfg.SettlementsFile)
}

func (r *geometryRepository) LoadCountry(ctx context.Context) ([]domain.Feature, error) {
	return r.load(r.cfg.CountryFile)
}

func (r *geometryRepository) load(path string) ([]domain.Feature, error) {
	features, err := ReadFeatures(path)
	if err != nil {
		r.logger.Error("Failed to read geometry collection", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	r.logger.Info("Geometry collection loaded",
		zap.String("path", path),
		zap.Int("features", len(features)),
	)
	return features, nil
}
