package usecase

import (
	"context"
	"fmt"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// DatasetOptions - имена столбцов и параметры объединения геометрий
type DatasetOptions struct {
	RegionColumn string
	YearColumn   string
	Geometry     GeometryOptions
}

// LoadDataset читает все источники один раз при старте и готовит таблицы
func LoadDataset(
	ctx context.Context,
	metricRepo repository.MetricRepository,
	geometryRepo repository.GeometryRepository,
	opts DatasetOptions,
	logger *zap.Logger,
) (*domain.Dataset, error) {
	vaccination, err := metricRepo.LoadVaccination(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vaccination table: %w", err)
	}

	incidence, err := metricRepo.LoadIncidence(ctx)
	if err != nil {
		return nil, fmt.Errorf("load incidence table: %w", err)
	}

	counties, err := geometryRepo.LoadCounties(ctx)
	if err != nil {
		return nil, fmt.Errorf("load counties: %w", err)
	}

	settlements, err := geometryRepo.LoadSettlements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settlements: %w", err)
	}

	country, err := geometryRepo.LoadCountry(ctx)
	if err != nil {
		return nil, fmt.Errorf("load national boundary: %w", err)
	}

	raw := &domain.RawDataset{
		Vaccination: *vaccination,
		Incidence:   *incidence,
		Counties:    counties,
		Settlements: settlements,
		Country:     country,
	}

	return PrepareDataset(raw, opts, logger), nil
}

// PrepareDataset нормализует таблицы, собирает геометрии и списки выбора
func PrepareDataset(raw *domain.RawDataset, opts DatasetOptions, logger *zap.Logger) *domain.Dataset {
	vaccination := NormalizeTable(&raw.Vaccination, opts.RegionColumn, opts.YearColumn)
	incidence := NormalizeTable(&raw.Incidence, opts.RegionColumn, opts.YearColumn)

	for _, t := range []*domain.MetricTable{vaccination, incidence} {
		if t.Duplicates > 0 {
			logger.Warn("Duplicate (region, year) rows dropped, first row kept",
				zap.String("table", t.Name),
				zap.Int("duplicates", t.Duplicates),
			)
		}
	}

	aggregateLabel := NormalizeName(opts.Geometry.AggregateLabel)
	geometry := ComposeGeometry(raw.Counties, raw.Settlements, raw.Country, opts.Geometry, logger)

	ds := &domain.Dataset{
		Vaccination:    vaccination,
		Incidence:      incidence,
		Geometry:       geometry,
		AggregateLabel: aggregateLabel,
		Options: domain.Options{
			Years:    SelectableYears(vaccination),
			Diseases: SelectableDiseases(vaccination, incidence),
			Regions:  SelectableRegions(vaccination, aggregateLabel),
		},
	}

	logger.Info("Dataset prepared",
		zap.Int("vaccination_rows", len(vaccination.Rows)),
		zap.Int("incidence_rows", len(incidence.Rows)),
		zap.Int("regions_with_geometry", len(geometry.Regions)),
		zap.Ints("years", ds.Options.Years),
		zap.Strings("diseases", ds.Options.Diseases),
	)

	return ds
}
