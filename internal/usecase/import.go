package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// ImportResult - сколько значений записано по каждому набору
type ImportResult struct {
	Vaccination int64
	Incidence   int64
}

// Unpivot раскладывает широкую таблицу в длинные значения.
// Текст года и значений не меняется; регион и заголовки нормализуются.
// Строки без региона пропускаются.
func Unpivot(raw *domain.RawTable, regionColumn, yearColumn string) []domain.MetricValue {
	regionColumn = NormalizeName(regionColumn)
	yearColumn = NormalizeName(yearColumn)

	regionIdx, yearIdx := -1, -1
	type column struct {
		idx  int
		name string
	}
	var diseases []column
	seen := make(map[string]bool)

	for i, h := range raw.Header {
		name := NormalizeName(h)
		switch {
		case name == regionColumn && regionIdx < 0:
			regionIdx = i
		case name == yearColumn && yearIdx < 0:
			yearIdx = i
		case name == "" || seen[name]:
		default:
			seen[name] = true
			diseases = append(diseases, column{idx: i, name: name})
		}
	}

	values := make([]domain.MetricValue, 0, len(raw.Rows)*len(diseases))
	for r := range raw.Rows {
		region := NormalizeName(raw.Cell(r, regionIdx))
		if region == "" {
			continue
		}
		year := strings.TrimSpace(raw.Cell(r, yearIdx))
		for _, d := range diseases {
			v := domain.MetricValue{Region: region, Year: year, Disease: d.name}
			if cell := strings.TrimSpace(raw.Cell(r, d.idx)); cell != "" {
				v.Value = &cell
			}
			values = append(values, v)
		}
	}
	return values
}

// ImportDataset переносит обе таблицы из source в writer
func ImportDataset(
	ctx context.Context,
	source repository.MetricRepository,
	writer repository.MetricWriter,
	regionColumn, yearColumn string,
	logger *zap.Logger,
) (*ImportResult, error) {
	vaccination, err := source.LoadVaccination(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vaccination table: %w", err)
	}
	incidence, err := source.LoadIncidence(ctx)
	if err != nil {
		return nil, fmt.Errorf("load incidence table: %w", err)
	}

	result := &ImportResult{}

	result.Vaccination, err = writer.ReplaceDataset(ctx, domain.DatasetVaccination, Unpivot(vaccination, regionColumn, yearColumn))
	if err != nil {
		return nil, fmt.Errorf("import vaccination table: %w", err)
	}
	result.Incidence, err = writer.ReplaceDataset(ctx, domain.DatasetIncidence, Unpivot(incidence, regionColumn, yearColumn))
	if err != nil {
		return nil, fmt.Errorf("import incidence table: %w", err)
	}

	logger.Info("Dataset imported",
		zap.Int64("vaccination_values", result.Vaccination),
		zap.Int64("incidence_values", result.Incidence),
	)
	return result, nil
}
