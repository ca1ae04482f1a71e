package usecase

import (
	"sort"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SelectableYears - отсортированные уникальные валидные годы
func SelectableYears(t *domain.MetricTable) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, row := range t.Rows {
		if row.Year == nil || seen[*row.Year] {
			continue
		}
		seen[*row.Year] = true
		years = append(years, *row.Year)
	}
	sort.Ints(years)
	return years
}

// SelectableDiseases - пересечение схем обеих таблиц без ключевых столбцов.
// Ключевые столбцы в Diseases не попадают уже при нормализации.
func SelectableDiseases(vaccination, incidence *domain.MetricTable) []string {
	diseases := make([]string, 0)
	for _, d := range vaccination.Diseases {
		if incidence.HasDisease(d) {
			diseases = append(diseases, d)
		}
	}
	sort.Strings(diseases)
	return diseases
}

// SelectableRegions - регионы таблицы вакцинации в эстонском порядке сортировки;
// агрегат по стране идёт первым и помечен.
func SelectableRegions(vaccination *domain.MetricTable, aggregateLabel string) []domain.RegionOption {
	seen := make(map[string]bool)
	names := make([]string, 0)
	hasAggregate := false

	for _, row := range vaccination.Rows {
		if row.Region == "" || seen[row.Region] {
			continue
		}
		seen[row.Region] = true
		if row.Region == aggregateLabel {
			hasAggregate = true
			continue
		}
		names = append(names, row.Region)
	}

	collate.New(language.Estonian).SortStrings(names)

	options := make([]domain.RegionOption, 0, len(names)+1)
	if hasAggregate {
		options = append(options, domain.RegionOption{Name: aggregateLabel, Aggregate: true})
	}
	for _, n := range names {
		options = append(options, domain.RegionOption{Name: n})
	}
	return options
}

// FilterByYear - двухколоночная выборка (регион, значение) за год.
// Нет строк за год - пустая выборка; неизвестная болезнь - ErrUnknownDisease.
func FilterByYear(t *domain.MetricTable, year int, disease, label string) (domain.MetricSelection, error) {
	sel := domain.MetricSelection{Label: label, Rows: make([]domain.RegionValue, 0)}
	if !t.HasDisease(disease) {
		return sel, errors.ErrUnknownDisease
	}

	for _, row := range t.Rows {
		if row.Year == nil || *row.Year != year {
			continue
		}
		sel.Rows = append(sel.Rows, domain.RegionValue{
			Region: row.Region,
			Value:  row.Values[disease],
		})
	}
	return sel, nil
}
