package usecase

import "github.com/vaccination-dashboard/internal/domain"

// JoinMapData - left join объединённых геометрий (без агрегата) с обеими выборками.
// Ровно одна строка на регион; без совпадения значение остаётся nil.
func JoinMapData(geometry *domain.GeometryTable, vaccination, incidence domain.MetricSelection) []domain.MapRow {
	vacc := index(vaccination)
	inc := index(incidence)

	rows := make([]domain.MapRow, 0, len(geometry.Regions))
	for _, r := range geometry.Regions {
		if r.Kind == domain.RegionKindAggregate {
			continue
		}
		rows = append(rows, domain.MapRow{
			Region:          r.Name,
			Kind:            r.Kind,
			Geometry:        r.Geometry,
			VaccinationRate: vacc[r.Name],
			IncidenceCount:  inc[r.Name],
		})
	}
	return rows
}

// index строит region -> value; при повторе региона берётся первое значение
func index(sel domain.MetricSelection) map[string]*float64 {
	m := make(map[string]*float64, len(sel.Rows))
	for _, r := range sel.Rows {
		if _, ok := m[r.Region]; ok {
			continue
		}
		m[r.Region] = r.Value
	}
	return m
}
