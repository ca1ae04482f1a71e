package usecase

import "github.com/vaccination-dashboard/internal/domain"

// LookupDetail - значения обеих метрик для (год, болезнь, регион).
// Агрегат ищется по своей метке тем же путём. Отсутствие строки или пустая
// ячейка дают Available=false только для этой метрики.
func LookupDetail(ds *domain.Dataset, sel domain.Selection) domain.Detail {
	detail := domain.Detail{
		Selection:   sel,
		IsAggregate: sel.Region == ds.AggregateLabel,
		Vaccination: lookupMetric(ds.Vaccination, sel),
		Incidence:   lookupMetric(ds.Incidence, sel),
	}

	if !detail.IsAggregate {
		if g, ok := ds.Geometry.Get(sel.Region); ok {
			detail.GeometryAvailable = g.HasGeometry()
		}
	}

	return detail
}

func lookupMetric(t *domain.MetricTable, sel domain.Selection) domain.MetricDetail {
	row, ok := t.Lookup(sel.Region, sel.Year)
	if !ok {
		return domain.MetricDetail{}
	}
	v := row.Values[sel.Disease]
	if v == nil {
		return domain.MetricDetail{}
	}
	return domain.MetricDetail{Value: v, Available: true}
}
