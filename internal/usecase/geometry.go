package usecase

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/vaccination-dashboard/internal/domain"
	"go.uber.org/zap"
)

// GeometryOptions - имена свойств и состав дополнительных записей
type GeometryOptions struct {
	CountyNameProperty     string
	SettlementNameProperty string
	ExtraCities            []string
	AggregateLabel         string
}

// ComposeGeometry объединяет уезды, выбранные населённые пункты и точку агрегата.
// При повторе имени побеждает последняя запись (позиция первой сохраняется).
func ComposeGeometry(counties, settlements, country []domain.Feature, opts GeometryOptions, logger *zap.Logger) *domain.GeometryTable {
	table := &domain.GeometryTable{}
	positions := make(map[string]int)

	add := func(r domain.RegionGeometry) {
		if i, ok := positions[r.Name]; ok {
			logger.Warn("Duplicate region name in geometry, last one wins",
				zap.String("region", r.Name),
				zap.String("kind", string(r.Kind)),
			)
			table.Regions[i] = r
			return
		}
		positions[r.Name] = len(table.Regions)
		table.Regions = append(table.Regions, r)
	}

	for _, f := range counties {
		name := FeatureName(f, opts.CountyNameProperty)
		if name == "" {
			logger.Warn("County feature without name skipped")
			continue
		}
		add(domain.RegionGeometry{Name: name, Kind: domain.RegionKindCounty, Geometry: f.Geometry})
	}

	wanted := make(map[string]bool, len(opts.ExtraCities))
	for _, c := range opts.ExtraCities {
		wanted[NormalizeName(c)] = true
	}
	for _, f := range settlements {
		name := FeatureName(f, opts.SettlementNameProperty)
		if !wanted[name] {
			continue
		}
		add(domain.RegionGeometry{Name: name, Kind: domain.RegionKindCity, Geometry: f.Geometry})
	}

	aggregate := domain.RegionGeometry{
		Name: NormalizeName(opts.AggregateLabel),
		Kind: domain.RegionKindAggregate,
	}
	if center, ok := CountryCentroid(country); ok {
		aggregate.Geometry = center
	} else {
		logger.Warn("National boundary has no area, aggregate region has no geometry")
	}
	add(aggregate)

	return table
}

// CountryCentroid - центроид объединения всех полигонов границы страны
func CountryCentroid(country []domain.Feature) (orb.Point, bool) {
	var mp orb.MultiPolygon
	for _, f := range country {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = append(mp, g)
		case orb.MultiPolygon:
			mp = append(mp, g...)
		case orb.Collection:
			for _, sub := range g {
				switch s := sub.(type) {
				case orb.Polygon:
					mp = append(mp, s)
				case orb.MultiPolygon:
					mp = append(mp, s...)
				}
			}
		}
	}
	if len(mp) == 0 {
		return orb.Point{}, false
	}

	center, area := planar.CentroidArea(mp)
	if area == 0 {
		return orb.Point{}, false
	}
	return center, true
}
