package domain

import "github.com/paulmach/orb"

// RegionKind - вид региона в объединённой таблице геометрий
type RegionKind string

const (
	RegionKindCounty    RegionKind = "county"
	RegionKindCity      RegionKind = "city"
	RegionKindAggregate RegionKind = "aggregate"
)

// Feature - объект из GeoJSON коллекции до нормализации
type Feature struct {
	Properties map[string]interface{}
	Geometry   orb.Geometry
}

// RegionGeometry - запись объединённой таблицы: имя региона и его геометрия
type RegionGeometry struct {
	Name     string
	Kind     RegionKind
	Geometry orb.Geometry
}

// HasGeometry - есть ли у региона пригодная для отрисовки геометрия
func (r RegionGeometry) HasGeometry() bool {
	if r.Geometry == nil {
		return false
	}
	switch g := r.Geometry.(type) {
	case orb.Polygon:
		return len(g) > 0
	case orb.MultiPolygon:
		return len(g) > 0
	}
	return true
}

// GeometryTable - объединённая таблица: уезды, доп. города и агрегат
type GeometryTable struct {
	Regions []RegionGeometry
}

// Get ищет регион по нормализованному имени
func (t *GeometryTable) Get(name string) (RegionGeometry, bool) {
	for _, r := range t.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return RegionGeometry{}, false
}
