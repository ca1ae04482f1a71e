package domain

import "github.com/paulmach/orb"

const (
	LabelVaccinationRate = "VaccinationRate"
	LabelIncidenceCount  = "IncidenceCount"
)

// Selection - выбранные пользователем год, болезнь и регион
type Selection struct {
	Year    int
	Disease string
	Region  string
}

// RegionValue - строка двухколоночной выборки (регион, значение)
type RegionValue struct {
	Region string   `json:"region"`
	Value  *float64 `json:"value"`
}

// MetricSelection - результат фильтра по году и болезни
type MetricSelection struct {
	Label string
	Rows  []RegionValue
}

// MapRow - строка данных для хороплета
type MapRow struct {
	Region          string
	Kind            RegionKind
	Geometry        orb.Geometry
	VaccinationRate *float64
	IncidenceCount  *float64
}

// MetricDetail - значение одной метрики в панели деталей
type MetricDetail struct {
	Value     *float64
	Available bool
}

// Detail - панель деталей выбранного региона
type Detail struct {
	Selection         Selection
	IsAggregate       bool
	Vaccination       MetricDetail
	Incidence         MetricDetail
	GeometryAvailable bool
}

// TrendPoint - точка линии тренда
type TrendPoint struct {
	Year  int
	Value *float64
}

// Trend - вакцинация региона за окно предыдущих лет
type Trend struct {
	Selection Selection
	Window    []int
	Points    []TrendPoint
}

// Empty - нет исторических данных: ни одной точки со значением
func (t Trend) Empty() bool {
	for _, p := range t.Points {
		if p.Value != nil {
			return false
		}
	}
	return true
}

// RegionOption - вариант выбора региона
type RegionOption struct {
	Name      string `json:"name"`
	Aggregate bool   `json:"aggregate"`
}

// Options - допустимые значения селекторов
type Options struct {
	Years    []int
	Diseases []string
	Regions  []RegionOption
}
