package dto

import "github.com/vaccination-dashboard/internal/domain"

const (
	MessageDataUnavailable = "data unavailable"
	MessageMissingGeometry = "selected region has no valid geometry"
	MessageNoHistory       = "no historical data"
)

// SelectionDefaults - начальные значения селекторов
type SelectionDefaults struct {
	Year    int    `json:"year,omitempty"`
	Disease string `json:"disease,omitempty"`
	Region  string `json:"region,omitempty"`
}

// OptionsResponse - значения для трёх селекторов
type OptionsResponse struct {
	Years          []int                 `json:"years"`
	Diseases       []string              `json:"diseases"`
	Regions        []domain.RegionOption `json:"regions"`
	AggregateLabel string                `json:"aggregate_label"`
	Defaults       SelectionDefaults     `json:"defaults"`
}

// MapRow - строка карты; null означает "нет данных"
type MapRow struct {
	Region          string   `json:"region"`
	Kind            string   `json:"kind"`
	HasGeometry     bool     `json:"has_geometry"`
	VaccinationRate *float64 `json:"VaccinationRate"`
	IncidenceCount  *float64 `json:"IncidenceCount"`
}

// MapResponse - данные обеих карт
type MapResponse struct {
	Year    int      `json:"year"`
	Disease string   `json:"disease"`
	Rows    []MapRow `json:"rows"`
	Total   int      `json:"total"`
}

// MetricValue - одно числовое поле панели деталей
type MetricValue struct {
	Label     string   `json:"label"`
	Value     *float64 `json:"value"`
	Display   string   `json:"display,omitempty"`
	Available bool     `json:"available"`
	Message   string   `json:"message,omitempty"`
}

// DetailResponse - панель деталей
type DetailResponse struct {
	Region            string      `json:"region"`
	Year              int         `json:"year"`
	Disease           string      `json:"disease"`
	IsAggregate       bool        `json:"is_aggregate"`
	Vaccination       MetricValue `json:"vaccination"`
	Incidence         MetricValue `json:"incidence"`
	GeometryAvailable bool        `json:"geometry_available"`
	Warnings          []string    `json:"warnings,omitempty"`
}

// TrendPoint - точка тренда
type TrendPoint struct {
	Year            int      `json:"year"`
	VaccinationRate *float64 `json:"VaccinationRate"`
}

// TrendResponse - вакцинация за предыдущие годы
type TrendResponse struct {
	Region  string       `json:"region"`
	Disease string       `json:"disease"`
	Year    int          `json:"year"`
	Window  []int        `json:"window"`
	Points  []TrendPoint `json:"points"`
	Empty   bool         `json:"empty"`
	Note    string       `json:"note,omitempty"`
}

// DashboardResponse - всё содержимое страницы за один запрос
type DashboardResponse struct {
	Selection SelectionRequest `json:"selection"`
	Map       *MapResponse     `json:"map"`
	Detail    *DetailResponse  `json:"detail"`
	Trend     *TrendResponse   `json:"trend"`
}
