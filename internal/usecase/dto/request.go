package dto

// MapRequest - запрос данных карты
type MapRequest struct {
	Year    int    `json:"year" query:"year" validate:"required"`
	Disease string `json:"disease" query:"disease" validate:"required"`
}

// SelectionRequest - полный выбор пользователя: год, болезнь, регион
type SelectionRequest struct {
	Year    int    `json:"year" query:"year" validate:"required"`
	Disease string `json:"disease" query:"disease" validate:"required"`
	Region  string `json:"region" query:"region" validate:"required"`
}

// RegionRequest - запрос контура региона
type RegionRequest struct {
	Region string `json:"region" query:"region" validate:"required"`
}

// MapRequest возвращает часть выбора, нужную карте
func (r SelectionRequest) MapRequest() MapRequest {
	return MapRequest{Year: r.Year, Disease: r.Disease}
}
