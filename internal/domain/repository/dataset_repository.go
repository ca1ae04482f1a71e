package repository

import (
	"context"

	"github.com/vaccination-dashboard/internal/domain"
)

// MetricRepository отдаёт сырые таблицы вакцинации и заболеваемости
type MetricRepository interface {
	// LoadVaccination читает таблицу уровня вакцинации (0-100)
	LoadVaccination(ctx context.Context) (*domain.RawTable, error)

	// LoadIncidence читает таблицу числа заболевших
	LoadIncidence(ctx context.Context) (*domain.RawTable, error)
}

// GeometryRepository отдаёт коллекции геометрий
type GeometryRepository interface {
	// LoadCounties - границы уездов
	LoadCounties(ctx context.Context) ([]domain.Feature, error)

	// LoadSettlements - населённые пункты, из которых берутся доп. города
	LoadSettlements(ctx context.Context) ([]domain.Feature, error)

	// LoadCountry - граница страны для точки агрегата
	LoadCountry(ctx context.Context) ([]domain.Feature, error)
}

// MetricWriter сохраняет таблицу метрик в длинном виде
type MetricWriter interface {
	// ReplaceDataset атомарно заменяет все значения набора (vaccination, incidence)
	ReplaceDataset(ctx context.Context, dataset string, values []domain.MetricValue) (int64, error)
}
