package usecase

import (
	"sort"

	"github.com/vaccination-dashboard/internal/domain"
)

const DefaultTrendWindow = 5

// TrendWindow - не более size ближайших лет строго до выбранного, по возрастанию.
// years должны быть отсортированы.
func TrendWindow(years []int, selected, size int) []int {
	if size <= 0 {
		size = DefaultTrendWindow
	}

	before := make([]int, 0, len(years))
	for _, y := range years {
		if y < selected {
			before = append(before, y)
		}
	}
	if len(before) > size {
		before = before[len(before)-size:]
	}
	return before
}

// TrendSeries - строки вакцинации региона с годом из окна, по возрастанию года
func TrendSeries(t *domain.MetricTable, region, disease string, window []int) []domain.TrendPoint {
	inWindow := make(map[int]bool, len(window))
	for _, y := range window {
		inWindow[y] = true
	}

	points := make([]domain.TrendPoint, 0, len(window))
	for _, row := range t.Rows {
		if row.Region != region || row.Year == nil || !inWindow[*row.Year] {
			continue
		}
		points = append(points, domain.TrendPoint{Year: *row.Year, Value: row.Values[disease]})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})
	return points
}
