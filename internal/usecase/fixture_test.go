package usecase_test

import (
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/usecase"
)

const aggregateLabel = "Eesti kokku"

var countyNames = []string{
	"Harju maakond", "Hiiu maakond", "Ida-Viru maakond", "Jõgeva maakond", "Järva maakond",
	"Lääne maakond", "Lääne-Viru maakond", "Põlva maakond", "Pärnu maakond", "Rapla maakond",
	"Saare maakond", "Tartu maakond", "Valga maakond", "Viljandi maakond", "Võru maakond",
}

func ptr(v float64) *float64 {
	return &v
}

func square(x, y, size float64) orb.Polygon {
	return orb.Polygon{{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y}}}
}

func testOptions() usecase.DatasetOptions {
	return usecase.DatasetOptions{
		RegionColumn: "Maakond",
		YearColumn:   "Aasta",
		Geometry: usecase.GeometryOptions{
			CountyNameProperty:     "MNIMI",
			SettlementNameProperty: "ONIMI",
			ExtraCities:            []string{"Tallinn", "Narva linn"},
			AggregateLabel:         aggregateLabel,
		},
	}
}

// testRawDataset - 15 уездов (у Hiiu нет геометрии), 3 населённых пункта
// (два из них доп. города) и граница страны 10x4 с центром в (5, 2)
func testRawDataset() *domain.RawDataset {
	counties := make([]domain.Feature, 0, len(countyNames))
	for i, name := range countyNames {
		f := domain.Feature{
			Properties: map[string]interface{}{"MNIMI": "  " + name + " "},
			Geometry:   square(float64(i%5)*2, float64(i/5), 1),
		}
		if name == "Hiiu maakond" {
			f.Geometry = nil
		}
		counties = append(counties, f)
	}

	settlements := []domain.Feature{
		{Properties: map[string]interface{}{"ONIMI": "Tallinn"}, Geometry: square(0.2, 0.2, 0.3)},
		{Properties: map[string]interface{}{"ONIMI": "Narva linn "}, Geometry: orb.Point{9.5, 0.5}},
		{Properties: map[string]interface{}{"ONIMI": "Tartu linn"}, Geometry: orb.Point{6, 1}},
	}

	country := []domain.Feature{
		{Geometry: orb.MultiPolygon{square(0, 0, 4), orb.Polygon{{{4, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 0}}}}},
	}

	vaccination := domain.RawTable{
		Name:   "vaktsineerimine.xlsx",
		Header: []string{" Maakond ", "Aasta ", "Leetrid", " Mumps", "Rotaviirus", ""},
		Rows: [][]string{
			{"Tartu maakond", "2018", "90", "80", "70"},
			{"Tartu maakond", "2019", "91", "81", "71"},
			{"Tartu maakond", "2020", "92", "82", "72"},
			{"Tartu maakond", "2021", "93", "83", "73"},
			{"Tartu maakond", "2022", "94", "84", "74"},
			{"Tartu maakond", "2023", "95", "85", "75"},
			{"Harju maakond", "2018", "88,5", "79", ""},
			{"Harju maakond", "2019", "87", "78", ""},
			{"Harju maakond", "2022", "86", "77", ""},
			{"Harju maakond", "2021", "85", "76", ""},
			{"Harju maakond", "2021", "10", "10", ""},
			{"Harju maakond", "2023", "89", "-", ""},
			{"Eesti kokku", "2018", "89", "80", ""},
			{"Eesti kokku", "2019", "", "80", ""},
			{"Eesti kokku", "2020", "90", "81", ""},
			{"Eesti kokku", "2021", "91", "82", ""},
			{"Eesti kokku", "2022", "92", "83", ""},
			{"Eesti kokku", "2023", "93", "84", ""},
			{"Tallinn", "2023", "87.25", "78", ""},
			{" Pärnu maakond ", "2022", "80", "70", ""},
			{"Tartu maakond", "2019a", "1", "1", ""},
			{"Pärnu maakond", "", "1", "1", ""},
			{"Pärnu maakond", "2020.5", "1", "1", ""},
			{"Pärnu maakond", "1999"},
		},
	}

	incidence := domain.RawTable{
		Name:   "Haigused.xlsx",
		Header: []string{"Maakond", "Aasta", "Leetrid", "Mumps", "Läkaköha"},
		Rows: [][]string{
			{"Harju maakond", "2020", "4", "1", "30"},
			{"Harju maakond", "2023", "7.6", "", "12"},
			{"Tartu maakond", "2018", "0", "0", "3"},
			{"Tartu maakond", "2023", "2", "1", "5"},
			{"Narva linn", "2023", "1", "0", "2"},
			{"Eesti kokku", "2023", "15", "3", "80"},
			{"Eesti kokku", "abc", "99", "99", "99"},
		},
	}

	return &domain.RawDataset{
		Vaccination: vaccination,
		Incidence:   incidence,
		Counties:    counties,
		Settlements: settlements,
		Country:     country,
	}
}

func testDataset() *domain.Dataset {
	return usecase.PrepareDataset(testRawDataset(), testOptions(), zap.NewNop())
}
