package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/render"
)

func ptr(v float64) *float64 {
	return &v
}

func square(x, y float64) orb.Polygon {
	return orb.Polygon{{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}}}
}

func assertPNG(t *testing.T, data []byte, wantWidth int) {
	t.Helper()

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	if wantWidth > 0 {
		assert.Equal(t, wantWidth, cfg.Width)
	}
}

func TestChoropleth(t *testing.T) {
	rows := []domain.MapRow{
		{Region: "Harju maakond", Kind: domain.RegionKindCounty, Geometry: square(0, 0), VaccinationRate: ptr(90), IncidenceCount: ptr(12)},
		{Region: "Tartu maakond", Kind: domain.RegionKindCounty, Geometry: orb.MultiPolygon{square(1, 0), square(3, 3)}, VaccinationRate: ptr(80)},
		{Region: "Tallinn", Kind: domain.RegionKindCity, Geometry: orb.Point{0.5, 0.5}, IncidenceCount: ptr(3)},
		{Region: "Hiiu maakond", Kind: domain.RegionKindCounty},
	}

	data, err := render.Choropleth(rows, vg.Points(800), vg.Points(400), render.VaccinationPanel(), render.IncidencePanel())
	require.NoError(t, err)
	assertPNG(t, data, 0)
}

func TestChoropleth_AllMissing(t *testing.T) {
	rows := []domain.MapRow{{Region: "Harju maakond", Geometry: square(0, 0)}}

	data, err := render.Choropleth(rows, vg.Points(400), vg.Points(200), render.VaccinationPanel())
	require.NoError(t, err)
	assertPNG(t, data, 0)
}

func TestChoropleth_NoPanels(t *testing.T) {
	_, err := render.Choropleth(nil, vg.Points(400), vg.Points(200))
	assert.Error(t, err)
}

func TestRegionOutline(t *testing.T) {
	data, err := render.RegionOutline("Harju maakond", square(24, 59), vg.Points(300), vg.Points(300))
	require.NoError(t, err)
	assertPNG(t, data, 0)
}

func TestTrendChart(t *testing.T) {
	points := []domain.TrendPoint{
		{Year: 2019, Value: ptr(91)},
		{Year: 2020, Value: nil},
		{Year: 2021, Value: ptr(88.5)},
	}

	data, err := render.TrendChart("Leetrid", points, 640, 320)
	require.NoError(t, err)
	assertPNG(t, data, 640)
}

func TestTrendChart_SinglePoint(t *testing.T) {
	data, err := render.TrendChart("Leetrid", []domain.TrendPoint{{Year: 2022, Value: ptr(95)}}, 640, 320)
	require.NoError(t, err)
	assertPNG(t, data, 640)
}

func TestTrendChart_NoValues(t *testing.T) {
	_, err := render.TrendChart("Leetrid", []domain.TrendPoint{{Year: 2022}}, 640, 320)
	assert.ErrorIs(t, err, render.ErrNoPoints)
}
