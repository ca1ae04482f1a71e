package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/paulmach/orb"
	"github.com/vaccination-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	PaletteVaccination = "YlGnBu"
	PaletteIncidence   = "Reds"
)

// MapPanel - одна карта из пары
type MapPanel struct {
	Title       string
	LegendTitle string
	Palette     string
	Value       func(domain.MapRow) *float64
}

// VaccinationPanel - карта уровня вакцинации
func VaccinationPanel() MapPanel {
	return MapPanel{
		Title:       "Vaccination rate",
		LegendTitle: "Vaccination %",
		Palette:     PaletteVaccination,
		Value:       func(r domain.MapRow) *float64 { return r.VaccinationRate },
	}
}

// IncidencePanel - карта заболеваемости
func IncidencePanel() MapPanel {
	return MapPanel{
		Title:       "Incidence",
		LegendTitle: "Cases",
		Palette:     PaletteIncidence,
		Value:       func(r domain.MapRow) *float64 { return r.IncidenceCount },
	}
}

// Choropleth рисует панели рядом, у каждой своя цветовая шкала. Результат - PNG.
func Choropleth(rows []domain.MapRow, width, height vg.Length, panels ...MapPanel) ([]byte, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("no panels to render")
	}

	plots := make([]*plot.Plot, 0, len(panels))
	for _, panel := range panels {
		p, err := mapPlot(rows, panel)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}

	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func mapPlot(rows []domain.MapRow, panel MapPanel) (*plot.Plot, error) {
	values := make([]*float64, 0, len(rows))
	for _, r := range rows {
		values = append(values, panel.Value(r))
	}

	scale, err := newClassScale(panel.Palette, values)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = panel.Title
	p.HideAxes()
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(8)

	edge := draw.LineStyle{Color: color.White, Width: vg.Points(0.5)}
	for _, r := range rows {
		if err := addGeometry(p, r.Geometry, scale.color(panel.Value(r)), edge); err != nil {
			return nil, fmt.Errorf("region %s: %w", r.Region, err)
		}
	}

	p.Legend.Add(panel.LegendTitle)
	if !scale.empty {
		for i := len(scale.colors) - 1; i >= 0; i-- {
			lo, hi := scale.bounds(i)
			p.Legend.Add(formatValue(lo)+" - "+formatValue(hi), &plotter.Polygon{Color: scale.colors[i]})
		}
	}
	p.Legend.Add("no data", &plotter.Polygon{Color: noDataColor})

	return p, nil
}

// RegionOutline - контур одного региона для панели деталей
func RegionOutline(name string, g orb.Geometry, width, height vg.Length) ([]byte, error) {
	p := plot.New()
	p.Title.Text = name
	p.HideAxes()

	fill := color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	if err := addGeometry(p, g, fill, edge); err != nil {
		return nil, err
	}

	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("png writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func addGeometry(p *plot.Plot, g orb.Geometry, fill color.Color, edge draw.LineStyle) error {
	switch geom := g.(type) {
	case nil:
		return nil
	case orb.Polygon:
		return addPolygon(p, geom, fill, edge)
	case orb.MultiPolygon:
		for _, poly := range geom {
			if err := addPolygon(p, poly, fill, edge); err != nil {
				return err
			}
		}
	case orb.Point:
		return addPoints(p, []orb.Point{geom}, fill)
	case orb.MultiPoint:
		return addPoints(p, geom, fill)
	case orb.Collection:
		for _, sub := range geom {
			if err := addGeometry(p, sub, fill, edge); err != nil {
				return err
			}
		}
	}
	return nil
}

func addPolygon(p *plot.Plot, poly orb.Polygon, fill color.Color, edge draw.LineStyle) error {
	rings := make([]plotter.XYer, 0, len(poly))
	for _, ring := range poly {
		if len(ring) == 0 {
			continue
		}
		rings = append(rings, toXYs(ring))
	}
	if len(rings) == 0 {
		return nil
	}

	pg, err := plotter.NewPolygon(rings...)
	if err != nil {
		return err
	}
	pg.Color = fill
	pg.LineStyle = edge
	p.Add(pg)
	return nil
}

func addPoints(p *plot.Plot, pts []orb.Point, fill color.Color) error {
	s, err := plotter.NewScatter(toXYs(pts))
	if err != nil {
		return err
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  fill,
		Radius: vg.Points(6),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(s)

	ring := *s
	ring.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(6),
		Shape:  draw.RingGlyph{},
	}
	p.Add(&ring)
	return nil
}

func toXYs(pts []orb.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X()
		xys[i].Y = pt.Y()
	}
	return xys
}
