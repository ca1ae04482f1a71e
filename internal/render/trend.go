package render

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/vaccination-dashboard/internal/domain"
	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoPoints - в ряду нет ни одного значения
var ErrNoPoints = errors.New("trend has no values to plot")

// TrendChart - линия уровня вакцинации: ось Y 0-100, деление на каждый год
func TrendChart(title string, points []domain.TrendPoint, width, height int) ([]byte, error) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		xs = append(xs, float64(p.Year))
		ys = append(ys, *p.Value)
	}
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}

	first, last := points[0].Year, points[len(points)-1].Year
	if first == last {
		first--
		last++
	}

	ticks := make([]chart.Tick, 0, last-first+1)
	for y := first; y <= last; y++ {
		ticks = append(ticks, chart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Year",
			Range: &chart.ContinuousRange{Min: float64(first), Max: float64(last)},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Vaccination rate (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Vaccination rate",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render trend chart: %w", err)
	}
	return buf.Bytes(), nil
}
