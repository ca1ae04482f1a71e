package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot/palette/brewer"
)

const classes = 7

var noDataColor = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}

// classScale - равные интервалы между min и max, цвет из последовательной палитры
type classScale struct {
	min, max float64
	colors   []color.Color
	empty    bool
}

func newClassScale(paletteName string, values []*float64) (classScale, error) {
	pal, err := brewer.GetPalette(brewer.TypeSequential, paletteName, classes)
	if err != nil {
		return classScale{}, fmt.Errorf("palette %s: %w", paletteName, err)
	}

	s := classScale{
		min:    math.Inf(1),
		max:    math.Inf(-1),
		colors: pal.Colors(),
		empty:  true,
	}
	for _, v := range values {
		if v == nil {
			continue
		}
		s.empty = false
		s.min = math.Min(s.min, *v)
		s.max = math.Max(s.max, *v)
	}
	return s, nil
}

func (s classScale) class(v float64) int {
	if s.max == s.min {
		return len(s.colors) - 1
	}
	i := int((v - s.min) / (s.max - s.min) * float64(len(s.colors)))
	if i >= len(s.colors) {
		i = len(s.colors) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// color - цвет значения; nil означает "нет данных", а не ноль
func (s classScale) color(v *float64) color.Color {
	if v == nil || s.empty {
		return noDataColor
	}
	return s.colors[s.class(*v)]
}

// bounds - границы интервала класса i
func (s classScale) bounds(i int) (float64, float64) {
	step := (s.max - s.min) / float64(len(s.colors))
	return s.min + step*float64(i), s.min + step*float64(i+1)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
