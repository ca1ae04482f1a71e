package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/vaccination-dashboard/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName - единая нормализация ключевых имён (регион, заголовки):
// NFC и обрезка пробелов по краям. Применяется ко всем таблицам до join.
func NormalizeName(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// ParseYear приводит год к целому числу. Нечисловые и дробные значения дают nil.
func ParseYear(s string) *int {
	v := ParseNumber(s)
	if v == nil || *v != math.Trunc(*v) {
		return nil
	}
	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return nil
	}
	year := int(*v)
	return &year
}

// ParseNumber - best-effort приведение ячейки к числу; запятая допускается
// как десятичный разделитель. Пустые и нечисловые значения дают nil.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// NormalizeTable переименовывает столбец региона в каноническое поле,
// приводит год и значения. Столбцы кроме региона и года считаются болезнями.
// Ошибок не возвращает: отсутствующий столбец даёт пустые значения.
func NormalizeTable(raw *domain.RawTable, regionColumn, yearColumn string) *domain.MetricTable {
	regionColumn = NormalizeName(regionColumn)
	yearColumn = NormalizeName(yearColumn)

	regionIdx, yearIdx := -1, -1
	diseaseIdx := make(map[string]int)
	var diseases []string

	for i, h := range raw.Header {
		name := NormalizeName(h)
		switch {
		case name == regionColumn && regionIdx < 0:
			regionIdx = i
		case name == yearColumn && yearIdx < 0:
			yearIdx = i
		case name == "":
		default:
			if _, dup := diseaseIdx[name]; dup {
				continue
			}
			diseaseIdx[name] = i
			diseases = append(diseases, name)
		}
	}

	rows := make([]domain.MetricRow, 0, len(raw.Rows))
	for r := range raw.Rows {
		rawYear := strings.TrimSpace(raw.Cell(r, yearIdx))
		row := domain.MetricRow{
			Region:  NormalizeName(raw.Cell(r, regionIdx)),
			Year:    ParseYear(rawYear),
			RawYear: rawYear,
			Values:  make(map[string]*float64, len(diseases)),
		}
		for _, d := range diseases {
			row.Values[d] = ParseNumber(raw.Cell(r, diseaseIdx[d]))
		}
		rows = append(rows, row)
	}

	return domain.NewMetricTable(raw.Name, diseases, rows)
}

// FeatureName читает и нормализует строковое свойство объекта
func FeatureName(f domain.Feature, property string) string {
	v, ok := f.Properties[property]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return NormalizeName(s)
	case float64:
		return NormalizeName(strconv.FormatFloat(s, 'f', -1, 64))
	}
	return ""
}
