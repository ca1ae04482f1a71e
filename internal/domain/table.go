package domain

// Имена наборов метрик
const (
	DatasetVaccination = "vaccination"
	DatasetIncidence   = "incidence"
)

// RawTable - таблица в том виде, в каком её отдал источник (xlsx, csv, postgres)
type RawTable struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Cell возвращает значение ячейки или пустую строку, если строка короче заголовка
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// MetricRow - одна строка метрики: регион, год и значения по болезням.
// Year == nil, если год не удалось привести к числу.
type MetricRow struct {
	Region  string
	Year    *int
	RawYear string
	Values  map[string]*float64
}

// MetricTable - нормализованная широкая таблица (столбцы - болезни)
type MetricTable struct {
	Name       string
	Diseases   []string
	Rows       []MetricRow
	Duplicates int

	index map[regionYear]int
}

type regionYear struct {
	region string
	year   int
}

// NewMetricTable собирает таблицу и индекс (region, year) -> строка.
// Повторная пара (region, year) отбрасывается: побеждает первая строка.
func NewMetricTable(name string, diseases []string, rows []MetricRow) *MetricTable {
	t := &MetricTable{
		Name:     name,
		Diseases: diseases,
		Rows:     make([]MetricRow, 0, len(rows)),
		index:    make(map[regionYear]int, len(rows)),
	}

	for _, row := range rows {
		if row.Year != nil {
			key := regionYear{region: row.Region, year: *row.Year}
			if _, exists := t.index[key]; exists {
				t.Duplicates++
				continue
			}
			t.index[key] = len(t.Rows)
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// HasDisease проверяет наличие столбца болезни
func (t *MetricTable) HasDisease(disease string) bool {
	for _, d := range t.Diseases {
		if d == disease {
			return true
		}
	}
	return false
}

// Lookup ищет строку по (region, year)
func (t *MetricTable) Lookup(region string, year int) (*MetricRow, bool) {
	i, ok := t.index[regionYear{region: region, year: year}]
	if !ok {
		return nil, false
	}
	return &t.Rows[i], true
}

// MetricValue - ячейка широкой таблицы в длинном виде (регион, год, болезнь, значение).
// Год и значение остаются текстом источника; Value == nil для пустой ячейки.
type MetricValue struct {
	Region  string
	Year    string
	Disease string
	Value   *string
}
