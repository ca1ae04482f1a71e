package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/usecase"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims spaces", "  Harju maakond\t", "Harju maakond"},
		{"composes decomposed tilde", "Jo\u0303geva maakond", "J\u00f5geva maakond"},
		{"keeps inner spaces", "Narva  linn", "Narva  linn"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.NormalizeName(tt.input))
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"2020", intPtr(2020)},
		{" 2021 ", intPtr(2021)},
		{"2022.0", intPtr(2022)},
		{"2020.5", nil},
		{"2019a", nil},
		{"", nil},
		{"1e12", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.ParseYear(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected *float64
	}{
		{"93", ptr(93)},
		{"93,5", ptr(93.5)},
		{" 7.25 ", ptr(7.25)},
		{"1,234.5", nil},
		{"-", nil},
		{"NaN", nil},
		{"Inf", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.ParseNumber(tt.input))
		})
	}
}

func TestNormalizeTable(t *testing.T) {
	raw := testRawDataset().Vaccination
	table := usecase.NormalizeTable(&raw, "Maakond", "Aasta")

	assert.Equal(t, "vaktsineerimine.xlsx", table.Name)
	assert.Equal(t, []string{"Leetrid", "Mumps", "Rotaviirus"}, table.Diseases)
	assert.Equal(t, 1, table.Duplicates)
	assert.Len(t, table.Rows, len(raw.Rows)-1)

	t.Run("first duplicate row wins", func(t *testing.T) {
		row, ok := table.Lookup("Harju maakond", 2021)
		require.True(t, ok)
		assert.Equal(t, ptr(85), row.Values["Leetrid"])
	})

	t.Run("region is trimmed", func(t *testing.T) {
		row, ok := table.Lookup("Pärnu maakond", 2022)
		require.True(t, ok)
		assert.Equal(t, ptr(80), row.Values["Leetrid"])
	})

	t.Run("comma decimal and missing cells", func(t *testing.T) {
		row, ok := table.Lookup("Harju maakond", 2018)
		require.True(t, ok)
		assert.Equal(t, ptr(88.5), row.Values["Leetrid"])
		assert.Nil(t, row.Values["Rotaviirus"])

		short, ok := table.Lookup("Pärnu maakond", 1999)
		require.True(t, ok)
		assert.Nil(t, short.Values["Leetrid"])
	})

	t.Run("malformed years kept without year", func(t *testing.T) {
		var raws []string
		for _, row := range table.Rows {
			if row.Year == nil {
				raws = append(raws, row.RawYear)
			}
		}
		assert.ElementsMatch(t, []string{"2019a", "", "2020.5"}, raws)
	})
}

func TestNormalizeTable_MissingColumns(t *testing.T) {
	raw := &domain.RawTable{
		Name:   "empty.csv",
		Header: []string{"Region", "Leetrid"},
		Rows:   [][]string{{"Harju maakond", "90"}},
	}

	table := usecase.NormalizeTable(raw, "Maakond", "Aasta")

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0].Region)
	assert.Nil(t, table.Rows[0].Year)
	assert.Equal(t, []string{"Region", "Leetrid"}, table.Diseases)
}

func TestFeatureName(t *testing.T) {
	f := domain.Feature{Properties: map[string]interface{}{
		"MNIMI": " Harju maakond ",
		"KOOD":  float64(37),
		"EMPTY": nil,
		"LIST":  []interface{}{"a"},
	}}

	assert.Equal(t, "Harju maakond", usecase.FeatureName(f, "MNIMI"))
	assert.Equal(t, "37", usecase.FeatureName(f, "KOOD"))
	assert.Equal(t, "", usecase.FeatureName(f, "EMPTY"))
	assert.Equal(t, "", usecase.FeatureName(f, "LIST"))
	assert.Equal(t, "", usecase.FeatureName(f, "MISSING"))
}

func intPtr(v int) *int {
	return &v
}
