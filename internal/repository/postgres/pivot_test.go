package postgres

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestPivot(t *testing.T) {
	values := []metricValue{
		{Region: "Harju maakond", Year: str("2020"), Disease: "Leetrid", Value: str("91.2")},
		{Region: "Harju maakond", Year: str("2020"), Disease: "Mumps", Value: str("88")},
		{Region: "Tartu maakond", Year: str("2020"), Disease: "Mumps", Value: sql.NullString{}},
		{Region: "Harju maakond", Year: str("2020"), Disease: "Leetrid", Value: str("50")},
		{Region: "Tartu maakond", Year: sql.NullString{}, Disease: "Leetrid", Value: str("1")},
	}

	table := pivot("vaccination", "Maakond", "Aasta", values)

	assert.Equal(t, "vaccination", table.Name)
	assert.Equal(t, []string{"Maakond", "Aasta", "Leetrid", "Mumps"}, table.Header)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, []string{"Harju maakond", "2020", "91.2", "88"}, table.Rows[0], "first value wins")
	assert.Equal(t, "", table.Cell(1, 2))
	assert.Equal(t, "", table.Cell(1, 3), "null value stays empty")
	assert.Equal(t, "", table.Cell(2, 1), "null year stays empty")
	assert.Equal(t, "1", table.Cell(2, 2))
}

func TestPivot_Empty(t *testing.T) {
	table := pivot("incidence", "Maakond", "Aasta", nil)

	assert.Equal(t, []string{"Maakond", "Aasta"}, table.Header)
	assert.Empty(t, table.Rows)
}
