package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/usecase"
)

// MockMetricWriter is a mock of MetricWriter
type MockMetricWriter struct {
	mock.Mock
}

func (m *MockMetricWriter) ReplaceDataset(ctx context.Context, dataset string, values []domain.MetricValue) (int64, error) {
	args := m.Called(ctx, dataset, values)
	return args.Get(0).(int64), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestUnpivot(t *testing.T) {
	raw := &domain.RawTable{
		Header: []string{" Maakond", "Aasta", "Leetrid", "", "Leetrid", "Mumps "},
		Rows: [][]string{
			{" Harju maakond ", "2021", "93,1", "x", "1", ""},
			{"", "2021", "50", "", "", "50"},
			{"Tartu maakond", "2021a", "90"},
		},
	}

	values := usecase.Unpivot(raw, "Maakond", "Aasta")

	assert.Equal(t, []domain.MetricValue{
		{Region: "Harju maakond", Year: "2021", Disease: "Leetrid", Value: strPtr("93,1")},
		{Region: "Harju maakond", Year: "2021", Disease: "Mumps", Value: nil},
		{Region: "Tartu maakond", Year: "2021a", Disease: "Leetrid", Value: strPtr("90")},
		{Region: "Tartu maakond", Year: "2021a", Disease: "Mumps", Value: nil},
	}, values)
}

func TestImportDataset(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("success", func(t *testing.T) {
		raw := testRawDataset()
		source, _ := mockRepositories(raw)

		vaccValues := usecase.Unpivot(&raw.Vaccination, "Maakond", "Aasta")
		incValues := usecase.Unpivot(&raw.Incidence, "Maakond", "Aasta")

		writer := &MockMetricWriter{}
		writer.On("ReplaceDataset", mock.Anything, domain.DatasetVaccination, vaccValues).Return(int64(len(vaccValues)), nil)
		writer.On("ReplaceDataset", mock.Anything, domain.DatasetIncidence, incValues).Return(int64(len(incValues)), nil)

		result, err := usecase.ImportDataset(ctx, source, writer, "Maakond", "Aasta", logger)

		require.NoError(t, err)
		assert.Equal(t, int64(len(vaccValues)), result.Vaccination)
		assert.Equal(t, int64(len(incValues)), result.Incidence)
		writer.AssertExpectations(t)
	})

	t.Run("writer error", func(t *testing.T) {
		source, _ := mockRepositories(testRawDataset())

		writer := &MockMetricWriter{}
		writer.On("ReplaceDataset", mock.Anything, domain.DatasetVaccination, mock.Anything).Return(int64(0), errors.New("connection reset"))

		result, err := usecase.ImportDataset(ctx, source, writer, "Maakond", "Aasta", logger)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "import vaccination table")
		writer.AssertNotCalled(t, "ReplaceDataset", mock.Anything, domain.DatasetIncidence, mock.Anything)
	})
}

func TestUnpivot_PreservesLookups(t *testing.T) {
	raw := testRawDataset()
	values := usecase.Unpivot(&raw.Vaccination, "Maakond", "Aasta")

	// обратная сборка: порядок первого появления, первое значение ячейки
	rebuilt := &domain.RawTable{Header: []string{"Maakond", "Aasta"}}
	cols := map[string]int{}
	rows := map[[2]string]int{}
	filled := map[[3]string]bool{}
	for _, v := range values {
		col, ok := cols[v.Disease]
		if !ok {
			col = len(rebuilt.Header)
			cols[v.Disease] = col
			rebuilt.Header = append(rebuilt.Header, v.Disease)
		}
		key := [2]string{v.Region, v.Year}
		idx, ok := rows[key]
		if !ok {
			idx = len(rebuilt.Rows)
			rows[key] = idx
			rebuilt.Rows = append(rebuilt.Rows, []string{v.Region, v.Year})
		}
		for len(rebuilt.Rows[idx]) <= col {
			rebuilt.Rows[idx] = append(rebuilt.Rows[idx], "")
		}
		cell := [3]string{v.Region, v.Year, v.Disease}
		if filled[cell] {
			continue
		}
		filled[cell] = true
		if v.Value != nil {
			rebuilt.Rows[idx][col] = *v.Value
		}
	}

	original := usecase.NormalizeTable(&raw.Vaccination, "Maakond", "Aasta")
	restored := usecase.NormalizeTable(rebuilt, "Maakond", "Aasta")

	assert.Equal(t, original.Diseases, restored.Diseases)
	assert.Equal(t, usecase.SelectableYears(original), usecase.SelectableYears(restored))
	for _, year := range usecase.SelectableYears(original) {
		for _, region := range []string{"Harju maakond", "Tartu maakond", "Eesti kokku", "Tallinn", "Pärnu maakond"} {
			a, okA := original.Lookup(region, year)
			b, okB := restored.Lookup(region, year)
			require.Equal(t, okA, okB, "%s %d", region, year)
			if okA {
				assert.Equal(t, a.Values["Leetrid"], b.Values["Leetrid"], "%s %d", region, year)
			}
		}
	}
}
