package usecase_test

import (
	"bytes"
	"image/png"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaccination-dashboard/internal/pkg/errors"
	"github.com/vaccination-dashboard/internal/pkg/metrics"
	"github.com/vaccination-dashboard/internal/usecase"
	"github.com/vaccination-dashboard/internal/usecase/dto"
)

func newTestUseCase(t *testing.T) (*usecase.DashboardUseCase, *metrics.Manager) {
	t.Helper()
	m := metrics.NewManager()
	return usecase.NewDashboardUseCase(testDataset(), 0, m, zap.NewNop()), m
}

func requireAppError(t *testing.T, err error, expected *errors.AppError) *errors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, expected.Code, appErr.Code)
	assert.Equal(t, expected.StatusCode, appErr.StatusCode)
	return appErr
}

func requirePNG(t *testing.T, data []byte) {
	t.Helper()
	require.NotEmpty(t, data)
	_, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestDashboardUseCase_Options(t *testing.T) {
	uc, m := newTestUseCase(t)

	opts := uc.Options()

	assert.Equal(t, []string{"Leetrid", "Mumps"}, opts.Diseases)
	assert.Equal(t, aggregateLabel, opts.AggregateLabel)
	assert.Equal(t, dto.SelectionDefaults{Year: 2023, Disease: "Leetrid", Region: aggregateLabel}, opts.Defaults)
	assert.True(t, opts.Regions[0].Aggregate)

	count, err := testutil.GatherAndCount(m.Registry(), "vaccination_dashboard_dataset_rows")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDashboardUseCase_MapData(t *testing.T) {
	uc, _ := newTestUseCase(t)

	t.Run("one row per region", func(t *testing.T) {
		resp, err := uc.MapData(dto.MapRequest{Year: 2023, Disease: " Leetrid "})
		require.NoError(t, err)

		assert.Equal(t, "Leetrid", resp.Disease)
		assert.Equal(t, 17, resp.Total)
		require.Len(t, resp.Rows, 17)

		for _, r := range resp.Rows {
			assert.NotEqual(t, aggregateLabel, r.Region)
			if r.Region == "Hiiu maakond" {
				assert.False(t, r.HasGeometry)
			} else {
				assert.True(t, r.HasGeometry, r.Region)
			}
		}
	})

	t.Run("year without data", func(t *testing.T) {
		resp, err := uc.MapData(dto.MapRequest{Year: 1900, Disease: "Mumps"})
		require.NoError(t, err)

		require.Len(t, resp.Rows, 17)
		for _, r := range resp.Rows {
			assert.Nil(t, r.VaccinationRate)
			assert.Nil(t, r.IncidenceCount)
		}
	})

	t.Run("disease only in one table", func(t *testing.T) {
		_, err := uc.MapData(dto.MapRequest{Year: 2023, Disease: "Rotaviirus"})
		appErr := requireAppError(t, err, errors.ErrUnknownDisease)
		assert.Equal(t, "Rotaviirus", appErr.Details["disease"])
	})
}

func TestDashboardUseCase_MapGeoJSON(t *testing.T) {
	uc, _ := newTestUseCase(t)

	fc, err := uc.MapGeoJSON(dto.MapRequest{Year: 2023, Disease: "Leetrid"})
	require.NoError(t, err)

	require.Len(t, fc.Features, 16)
	for _, f := range fc.Features {
		assert.NotEqual(t, "Hiiu maakond", f.Properties["name"])
		if f.Properties["name"] == "Harju maakond" {
			assert.Equal(t, ptr(89), f.Properties["VaccinationRate"])
			assert.Equal(t, "county", f.Properties["kind"])
		}
	}
}

func TestDashboardUseCase_MapImage(t *testing.T) {
	uc, _ := newTestUseCase(t)

	img, err := uc.MapImage(dto.MapRequest{Year: 2023, Disease: "Leetrid"})
	require.NoError(t, err)
	requirePNG(t, img)
}

func TestDashboardUseCase_Detail(t *testing.T) {
	uc, m := newTestUseCase(t)

	t.Run("vaccination unavailable", func(t *testing.T) {
		resp, err := uc.Detail(dto.SelectionRequest{Year: 2020, Disease: "Leetrid", Region: "Harju maakond"})
		require.NoError(t, err)

		assert.False(t, resp.Vaccination.Available)
		assert.Equal(t, dto.MessageDataUnavailable, resp.Vaccination.Message)
		assert.Empty(t, resp.Vaccination.Display)

		assert.True(t, resp.Incidence.Available)
		assert.Equal(t, "4", resp.Incidence.Display)
		assert.True(t, resp.GeometryAvailable)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("display formats", func(t *testing.T) {
		resp, err := uc.Detail(dto.SelectionRequest{Year: 2018, Disease: "Leetrid", Region: "Harju maakond"})
		require.NoError(t, err)
		assert.Equal(t, "88.5", resp.Vaccination.Display)

		resp, err = uc.Detail(dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Harju maakond"})
		require.NoError(t, err)
		assert.Equal(t, "7", resp.Incidence.Display)
	})

	t.Run("aggregate", func(t *testing.T) {
		resp, err := uc.Detail(dto.SelectionRequest{Year: 2023, Disease: "Mumps", Region: aggregateLabel})
		require.NoError(t, err)

		assert.True(t, resp.IsAggregate)
		assert.Equal(t, "84", resp.Vaccination.Display)
		assert.Equal(t, "3", resp.Incidence.Display)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("missing geometry warning", func(t *testing.T) {
		resp, err := uc.Detail(dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Hiiu maakond"})
		require.NoError(t, err)

		assert.False(t, resp.GeometryAvailable)
		assert.Equal(t, []string{dto.MessageMissingGeometry}, resp.Warnings)
	})

	count, err := testutil.GatherAndCount(m.Registry(), "vaccination_dashboard_degraded_responses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCaseCount_MatchesDetailDisplay(t *testing.T) {
	uc, _ := newTestUseCase(t)

	assert.Equal(t, 7, usecase.CaseCount(7.6))
	assert.Equal(t, 0, usecase.CaseCount(0.99))

	req := dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Harju maakond"}
	mapData, err := uc.MapData(req.MapRequest())
	require.NoError(t, err)
	detail, err := uc.Detail(req)
	require.NoError(t, err)

	for _, row := range mapData.Rows {
		if row.Region != "Harju maakond" {
			continue
		}
		require.NotNil(t, row.IncidenceCount)
		assert.Equal(t, strconv.Itoa(usecase.CaseCount(*row.IncidenceCount)), detail.Incidence.Display)
	}
}

func TestDashboardUseCase_RegionImage(t *testing.T) {
	uc, _ := newTestUseCase(t)

	img, err := uc.RegionImage("Harju maakond")
	require.NoError(t, err)
	requirePNG(t, img)

	img, err = uc.RegionImage(" Narva linn")
	require.NoError(t, err)
	requirePNG(t, img)

	for _, region := range []string{aggregateLabel, "Hiiu maakond", "Atlantis"} {
		_, err := uc.RegionImage(region)
		appErr := requireAppError(t, err, errors.ErrMissingGeometry)
		assert.Equal(t, region, appErr.Details["region"])
	}
}

func TestDashboardUseCase_Trend(t *testing.T) {
	uc, _ := newTestUseCase(t)

	t.Run("previous five years", func(t *testing.T) {
		resp, err := uc.Trend(dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Tartu maakond"})
		require.NoError(t, err)

		assert.Equal(t, []int{2018, 2019, 2020, 2021, 2022}, resp.Window)
		require.Len(t, resp.Points, 5)
		assert.False(t, resp.Empty)
		assert.Empty(t, resp.Note)
		for _, p := range resp.Points {
			assert.Less(t, p.Year, 2023)
		}
	})

	t.Run("no history", func(t *testing.T) {
		resp, err := uc.Trend(dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Tallinn"})
		require.NoError(t, err)

		assert.True(t, resp.Empty)
		assert.Empty(t, resp.Points)
		assert.Equal(t, dto.MessageNoHistory, resp.Note)
	})

	t.Run("image", func(t *testing.T) {
		img, err := uc.TrendImage(dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Tartu maakond"})
		require.NoError(t, err)
		requirePNG(t, img)
	})

	t.Run("image without history", func(t *testing.T) {
		_, err := uc.TrendImage(dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Tallinn"})
		requireAppError(t, err, errors.ErrEmptyTrend)
	})

	t.Run("only empty values", func(t *testing.T) {
		req := dto.SelectionRequest{Year: 2020, Disease: "Leetrid", Region: "Pärnu maakond"}

		resp, err := uc.Trend(req)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Points)
		for _, p := range resp.Points {
			assert.Nil(t, p.VaccinationRate)
		}
		assert.True(t, resp.Empty)
		assert.Equal(t, dto.MessageNoHistory, resp.Note)

		_, err = uc.TrendImage(req)
		requireAppError(t, err, errors.ErrEmptyTrend)
	})
}

func TestDashboardUseCase_Dashboard(t *testing.T) {
	uc, _ := newTestUseCase(t)
	req := dto.SelectionRequest{Year: 2023, Disease: "Leetrid", Region: "Harju maakond"}

	resp, err := uc.Dashboard(req)
	require.NoError(t, err)

	assert.Equal(t, req, resp.Selection)
	assert.Len(t, resp.Map.Rows, 17)
	assert.Equal(t, "89", resp.Detail.Vaccination.Display)
	assert.Equal(t, []int{2018, 2019, 2020, 2021, 2022}, resp.Trend.Window)

	_, err = uc.Dashboard(dto.SelectionRequest{Year: 2023, Disease: "Läkaköha", Region: "Harju maakond"})
	requireAppError(t, err, errors.ErrUnknownDisease)
}
