package usecase

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/vaccination-dashboard/internal/domain"
	"github.com/vaccination-dashboard/internal/pkg/errors"
	"github.com/vaccination-dashboard/internal/pkg/metrics"
	"github.com/vaccination-dashboard/internal/render"
	"github.com/vaccination-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

const (
	mapImageWidth      = 1200
	mapImageHeight     = 600
	outlineImageSize   = 360
	trendChartWidth    = 900
	trendChartHeight   = 420
	renderMapImage     = "map"
	renderOutlineImage = "outline"
	renderTrendImage   = "trend"
)

// DashboardUseCase - все производные таблицы дашборда. Каждый вызов
// пересчитывает результат из загруженных данных по явно переданному выбору.
type DashboardUseCase struct {
	ds          *domain.Dataset
	trendWindow int
	metrics     *metrics.Manager
	logger      *zap.Logger
}

// NewDashboardUseCase создает новый DashboardUseCase
func NewDashboardUseCase(ds *domain.Dataset, trendWindow int, m *metrics.Manager, logger *zap.Logger) *DashboardUseCase {
	if trendWindow <= 0 {
		trendWindow = DefaultTrendWindow
	}

	m.SetDatasetRows("vaccination", len(ds.Vaccination.Rows), ds.Vaccination.Duplicates)
	m.SetDatasetRows("incidence", len(ds.Incidence.Rows), ds.Incidence.Duplicates)
	m.SetDatasetRows("geometry", len(ds.Geometry.Regions), 0)

	return &DashboardUseCase{
		ds:          ds,
		trendWindow: trendWindow,
		metrics:     m,
		logger:      logger,
	}
}

// Options - допустимые значения селекторов и значения по умолчанию
func (uc *DashboardUseCase) Options() *dto.OptionsResponse {
	opts := uc.ds.Options
	resp := &dto.OptionsResponse{
		Years:          opts.Years,
		Diseases:       opts.Diseases,
		Regions:        opts.Regions,
		AggregateLabel: uc.ds.AggregateLabel,
	}
	if len(opts.Years) > 0 {
		resp.Defaults.Year = opts.Years[len(opts.Years)-1]
	}
	if len(opts.Diseases) > 0 {
		resp.Defaults.Disease = opts.Diseases[0]
	}
	if len(opts.Regions) > 0 {
		resp.Defaults.Region = opts.Regions[0].Name
	}
	return resp
}

// MapRows - left join геометрий с выборками за год
func (uc *DashboardUseCase) MapRows(req dto.MapRequest) ([]domain.MapRow, error) {
	disease := NormalizeName(req.Disease)
	if err := uc.checkDisease(disease); err != nil {
		return nil, err
	}

	vaccination, err := FilterByYear(uc.ds.Vaccination, req.Year, disease, domain.LabelVaccinationRate)
	if err != nil {
		return nil, err
	}
	incidence, err := FilterByYear(uc.ds.Incidence, req.Year, disease, domain.LabelIncidenceCount)
	if err != nil {
		return nil, err
	}

	if len(vaccination.Rows) == 0 && len(incidence.Rows) == 0 {
		uc.logger.Debug("No metric rows for year", zap.Int("year", req.Year), zap.String("disease", disease))
	}

	return JoinMapData(uc.ds.Geometry, vaccination, incidence), nil
}

// MapData - строки карты без геометрии
func (uc *DashboardUseCase) MapData(req dto.MapRequest) (*dto.MapResponse, error) {
	rows, err := uc.MapRows(req)
	if err != nil {
		return nil, err
	}

	resp := &dto.MapResponse{
		Year:    req.Year,
		Disease: NormalizeName(req.Disease),
		Rows:    make([]dto.MapRow, 0, len(rows)),
		Total:   len(rows),
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, dto.MapRow{
			Region:          r.Region,
			Kind:            string(r.Kind),
			HasGeometry:     r.Geometry != nil,
			VaccinationRate: r.VaccinationRate,
			IncidenceCount:  r.IncidenceCount,
		})
	}
	return resp, nil
}

// MapGeoJSON - те же строки как FeatureCollection; регионы без геометрии пропускаются
func (uc *DashboardUseCase) MapGeoJSON(req dto.MapRequest) (*geojson.FeatureCollection, error) {
	rows, err := uc.MapRows(req)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, r := range rows {
		if r.Geometry == nil {
			continue
		}
		f := geojson.NewFeature(r.Geometry)
		f.Properties["name"] = r.Region
		f.Properties["kind"] = string(r.Kind)
		f.Properties[domain.LabelVaccinationRate] = r.VaccinationRate
		f.Properties[domain.LabelIncidenceCount] = r.IncidenceCount
		fc.Append(f)
	}
	return fc, nil
}

// MapImage - две карты рядом: вакцинация и заболеваемость
func (uc *DashboardUseCase) MapImage(req dto.MapRequest) ([]byte, error) {
	rows, err := uc.MapRows(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := render.Choropleth(rows, vg.Points(mapImageWidth), vg.Points(mapImageHeight),
		render.VaccinationPanel(), render.IncidencePanel())
	if err != nil {
		uc.logger.Error("Failed to render choropleth", zap.Error(err))
		return nil, errors.ErrRenderFailed
	}
	uc.metrics.ObserveRender(renderMapImage, time.Since(start))
	return img, nil
}

// Detail - панель деталей: обе метрики и наличие геометрии
func (uc *DashboardUseCase) Detail(req dto.SelectionRequest) (*dto.DetailResponse, error) {
	sel := uc.selection(req)
	if err := uc.checkDisease(sel.Disease); err != nil {
		return nil, err
	}

	d := LookupDetail(uc.ds, sel)

	resp := &dto.DetailResponse{
		Region:            sel.Region,
		Year:              sel.Year,
		Disease:           sel.Disease,
		IsAggregate:       d.IsAggregate,
		Vaccination:       metricValue("Vaccination rate (%)", d.Vaccination, formatRate),
		Incidence:         metricValue("Cases", d.Incidence, formatCount),
		GeometryAvailable: d.GeometryAvailable,
	}

	if !d.Vaccination.Available || !d.Incidence.Available {
		uc.metrics.IncDegraded(metrics.DegradedMissingMetric)
	}
	if !d.IsAggregate && !d.GeometryAvailable {
		uc.metrics.IncDegraded(metrics.DegradedMissingGeometry)
		resp.Warnings = append(resp.Warnings, dto.MessageMissingGeometry)
	}

	return resp, nil
}

// RegionImage - контур региона для панели деталей
func (uc *DashboardUseCase) RegionImage(region string) ([]byte, error) {
	region = NormalizeName(region)

	g, ok := uc.ds.Geometry.Get(region)
	if !ok || g.Kind == domain.RegionKindAggregate || !g.HasGeometry() {
		uc.metrics.IncDegraded(metrics.DegradedMissingGeometry)
		return nil, errors.ErrMissingGeometry.WithDetails(map[string]interface{}{"region": region})
	}

	start := time.Now()
	img, err := render.RegionOutline(g.Name, g.Geometry, vg.Points(outlineImageSize), vg.Points(outlineImageSize))
	if err != nil {
		uc.logger.Error("Failed to render region outline", zap.String("region", region), zap.Error(err))
		return nil, errors.ErrRenderFailed
	}
	uc.metrics.ObserveRender(renderOutlineImage, time.Since(start))
	return img, nil
}

// TrendData - окно предыдущих лет и ряд вакцинации региона
func (uc *DashboardUseCase) TrendData(req dto.SelectionRequest) (domain.Trend, error) {
	sel := uc.selection(req)
	if err := uc.checkDisease(sel.Disease); err != nil {
		return domain.Trend{}, err
	}

	window := TrendWindow(uc.ds.Options.Years, sel.Year, uc.trendWindow)
	return domain.Trend{
		Selection: sel,
		Window:    window,
		Points:    TrendSeries(uc.ds.Vaccination, sel.Region, sel.Disease, window),
	}, nil
}

// Trend - JSON представление тренда
func (uc *DashboardUseCase) Trend(req dto.SelectionRequest) (*dto.TrendResponse, error) {
	trend, err := uc.TrendData(req)
	if err != nil {
		return nil, err
	}

	resp := &dto.TrendResponse{
		Region:  trend.Selection.Region,
		Disease: trend.Selection.Disease,
		Year:    trend.Selection.Year,
		Window:  trend.Window,
		Points:  make([]dto.TrendPoint, 0, len(trend.Points)),
		Empty:   trend.Empty(),
	}
	for _, p := range trend.Points {
		resp.Points = append(resp.Points, dto.TrendPoint{Year: p.Year, VaccinationRate: p.Value})
	}
	if resp.Empty {
		uc.metrics.IncDegraded(metrics.DegradedEmptyTrend)
		resp.Note = dto.MessageNoHistory
	}
	return resp, nil
}

// TrendImage - линейный график тренда
func (uc *DashboardUseCase) TrendImage(req dto.SelectionRequest) ([]byte, error) {
	trend, err := uc.TrendData(req)
	if err != nil {
		return nil, err
	}
	if trend.Empty() {
		uc.metrics.IncDegraded(metrics.DegradedEmptyTrend)
		return nil, errors.ErrEmptyTrend
	}

	title := trend.Selection.Disease + ": " + trend.Selection.Region
	start := time.Now()
	img, err := render.TrendChart(title, trend.Points, trendChartWidth, trendChartHeight)
	if stderrors.Is(err, render.ErrNoPoints) {
		uc.metrics.IncDegraded(metrics.DegradedEmptyTrend)
		return nil, errors.ErrEmptyTrend
	}
	if err != nil {
		uc.logger.Error("Failed to render trend chart", zap.Error(err))
		return nil, errors.ErrRenderFailed
	}
	uc.metrics.ObserveRender(renderTrendImage, time.Since(start))
	return img, nil
}

// Dashboard - карта, детали и тренд за один вызов
func (uc *DashboardUseCase) Dashboard(req dto.SelectionRequest) (*dto.DashboardResponse, error) {
	mapData, err := uc.MapData(req.MapRequest())
	if err != nil {
		return nil, err
	}
	detail, err := uc.Detail(req)
	if err != nil {
		return nil, err
	}
	trend, err := uc.Trend(req)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Selection: req,
		Map:       mapData,
		Detail:    detail,
		Trend:     trend,
	}, nil
}

func (uc *DashboardUseCase) selection(req dto.SelectionRequest) domain.Selection {
	return domain.Selection{
		Year:    req.Year,
		Disease: NormalizeName(req.Disease),
		Region:  NormalizeName(req.Region),
	}
}

// checkDisease - болезнь должна быть в обеих таблицах
func (uc *DashboardUseCase) checkDisease(disease string) error {
	for _, d := range uc.ds.Options.Diseases {
		if d == disease {
			return nil
		}
	}
	return errors.ErrUnknownDisease.WithDetails(map[string]interface{}{"disease": disease})
}

func metricValue(label string, m domain.MetricDetail, format func(float64) string) dto.MetricValue {
	if !m.Available {
		return dto.MetricValue{Label: label, Message: dto.MessageDataUnavailable}
	}
	return dto.MetricValue{
		Label:     label,
		Value:     m.Value,
		Display:   format(*m.Value),
		Available: true,
	}
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCount(v float64) string {
	return strconv.Itoa(CaseCount(v))
}

// CaseCount - число случаев для показа: дробная часть отбрасывается
func CaseCount(v float64) int {
	return int(v)
}
