package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vaccination-dashboard/internal/pkg/errors"
	"github.com/vaccination-dashboard/internal/pkg/utils"
	"github.com/vaccination-dashboard/internal/pkg/validator"
	"github.com/vaccination-dashboard/internal/usecase"
	"github.com/vaccination-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// DashboardHandler - обработчик запросов дашборда
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler - создание нового DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetOptions godoc
// @Summary Значения селекторов
// @Description Годы, болезни (есть в обеих таблицах) и регионы; агрегат по стране идёт первым. Также значения по умолчанию.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.OptionsResponse}
// @Router /api/v1/options [get]
func (h *DashboardHandler) GetOptions(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.dashboardUC.Options(), nil)
}

// GetMap godoc
// @Summary Данные карты
// @Description Одна строка на уезд или доп. город: уровень вакцинации и число случаев за год. null - нет данных.
// @Tags Map
// @Produce json
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map [get]
func (h *DashboardHandler) GetMap(c *fiber.Ctx) error {
	start := time.Now()

	req, err := h.parseMapRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.MapData(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetMapGeoJSON godoc
// @Summary Данные карты в GeoJSON
// @Description FeatureCollection с геометриями регионов и свойствами VaccinationRate, IncidenceCount. Регионы без геометрии пропускаются.
// @Tags Map
// @Produce json
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map.geojson [get]
func (h *DashboardHandler) GetMapGeoJSON(c *fiber.Ctx) error {
	req, err := h.parseMapRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.dashboardUC.MapGeoJSON(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		h.logger.Error("Failed to marshal feature collection", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(data)
}

// GetMapImage godoc
// @Summary Хороплеты
// @Description Две карты рядом: уровень вакцинации (YlGnBu) и заболеваемость (Reds)
// @Tags Map
// @Produce png
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/map.png [get]
func (h *DashboardHandler) GetMapImage(c *fiber.Ctx) error {
	req, err := h.parseMapRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	img, err := h.dashboardUC.MapImage(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendImage(c, img)
}

// GetDetail godoc
// @Summary Панель деталей региона
// @Description Уровень вакцинации и число случаев для выбранного региона. Отсутствующее значение помечается "data unavailable".
// @Tags Detail
// @Produce json
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Param region query string true "Регион"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/detail [get]
func (h *DashboardHandler) GetDetail(c *fiber.Ctx) error {
	req, err := h.parseSelectionRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.Detail(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetRegionImage godoc
// @Summary Контур региона
// @Description Контур выбранного уезда или города. Для агрегата и регионов без геометрии - 404.
// @Tags Detail
// @Produce png
// @Param region query string true "Регион"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/detail/geometry.png [get]
func (h *DashboardHandler) GetRegionImage(c *fiber.Ctx) error {
	var req dto.RegionRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	img, err := h.dashboardUC.RegionImage(req.Region)
	if err != nil {
		h.logger.Debug("Region image unavailable", zap.String("region", req.Region), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendImage(c, img)
}

// GetTrend godoc
// @Summary Тренд вакцинации
// @Description Уровень вакцинации региона за не более чем 5 предыдущих лет (выбранный год не входит)
// @Tags Trend
// @Produce json
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Param region query string true "Регион"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrendResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trend [get]
func (h *DashboardHandler) GetTrend(c *fiber.Ctx) error {
	req, err := h.parseSelectionRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.Trend(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Points)})
}

// GetTrendImage godoc
// @Summary График тренда
// @Description Линейный график вакцинации, ось Y 0-100. Нет истории - 404.
// @Tags Trend
// @Produce png
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Param region query string true "Регион"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trend.png [get]
func (h *DashboardHandler) GetTrendImage(c *fiber.Ctx) error {
	req, err := h.parseSelectionRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	img, err := h.dashboardUC.TrendImage(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendImage(c, img)
}

// GetDashboard godoc
// @Summary Весь дашборд
// @Description Карта, детали и тренд для одного выбора за один запрос
// @Tags Dashboard
// @Produce json
// @Param year query int true "Год"
// @Param disease query string true "Болезнь"
// @Param region query string true "Регион"
// @Success 200 {object} utils.SuccessResponse{data=dto.DashboardResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	req, err := h.parseSelectionRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.Dashboard(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func (h *DashboardHandler) parseMapRequest(c *fiber.Ctx) (dto.MapRequest, error) {
	var req dto.MapRequest
	if err := c.QueryParser(&req); err != nil {
		h.logger.Debug("Invalid query", zap.String("query", string(c.Request().URI().QueryString())), zap.Error(err))
		return req, errors.ErrInvalidRequest
	}
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *DashboardHandler) parseSelectionRequest(c *fiber.Ctx) (dto.SelectionRequest, error) {
	var req dto.SelectionRequest
	if err := c.QueryParser(&req); err != nil {
		h.logger.Debug("Invalid query", zap.String("query", string(c.Request().URI().QueryString())), zap.Error(err))
		return req, errors.ErrInvalidRequest
	}
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}
