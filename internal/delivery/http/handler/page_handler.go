package handler

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/vaccination-dashboard/internal/usecase"
	"github.com/vaccination-dashboard/internal/usecase/dto"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData - данные для шаблона страницы дашборда
type PageData struct {
	Title       string
	APIPrefix   string
	TrendWindow int
	Options     *dto.OptionsResponse
}

// PageHandler - хендлер для рендеринга страницы дашборда
type PageHandler struct {
	templates   *template.Template
	dashboardUC *usecase.DashboardUseCase
	apiPrefix   string
	trendWindow int
}

// NewPageHandler - создание нового хендлера страницы
func NewPageHandler(dashboardUC *usecase.DashboardUseCase, apiPrefix string, trendWindow int) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	if trendWindow <= 0 {
		trendWindow = usecase.DefaultTrendWindow
	}

	return &PageHandler{
		templates:   tmpl,
		dashboardUC: dashboardUC,
		apiPrefix:   apiPrefix,
		trendWindow: trendWindow,
	}, nil
}

// RenderDashboard - рендеринг страницы с селекторами
func (h *PageHandler) RenderDashboard(c *fiber.Ctx) error {
	data := PageData{
		Title:       "Vaktsineerimine ja haigestumus maakonniti",
		APIPrefix:   h.apiPrefix,
		TrendWindow: h.trendWindow,
		Options:     h.dashboardUC.Options(),
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "dashboard.html", data)
}
