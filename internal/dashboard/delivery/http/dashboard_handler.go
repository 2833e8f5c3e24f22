package http

import (
	"context"
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// dashboardView is the data handed to dashboard.html.
type dashboardView struct {
	Ticker      string
	Model       string
	Message     string
	Report      *dto.SentimentReport
	HourlyChart dto.ChartSpec
	DailyChart  dto.ChartSpec
}

// DashboardHandler serves the sentiment dashboard and its JSON API.
type DashboardHandler struct {
	sentimentService service.SentimentService
	logger           *logger.Logger
	modelName        string
}

// NewDashboardHandler creates a new DashboardHandler. modelName is shown in
// the page description.
func NewDashboardHandler(sentimentService service.SentimentService, logger *logger.Logger, modelName string) *DashboardHandler {
	return &DashboardHandler{sentimentService: sentimentService, logger: logger, modelName: modelName}
}

// RegisterRoutes registers the dashboard, API and health routes.
func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/healthz", h.Health)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/sentiment/:ticker", h.GetSentiment)
}

// Dashboard renders the input field and, for a ticker that analyzes
// cleanly, both charts and the headline table. Any failure renders only
// the static instruction message.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ticker := service.NormalizeTicker(c.QueryParam("ticker"))
	view := dashboardView{Ticker: ticker, Model: h.modelName}

	report, err := h.analyze(c, ticker)
	if err != nil {
		view.Message = common.InvalidTickerMessage
		return c.Render(http.StatusOK, "dashboard.html", view)
	}

	view.Report = report
	view.HourlyChart = report.HourlyChart
	view.DailyChart = report.DailyChart
	return c.Render(http.StatusOK, "dashboard.html", view)
}

// GetSentiment returns the full report for a ticker as JSON.
func (h *DashboardHandler) GetSentiment(c echo.Context) error {
	ticker := service.NormalizeTicker(c.Param("ticker"))

	report, err := h.analyze(c, ticker)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: common.InvalidTickerMessage})
	}
	return c.JSON(http.StatusOK, report)
}

// Health reports liveness.
func (h *DashboardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// analyze is the single error boundary: detail goes to the log, callers
// only learn that the run failed.
func (h *DashboardHandler) analyze(c echo.Context, ticker string) (*dto.SentimentReport, error) {
	ctx := requestContext(c)
	report, err := h.sentimentService.Analyze(ctx, ticker)
	if err != nil {
		h.logger.ErrorContext(ctx, "Sentiment analysis failed",
			logger.StringField("ticker", ticker),
			logger.StringField("stage", string(service.StageOf(err))),
			logger.ErrorField(err),
		)
		return nil, err
	}
	return report, nil
}

func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		ctx = logger.WithRequestID(ctx, id)
	}
	return ctx
}
