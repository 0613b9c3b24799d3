package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"keyword-insight/internal/config"
	"keyword-insight/internal/service"
	"keyword-insight/pkg/errs"
	"keyword-insight/pkg/export"
	"keyword-insight/pkg/logger"
)

const dateLayout = "2006-01-02"

// InsightHandler exposes the analysis pipeline over HTTP.
type InsightHandler struct {
	insight service.InsightService
	log     *logger.Logger
}

func NewInsightHandler(insight service.InsightService) *InsightHandler {
	return &InsightHandler{
		insight: insight,
		log:     logger.GetLogger().WithField("component", "insight_handler"),
	}
}

// Analyze handles GET /api/v1/insight?keyword=&start=&end= and returns the
// full report as JSON (chart-ready series plus growth metrics).
func (h *InsightHandler) Analyze(c *fiber.Ctx) error {
	report, err := h.run(c)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// Export handles GET /api/v1/insight/export and returns the series as a
// BOM-prefixed CSV download named {resolved_keyword}_total.csv.
func (h *InsightHandler) Export(c *fiber.Ctx) error {
	report, err := h.run(c)
	if err != nil {
		return err
	}

	data, err := export.CSV(report.Series)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.Filename(report.Baseline.ResolvedKeyword)))
	return c.Send(data)
}

func (h *InsightHandler) run(c *fiber.Ctx) (*service.Report, error) {
	keyword := c.Query("keyword")
	if keyword == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "keyword query parameter is required")
	}

	start, err := parseDate(c.Query("start"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "start must be YYYY-MM-DD")
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end must be YYYY-MM-DD")
	}

	report, err := h.insight.Analyze(c.Context(), keyword, start, end)
	if err != nil {
		return nil, h.mapError(err)
	}
	return report, nil
}

// mapError translates the error taxonomy onto HTTP statuses. Configuration
// problems surface the setup guide instead of an opaque 500.
func (h *InsightHandler) mapError(err error) error {
	switch {
	case errs.IsConfiguration(err):
		h.log.WithError(err).Error("Credentials missing or invalid")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error()+"\n\n"+config.SetupGuide())
	case errs.IsNoResult(err):
		return fiber.NewError(fiber.StatusNotFound,
			"insufficient data: no record for this keyword (volume too low, or a typo)")
	case errs.IsTransport(err):
		h.log.WithError(err).Error("Upstream request failed")
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return err
	}
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}
