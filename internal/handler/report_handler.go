package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"keude/internal/service"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetDashboardStats returns the headline figures, trailing series, and
// recent entries
// GET /api/v1/dashboard/stats
func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetProjection extrapolates the balance trend forward
// GET /api/v1/dashboard/projection?months=3
func (h *ReportHandler) GetProjection(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "3"))
	if err != nil || months <= 0 {
		months = 3
	}

	projection, err := h.service.GetProjection(months)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute projection"})
	}
	return c.JSON(projection)
}

// rangeFromQuery reads start/end date params, defaulting to the current
// calendar year.
func rangeFromQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location())

	if q := c.Query("start"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return start, end, err
		}
		start = parsed
	}
	if q := c.Query("end"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return start, end, err
		}
		end = parsed
	}
	return start, end, nil
}

// GET /api/v1/reports/summary?start=&end=
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	start, end, err := rangeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	summary, err := h.service.GetSummary(start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build summary"})
	}
	return c.JSON(summary)
}

// GET /api/v1/reports/income-statement?month=2025-08
func (h *ReportHandler) GetIncomeStatement(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))

	statement, err := h.service.GetIncomeStatement(month)
	if err != nil {
		if err == service.ErrInvalidMonth {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build income statement"})
	}
	return c.JSON(statement)
}

// GET /api/v1/reports/cash-flow?month=2025-08
func (h *ReportHandler) GetCashFlow(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))

	flow, err := h.service.GetCashFlow(month)
	if err != nil {
		if err == service.ErrInvalidMonth {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build cash flow"})
	}
	return c.JSON(flow)
}

// GET /api/v1/reports/balance-sheet?date=2025-08-31
func (h *ReportHandler) GetBalanceSheet(c *fiber.Ctx) error {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
		}
		date = parsed
	}

	sheet, err := h.service.GetBalanceSheet(date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build balance sheet"})
	}
	return c.JSON(sheet)
}

// ExportCSV streams the period's book as CSV
// GET /api/v1/reports/export.csv?start=&end=
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	start, end, err := rangeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	csv, err := h.service.ExportCSV(start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export CSV"})
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="laporan-keuangan.csv"`)
	return c.SendString(csv)
}

// ExportXLSX streams the same rows as a workbook
// GET /api/v1/reports/export.xlsx?start=&end=
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	start, end, err := rangeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	buf, err := h.service.ExportXLSX(start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export workbook"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="laporan-keuangan.xlsx"`)
	return c.Send(buf.Bytes())
}
