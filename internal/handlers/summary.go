package handlers

import (
	"strconv"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService *services.SummaryService
}

func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Overall returns total income, expense and balance
// GET /api/summary
func (h *SummaryHandler) Overall(c *gin.Context) {
	summary, err := h.summaryService.Overall(middleware.GetProfileID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// ByCategory returns totals grouped per category
// GET /api/summary/categories?month=M&year=YYYY
func (h *SummaryHandler) ByCategory(c *gin.Context) {
	month := intQuery(c, "month")
	year := intQuery(c, "year")

	rows, err := h.summaryService.ByCategory(middleware.GetProfileID(c), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// Monthly returns per-month totals for one year
// GET /api/summary/monthly?year=YYYY
func (h *SummaryHandler) Monthly(c *gin.Context) {
	year := intQuery(c, "year")
	if year == 0 {
		response.BadRequest(c, "year query parameter required")
		return
	}

	rows, err := h.summaryService.Monthly(middleware.GetProfileID(c), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// Annual returns per-year totals across the profile's history
// GET /api/summary/annual
func (h *SummaryHandler) Annual(c *gin.Context) {
	rows, err := h.summaryService.Annual(middleware.GetProfileID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
