package handlers

import (
	"errors"
	"time"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	budgetService *services.BudgetService
}

func NewBudgetHandler(budgetService *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// List returns the profile's budgets for a month
// GET /api/budgets?month=M&year=YYYY
func (h *BudgetHandler) List(c *gin.Context) {
	month, year := monthYearOrNow(c)

	budgets, err := h.budgetService.List(middleware.GetProfileID(c), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, budgets)
}

// Upsert creates or replaces the budget for a category/month/year slot
// POST /api/budgets
func (h *BudgetHandler) Upsert(c *gin.Context) {
	var req services.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	budget, err := h.budgetService.Upsert(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, budget)
}

// Update changes a budget's amount
// PUT /api/budgets/:id
func (h *BudgetHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid budget id")
		return
	}

	var req services.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.budgetService.UpdateAmount(middleware.GetProfileID(c), id, req.Amount); err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Delete removes a budget
// DELETE /api/budgets/:id
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid budget id")
		return
	}

	if err := h.budgetService.Delete(middleware.GetProfileID(c), id); err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Summary compares budgets against actual spend for a month
// GET /api/budgets/summary?month=M&year=YYYY
func (h *BudgetHandler) Summary(c *gin.Context) {
	month, year := monthYearOrNow(c)

	rows, err := h.budgetService.Summary(middleware.GetProfileID(c), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// monthYearOrNow reads month/year query params, defaulting to the current month.
func monthYearOrNow(c *gin.Context) (int, int) {
	now := time.Now()
	month := intQuery(c, "month")
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	year := intQuery(c, "year")
	if year == 0 {
		year = now.Year()
	}
	return month, year
}
