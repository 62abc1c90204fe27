package handlers

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type InvestmentHandler struct {
	investmentService *services.InvestmentService
}

func NewInvestmentHandler(investmentService *services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// List returns a page of the profile's investments
// GET /api/investments?q=&category=&broker=&page=&pageSize=
func (h *InvestmentHandler) List(c *gin.Context) {
	var req services.InvestmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.investmentService.List(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Create records an investment position
// POST /api/investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req services.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	investment, err := h.investmentService.Create(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, investment)
}

// Update partially modifies an investment
// PUT /api/investments/:id
func (h *InvestmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid investment id")
		return
	}

	var req services.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.investmentService.Update(middleware.GetProfileID(c), id, &req); err != nil {
		if errors.Is(err, services.ErrInvestmentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Delete removes an investment
// DELETE /api/investments/:id
func (h *InvestmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid investment id")
		return
	}

	if err := h.investmentService.Delete(middleware.GetProfileID(c), id); err != nil {
		if errors.Is(err, services.ErrInvestmentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Summary returns portfolio totals and per-category breakdown
// GET /api/investments/summary
func (h *InvestmentHandler) Summary(c *gin.Context) {
	summary, err := h.investmentService.Summary(middleware.GetProfileID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}
