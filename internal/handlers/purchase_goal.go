package handlers

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type PurchaseGoalHandler struct {
	goalService *services.PurchaseGoalService
}

func NewPurchaseGoalHandler(goalService *services.PurchaseGoalService) *PurchaseGoalHandler {
	return &PurchaseGoalHandler{goalService: goalService}
}

// List returns a page of the profile's purchase goals
// GET /api/purchase-goals?q=&category=&priority=&status=&page=&pageSize=
func (h *PurchaseGoalHandler) List(c *gin.Context) {
	var req services.GoalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.goalService.List(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Create adds a purchase goal
// POST /api/purchase-goals
func (h *PurchaseGoalHandler) Create(c *gin.Context) {
	var req services.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	goal, err := h.goalService.Create(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, goal)
}

// Update partially modifies a goal
// PUT /api/purchase-goals/:id
func (h *PurchaseGoalHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	var req services.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.goalService.Update(middleware.GetProfileID(c), id, &req); err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Delete removes a goal and its savings history
// DELETE /api/purchase-goals/:id
func (h *PurchaseGoalHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	if err := h.goalService.Delete(middleware.GetProfileID(c), id); err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Complete marks a goal as achieved
// POST /api/purchase-goals/:id/complete
func (h *PurchaseGoalHandler) Complete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	if err := h.goalService.Complete(middleware.GetProfileID(c), id); err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// AddSaving records a deposit toward a goal
// POST /api/purchase-goals/:id/savings
func (h *PurchaseGoalHandler) AddSaving(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	var req services.AddSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saving, err := h.goalService.AddSaving(middleware.GetProfileID(c), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.Created(c, saving)
}

// ListSavings returns a goal's deposit history, newest first
// GET /api/purchase-goals/:id/savings
func (h *PurchaseGoalHandler) ListSavings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	savings, err := h.goalService.ListSavings(middleware.GetProfileID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, savings)
}

// Summary returns aggregate goal progress
// GET /api/purchase-goals/summary
func (h *PurchaseGoalHandler) Summary(c *gin.Context) {
	summary, err := h.goalService.Summary(middleware.GetProfileID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}
