package handlers

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns the profile's categories, optionally filtered by type
// GET /api/categories?type=INCOME|EXPENSE
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(middleware.GetProfileID(c), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, categories)
}

// Create adds a category
// POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, category)
}

// Update modifies a category
// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.categoryService.Update(middleware.GetProfileID(c), id, &req); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Delete removes a category
// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.categoryService.Delete(middleware.GetProfileID(c), id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
