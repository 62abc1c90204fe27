package handlers

import (
	"errors"
	"strconv"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// List returns the user's profiles
// GET /api/profiles
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileService.List(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profiles)
}

// Create adds a new profile owned by the user
// POST /api/profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	var req services.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

// Update renames or re-themes a profile
// PUT /api/profiles/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid profile id")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err = h.profileService.Update(middleware.GetUserID(c), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotOwned):
			response.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrProfileNotFound):
			response.NotFound(c, err.Error())
		default:
			response.Error(c, err)
		}
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Delete removes a profile
// DELETE /api/profiles/:id
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid profile id")
		return
	}

	err = h.profileService.Delete(middleware.GetUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotOwned):
			response.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrProfileNotFound):
			response.NotFound(c, err.Error())
		default:
			response.Error(c, err)
		}
		return
	}
	response.OK(c, gin.H{"ok": true})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
