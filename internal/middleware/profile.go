package middleware

import (
	"net/http"
	"strconv"

	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	// ProfileHeader selects which profile a request operates on.
	ProfileHeader    = "x-profile-id"
	ContextProfileID = "profile_id"
)

// ProfileRequired resolves the x-profile-id header and verifies the
// authenticated user owns that profile. Must run after AuthRequired.
func ProfileRequired(profileService *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ProfileHeader)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "x-profile-id header required"})
			c.Abort()
			return
		}

		profileID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || profileID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid x-profile-id header"})
			c.Abort()
			return
		}

		userID := GetUserID(c)
		owned, err := profileService.IsOwned(userID, uint(profileID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			c.Abort()
			return
		}
		if !owned {
			c.JSON(http.StatusForbidden, gin.H{"error": "profile does not belong to user"})
			c.Abort()
			return
		}

		c.Set(ContextProfileID, uint(profileID))
		c.Next()
	}
}

// GetProfileID gets the resolved profile ID from context
func GetProfileID(c *gin.Context) uint {
	if id, exists := c.Get(ContextProfileID); exists {
		return id.(uint)
	}
	return 0
}
