package handlers

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/logger"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	mailQueue   services.MailQueue
	mailEnabled bool
}

func NewAuthHandler(authService *services.AuthService, mailQueue services.MailQueue, mailEnabled bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mailQueue:   mailQueue,
		mailEnabled: mailEnabled,
	}
}

// Register creates a new account and logs it in.
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Password != req.ConfirmPassword {
		response.BadRequest(c, "passwords do not match")
		return
	}

	result, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			response.BadRequest(c, err.Error())
		default:
			logger.Errorf("[auth] register failed: %v", err)
			response.Error(c, err)
		}
		return
	}

	response.Created(c, result)
}

// Login authenticates by username or email.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Errorf("[auth] login failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented token.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "invalid or expired token")
		return
	}

	if err := h.authService.RevokeToken(claims.JTI(), claims.UserID, claims.ExpiresAt.Time); err != nil {
		logger.Errorf("[auth] revoke failed for jti %s: %v", claims.JTI(), err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword mints a reset token. The response is 200 whether or not the
// email exists so the endpoint cannot be used to enumerate accounts. Without
// a mail server the token is returned in the body for development use.
// POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.OK(c, gin.H{"ok": true})
			return
		}
		logger.Errorf("[auth] forgot-password lookup failed: %v", err)
		response.Error(c, err)
		return
	}

	token, err := h.authService.CreateResetToken(user.ID)
	if err != nil {
		logger.Errorf("[auth] reset token creation failed: %v", err)
		response.Error(c, err)
		return
	}

	if h.mailEnabled {
		if err := h.mailQueue.Enqueue(services.ResetMail(user.Email, token)); err != nil {
			logger.Errorf("[auth] reset mail enqueue failed: %v", err)
		}
		response.OK(c, gin.H{"ok": true})
		return
	}

	response.OK(c, gin.H{"ok": true, "resetToken": token})
}

type resetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ResetPassword consumes a reset token.
// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Password != req.ConfirmPassword {
		response.BadRequest(c, "passwords do not match")
		return
	}

	err := h.authService.ResetPassword(req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken),
			errors.Is(err, services.ErrTokenAlreadyUsed),
			errors.Is(err, services.ErrTokenExpired):
			response.BadRequest(c, err.Error())
		default:
			logger.Errorf("[auth] reset-password failed: %v", err)
			response.Error(c, err)
		}
		return
	}

	response.OK(c, gin.H{"ok": true})
}

// GetCurrentUser returns the authenticated user.
// GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}
