package main

import (
	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential-handling routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "fintrack"})
	})

	// Auth routes (public, rate limited)
	auth := r.Group("/auth", authLimiter.Middleware())
	{
		auth.POST("/register", svc.authHandler.Register)
		auth.POST("/login", svc.authHandler.Login)
		auth.POST("/forgot-password", svc.authHandler.ForgotPassword)
		auth.POST("/reset-password", svc.authHandler.ResetPassword)
	}

	// Authenticated auth routes
	authed := r.Group("/auth")
	authed.Use(middleware.AuthRequired(svc.authService))
	{
		authed.POST("/logout", svc.authHandler.Logout)
		authed.GET("/me", svc.authHandler.GetCurrentUser)
	}

	// API routes (all require a valid token)
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(svc.authService))
	{
		// Profiles are user-scoped, not profile-scoped
		api.GET("/profiles", svc.profileHandler.List)
		api.POST("/profiles", svc.profileHandler.Create)
		api.PUT("/profiles/:id", svc.profileHandler.Update)
		api.DELETE("/profiles/:id", svc.profileHandler.Delete)

		// Everything below additionally requires an owned x-profile-id
		scoped := api.Group("")
		scoped.Use(middleware.ProfileRequired(svc.profileService))
		{
			scoped.GET("/categories", svc.categoryHandler.List)
			scoped.POST("/categories", svc.categoryHandler.Create)
			scoped.PUT("/categories/:id", svc.categoryHandler.Update)
			scoped.DELETE("/categories/:id", svc.categoryHandler.Delete)

			scoped.GET("/transactions", svc.transactionHandler.List)
			scoped.POST("/transactions", svc.transactionHandler.Create)
			scoped.PUT("/transactions/:id", svc.transactionHandler.Update)
			scoped.DELETE("/transactions/:id", svc.transactionHandler.Delete)

			scoped.GET("/summary", svc.summaryHandler.Overall)
			scoped.GET("/summary/categories", svc.summaryHandler.ByCategory)
			scoped.GET("/summary/monthly", svc.summaryHandler.Monthly)
			scoped.GET("/summary/annual", svc.summaryHandler.Annual)

			scoped.GET("/budgets", svc.budgetHandler.List)
			scoped.GET("/budgets/summary", svc.budgetHandler.Summary)
			scoped.POST("/budgets", svc.budgetHandler.Upsert)
			scoped.PUT("/budgets/:id", svc.budgetHandler.Update)
			scoped.DELETE("/budgets/:id", svc.budgetHandler.Delete)

			scoped.GET("/purchase-goals", svc.goalHandler.List)
			scoped.GET("/purchase-goals/summary", svc.goalHandler.Summary)
			scoped.POST("/purchase-goals", svc.goalHandler.Create)
			scoped.PUT("/purchase-goals/:id", svc.goalHandler.Update)
			scoped.DELETE("/purchase-goals/:id", svc.goalHandler.Delete)
			scoped.POST("/purchase-goals/:id/complete", svc.goalHandler.Complete)
			scoped.GET("/purchase-goals/:id/savings", svc.goalHandler.ListSavings)
			scoped.POST("/purchase-goals/:id/savings", svc.goalHandler.AddSaving)

			scoped.GET("/investments", svc.investmentHandler.List)
			scoped.GET("/investments/summary", svc.investmentHandler.Summary)
			scoped.POST("/investments", svc.investmentHandler.Create)
			scoped.PUT("/investments/:id", svc.investmentHandler.Update)
			scoped.DELETE("/investments/:id", svc.investmentHandler.Delete)
		}
	}
}
