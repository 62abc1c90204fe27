package main

import (
	"github.com/gfmartins/fintrack/internal/config"
	"github.com/gfmartins/fintrack/internal/handlers"
	"github.com/gfmartins/fintrack/internal/models"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/internal/utils"
	"github.com/gfmartins/fintrack/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	authService        *services.AuthService
	profileService     *services.ProfileService
	tokenCleanup       *services.TokenCleanupService
	mailQueue          services.MailQueue
	mailWorker         *services.MailWorker
	authHandler        *handlers.AuthHandler
	profileHandler     *handlers.ProfileHandler
	categoryHandler    *handlers.CategoryHandler
	transactionHandler *handlers.TransactionHandler
	summaryHandler     *handlers.SummaryHandler
	budgetHandler      *handlers.BudgetHandler
	goalHandler        *handlers.PurchaseGoalHandler
	investmentHandler  *handlers.InvestmentHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	// Daily cleanup of expired ledger rows
	tokenCleanup := services.NewTokenCleanupService(db)
	tokenCleanup.StartScheduler()

	// Mail delivery: Redis-backed queue when available, inline otherwise
	mailer := services.NewMailer(&cfg.SMTP)
	mailQueue := services.NewMailQueue(cfg, mailer)

	var mailWorker *services.MailWorker
	if cfg.Redis.Enabled && mailQueue.IsAsync() {
		mailWorker = services.NewMailWorker(&cfg.Redis, mailer)
		if mailWorker != nil {
			mailWorker.Start()
		}
	}

	authService := services.NewAuthService(db, &cfg.JWT)
	profileService := services.NewProfileService(db)

	return &appServices{
		authService:        authService,
		profileService:     profileService,
		tokenCleanup:       tokenCleanup,
		mailQueue:          mailQueue,
		mailWorker:         mailWorker,
		authHandler:        handlers.NewAuthHandler(authService, mailQueue, mailer.Enabled()),
		profileHandler:     handlers.NewProfileHandler(profileService),
		categoryHandler:    handlers.NewCategoryHandler(services.NewCategoryService(db)),
		transactionHandler: handlers.NewTransactionHandler(services.NewTransactionService(db)),
		summaryHandler:     handlers.NewSummaryHandler(services.NewSummaryService(db)),
		budgetHandler:      handlers.NewBudgetHandler(services.NewBudgetService(db)),
		goalHandler:        handlers.NewPurchaseGoalHandler(services.NewPurchaseGoalService(db)),
		investmentHandler:  handlers.NewInvestmentHandler(services.NewInvestmentService(db)),
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	s.tokenCleanup.StopScheduler()

	if s.mailWorker != nil {
		s.mailWorker.Stop()
	}
	if s.mailQueue != nil {
		s.mailQueue.Close()
	}
	logger.Info().Msg("background services stopped")
}
