package services

import (
	"time"

	"github.com/gfmartins/fintrack/internal/models"
	"github.com/gfmartins/fintrack/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// usedResetTokenRetention keeps consumed reset tokens around briefly so a
// second use still reports "already used" instead of "invalid".
const usedResetTokenRetention = 24 * time.Hour

// TokenCleanupService purges dead rows from the revocation and
// password-reset ledgers. Neither ledger is consulted by expiry at request
// time, so cleanup is purely about keeping the tables small.
type TokenCleanupService struct {
	db        *gorm.DB
	scheduler *cron.Cron
}

func NewTokenCleanupService(db *gorm.DB) *TokenCleanupService {
	return &TokenCleanupService{db: db}
}

// StartScheduler runs a cleanup immediately and then once a day.
func (s *TokenCleanupService) StartScheduler() {
	s.scheduler = cron.New()

	if _, err := s.scheduler.AddFunc("@daily", func() { s.Run() }); err != nil {
		logger.Errorf("[cleanup] failed to schedule: %v", err)
		return
	}

	s.scheduler.Start()
	go s.Run()

	logger.Info().Msg("token cleanup scheduler started")
}

func (s *TokenCleanupService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Run deletes revoked tokens whose underlying session token has expired,
// expired unused reset tokens, and used reset tokens past retention.
func (s *TokenCleanupService) Run() {
	now := time.Now()

	res := s.db.Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	if res.Error != nil {
		logger.Errorf("[cleanup] revoked tokens: %v", res.Error)
	} else if res.RowsAffected > 0 {
		logger.Info().Int64("deleted", res.RowsAffected).Msg("purged expired revoked tokens")
	}

	res = s.db.Where("expires_at < ? AND used_at IS NULL", now).Delete(&models.PasswordResetToken{})
	if res.Error != nil {
		logger.Errorf("[cleanup] expired reset tokens: %v", res.Error)
	} else if res.RowsAffected > 0 {
		logger.Info().Int64("deleted", res.RowsAffected).Msg("purged expired reset tokens")
	}

	res = s.db.Where("used_at IS NOT NULL AND used_at < ?", now.Add(-usedResetTokenRetention)).
		Delete(&models.PasswordResetToken{})
	if res.Error != nil {
		logger.Errorf("[cleanup] used reset tokens: %v", res.Error)
	} else if res.RowsAffected > 0 {
		logger.Info().Int64("deleted", res.RowsAffected).Msg("purged used reset tokens")
	}
}
