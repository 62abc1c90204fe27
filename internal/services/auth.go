package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gfmartins/fintrack/internal/config"
	"github.com/gfmartins/fintrack/internal/models"
	"github.com/gfmartins/fintrack/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	resetTokenBytes = 32
	resetTokenTTL   = time.Hour

	// bounded retry for transient DB errors on the revocation upsert
	revokeMaxAttempts = 3
	revokeRetryDelay  = 50 * time.Millisecond
)

var (
	ErrUsernameTaken      = errors.New("username is already in use")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenAlreadyUsed   = errors.New("token has already been used")
	ErrTokenExpired       = errors.New("token has expired")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns the credential store, the revocation ledger and the
// password-reset ledger. The datastore is injected so tests can run against
// an in-memory database.
type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResult is what a successful login or registration yields.
type AuthResult struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	ExpireAt time.Time    `json:"expire_at"`
}

// Register creates a user and issues a session token. Uniqueness of username
// and email relies on the database constraints, not on check-then-insert:
// the duplicate-key error is translated after the fact, which removes the
// registration race entirely.
func (s *AuthService) Register(username, email, password string) (*AuthResult, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(username, email)
		}
		return nil, err
	}

	return s.issueToken(&user)
}

// classifyDuplicate decides which unique constraint fired. The driver error
// does not name the column portably, so probe the two columns.
func (s *AuthService) classifyDuplicate(username, email string) error {
	var count int64
	s.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return ErrUsernameTaken
	}
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login authenticates by email or username. Unknown user, wrong password and
// deactivated account all collapse into ErrInvalidCredentials so callers
// cannot probe which one failed.
func (s *AuthService) Login(identifier, password string) (*AuthResult, error) {
	var user models.User
	err := s.db.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(&user)
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	token, claims, err := utils.GenerateToken(user.ID, user.Username, user.Email, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:    token,
		User:     user,
		ExpireAt: claims.ExpiresAt.Time,
	}, nil
}

// RevokeToken adds a jti to the revocation ledger. Revoking an already
// revoked token is a no-op. ExpiresAt is the token's own expiry; the cleanup
// job uses it to drop ledger rows once the token would have died anyway.
func (s *AuthService) RevokeToken(jti string, userID uint, expiresAt time.Time) error {
	entry := models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}

	var err error
	for attempt := 0; attempt < revokeMaxAttempts; attempt++ {
		err = s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
		if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		time.Sleep(revokeRetryDelay)
	}
	return err
}

// IsTokenRevoked checks the ledger by presence alone.
func (s *AuthService) IsTokenRevoked(jti string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateResetToken mints a single-use password-reset token for the user.
// Outstanding tokens for the same user stay valid.
func (s *AuthService) CreateResetToken(userID uint) (string, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	record := models.PasswordResetToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword consumes a reset token and replaces the user's password.
// The password update and the used_at mark happen in one transaction; order
// still matters inside it so that a crash leaves the token usable rather
// than burned with the password unchanged.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	var record models.PasswordResetToken
	if err := s.db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if record.UsedAt != nil {
		return ErrTokenAlreadyUsed
	}
	now := time.Now()
	if record.ExpiresAt.Before(now) {
		return ErrTokenExpired
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", record.UserID).
			Update("password_hash", hash).Error; err != nil {
			return err
		}
		return tx.Model(&record).Update("used_at", now).Error
	})
}

// FindUserByEmail is used by forgot-password; a miss is not an error the
// caller may reveal.
func (s *AuthService) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
