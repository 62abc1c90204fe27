package services

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileNotOwned = errors.New("profile does not belong to user")
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type CreateProfileRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Theme string `json:"theme"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Theme string `json:"theme"`
}

// List returns the profiles owned by the user.
func (s *ProfileService) List(userID uint) ([]models.Profile, error) {
	profiles := []models.Profile{}
	err := s.db.
		Joins("JOIN user_profiles ON user_profiles.profile_id = profiles.id").
		Where("user_profiles.user_id = ?", userID).
		Find(&profiles).Error
	return profiles, err
}

// Create inserts the profile and its ownership row as one unit.
func (s *ProfileService) Create(userID uint, req *CreateProfileRequest) (*models.Profile, error) {
	profile := models.Profile{
		Name:  req.Name,
		Theme: req.Theme,
	}
	if profile.Theme == "" {
		profile.Theme = "blue"
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: userID, ProfileID: profile.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// IsOwned reports whether the user owns the profile.
func (s *ProfileService) IsOwned(userID, profileID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserProfile{}).
		Where("user_id = ? AND profile_id = ?", userID, profileID).
		Count(&count).Error
	return count > 0, err
}

func (s *ProfileService) Update(userID, profileID uint, req *UpdateProfileRequest) error {
	owned, err := s.IsOwned(userID, profileID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrProfileNotOwned
	}

	updates := map[string]interface{}{"name": req.Name}
	if req.Theme != "" {
		updates["theme"] = req.Theme
	}

	res := s.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Delete removes the profile and its ownership rows. Profile-scoped data is
// left behind on purpose; the ownership check makes it unreachable.
func (s *ProfileService) Delete(userID, profileID uint) error {
	owned, err := s.IsOwned(userID, profileID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrProfileNotOwned
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Profile{}, profileID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}
