package services

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Emoji string `json:"emoji" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// List returns the profile's categories, optionally filtered by type.
func (s *CategoryService) List(profileID uint, categoryType string) ([]models.Category, error) {
	categories := []models.Category{}
	query := s.db.Where("profile_id = ?", profileID)
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}
	err := query.Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Create(profileID uint, req *CategoryRequest) (*models.Category, error) {
	category := models.Category{
		ProfileID: profileID,
		Name:      req.Name,
		Emoji:     req.Emoji,
		Type:      req.Type,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(profileID, id uint, req *CategoryRequest) error {
	res := s.db.Model(&models.Category{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"name":  req.Name,
			"emoji": req.Emoji,
			"type":  req.Type,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) Delete(profileID, id uint) error {
	res := s.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
