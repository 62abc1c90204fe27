package services

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

type TransactionRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Description string  `json:"description"`
}

type TransactionListRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// List returns the profile's transactions newest first, optionally limited
// to an inclusive date range.
func (s *TransactionService) List(profileID uint, req *TransactionListRequest) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	query := s.db.Where("profile_id = ?", profileID)
	if req.Start != "" && req.End != "" {
		query = query.Where("date BETWEEN ? AND ?", req.Start, req.End)
	}
	err := query.Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (s *TransactionService) Create(profileID uint, req *TransactionRequest) (*models.Transaction, error) {
	transaction := models.Transaction{
		ProfileID:   profileID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := s.db.Create(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) Update(profileID, id uint, req *TransactionRequest) error {
	res := s.db.Model(&models.Transaction{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"category_id": req.CategoryID,
			"amount":      req.Amount,
			"type":        req.Type,
			"date":        req.Date,
			"description": req.Description,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *TransactionService) Delete(profileID, id uint) error {
	res := s.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
