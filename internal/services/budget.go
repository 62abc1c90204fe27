package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBudgetNotFound = errors.New("budget not found")

type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

type BudgetRequest struct {
	CategoryID uint    `json:"category_id" binding:"required"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required,min=1970"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// BudgetWithCategory is a budget row joined with its category for listing.
type BudgetWithCategory struct {
	ID            uint    `json:"id"`
	ProfileID     uint    `json:"profile_id"`
	CategoryID    uint    `json:"category_id"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	Amount        float64 `json:"amount"`
	CategoryName  string  `json:"category_name"`
	CategoryEmoji string  `json:"category_emoji"`
	CategoryType  string  `json:"category_type"`
}

// BudgetSummary compares one expense category's budget against its actual
// spend for the month.
type BudgetSummary struct {
	CategoryID    uint    `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	CategoryEmoji string  `json:"category_emoji"`
	BudgetAmount  float64 `json:"budget_amount"`
	SpentAmount   float64 `json:"spent_amount"`
}

func (s *BudgetService) List(profileID uint, month, year int) ([]BudgetWithCategory, error) {
	rows := []BudgetWithCategory{}
	err := s.db.Model(&models.Budget{}).
		Select("budgets.id, budgets.profile_id, budgets.category_id, budgets.month, budgets.year, budgets.amount, "+
			"categories.name AS category_name, categories.emoji AS category_emoji, categories.type AS category_type").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.profile_id = ? AND budgets.month = ? AND budgets.year = ?", profileID, month, year).
		Order("categories.name").
		Scan(&rows).Error
	return rows, err
}

// Upsert creates the budget or replaces the amount when the
// (profile, category, month, year) slot already has one.
func (s *BudgetService) Upsert(profileID uint, req *BudgetRequest) (*models.Budget, error) {
	budget := models.Budget{
		ProfileID:  profileID,
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "category_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&budget).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the row id after a conflict-update
	err = s.db.Where("profile_id = ? AND category_id = ? AND month = ? AND year = ?",
		profileID, req.CategoryID, req.Month, req.Year).First(&budget).Error
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

func (s *BudgetService) UpdateAmount(profileID, id uint, amount float64) error {
	res := s.db.Model(&models.Budget{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Update("amount", amount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

func (s *BudgetService) Delete(profileID, id uint) error {
	res := s.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(&models.Budget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Summary returns, for every expense category with a budget in the month,
// the budgeted amount and the EXPENSE spend booked that month.
func (s *BudgetService) Summary(profileID uint, month, year int) ([]BudgetSummary, error) {
	rows := []BudgetSummary{}

	monthPrefix := fmt.Sprintf("%s-%02d", strconv.Itoa(year), month)

	err := s.db.Model(&models.Category{}).
		Select("categories.id AS category_id, categories.name AS category_name, categories.emoji AS category_emoji, "+
			"budgets.amount AS budget_amount, "+
			"COALESCE(SUM(transactions.amount), 0) AS spent_amount").
		Joins("JOIN budgets ON budgets.category_id = categories.id AND budgets.profile_id = ? AND budgets.month = ? AND budgets.year = ?",
			profileID, month, year).
		Joins("LEFT JOIN transactions ON transactions.category_id = categories.id AND transactions.profile_id = ? "+
			"AND transactions.type = 'EXPENSE' AND SUBSTR(transactions.date, 1, 7) = ?",
			profileID, monthPrefix).
		Where("categories.profile_id = ? AND categories.type = 'EXPENSE'", profileID).
		Group("categories.id, categories.name, categories.emoji, budgets.amount").
		Order("categories.name").
		Scan(&rows).Error
	return rows, err
}
