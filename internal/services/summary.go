package services

import (
	"fmt"
	"strconv"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

// SummaryService computes the dashboard aggregations for one profile.
// Month/year extraction is done with SUBSTR over the ISO date strings so the
// same queries run on sqlite, mysql and postgres.
type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type CategorySummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Emoji string  `json:"emoji"`
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

type MonthlySummary struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type AnnualSummary struct {
	Year    int     `json:"year"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Overall returns total income, expense and balance for the profile.
func (s *SummaryService) Overall(profileID uint) (*Summary, error) {
	var summary Summary

	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expense").
		Where("profile_id = ?", profileID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	summary.Balance = summary.Income - summary.Expense
	return &summary, nil
}

// ByCategory groups transaction totals per category and type, optionally
// restricted to one month and/or year.
func (s *SummaryService) ByCategory(profileID uint, month, year int) ([]CategorySummary, error) {
	rows := []CategorySummary{}

	query := s.db.Model(&models.Transaction{}).
		Select("categories.id, categories.name, categories.emoji, transactions.type, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.profile_id = ?", profileID)

	if year > 0 {
		query = query.Where("SUBSTR(transactions.date, 1, 4) = ?", strconv.Itoa(year))
	}
	if month > 0 {
		query = query.Where("SUBSTR(transactions.date, 6, 2) = ?", fmt.Sprintf("%02d", month))
	}

	err := query.
		Group("categories.id, categories.name, categories.emoji, transactions.type").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

type monthlyRow struct {
	Year    string
	Month   string
	Income  float64
	Expense float64
}

// Monthly returns per-month income/expense/balance for one year.
func (s *SummaryService) Monthly(profileID uint, year int) ([]MonthlySummary, error) {
	var rows []monthlyRow

	err := s.db.Model(&models.Transaction{}).
		Select("SUBSTR(date, 1, 4) AS year, SUBSTR(date, 6, 2) AS month, "+
			"COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expense").
		Where("profile_id = ? AND SUBSTR(date, 1, 4) = ?", profileID, strconv.Itoa(year)).
		Group("SUBSTR(date, 1, 4), SUBSTR(date, 6, 2)").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]MonthlySummary, 0, len(rows))
	for _, row := range rows {
		y, _ := strconv.Atoi(row.Year)
		m, _ := strconv.Atoi(row.Month)
		result = append(result, MonthlySummary{
			Year:    y,
			Month:   m,
			Income:  row.Income,
			Expense: row.Expense,
			Balance: row.Income - row.Expense,
		})
	}
	return result, nil
}

type annualRow struct {
	Year    string
	Income  float64
	Expense float64
}

// Annual returns per-year income/expense/balance over the whole history.
func (s *SummaryService) Annual(profileID uint) ([]AnnualSummary, error) {
	var rows []annualRow

	err := s.db.Model(&models.Transaction{}).
		Select("SUBSTR(date, 1, 4) AS year, "+
			"COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expense").
		Where("profile_id = ?", profileID).
		Group("SUBSTR(date, 1, 4)").
		Order("year").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]AnnualSummary, 0, len(rows))
	for _, row := range rows {
		y, _ := strconv.Atoi(row.Year)
		result = append(result, AnnualSummary{
			Year:    y,
			Income:  row.Income,
			Expense: row.Expense,
			Balance: row.Income - row.Expense,
		})
	}
	return result, nil
}
