package models

// Budget is a monthly spending limit for one category. The composite unique
// index backs the create-or-replace upsert.
type Budget struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ProfileID  uint    `gorm:"uniqueIndex:idx_budget_slot;not null" json:"profile_id"`
	CategoryID uint    `gorm:"uniqueIndex:idx_budget_slot;not null" json:"category_id"`
	Month      int     `gorm:"uniqueIndex:idx_budget_slot;not null" json:"month"` // 1-12
	Year       int     `gorm:"uniqueIndex:idx_budget_slot;not null" json:"year"`
	Amount     float64 `gorm:"not null" json:"amount"`
}

func (Budget) TableName() string { return "budgets" }
