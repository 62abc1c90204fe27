package models

import "time"

// PurchaseGoal tracks saving toward a planned purchase.
type PurchaseGoal struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	ProfileID          uint       `gorm:"index;not null" json:"profile_id"`
	Name               string     `gorm:"size:200;not null" json:"name"`
	Category           string     `gorm:"size:100" json:"category"`
	TargetAmount       float64    `gorm:"not null" json:"target_amount"`
	CurrentAmountSaved float64    `gorm:"not null;default:0" json:"current_amount_saved"`
	Priority           string     `gorm:"size:50" json:"priority"`
	Deadline           string     `gorm:"size:10" json:"deadline"` // "YYYY-MM-DD", empty = none
	Notes              string     `gorm:"size:1000" json:"notes"`
	IsCompleted        bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (PurchaseGoal) TableName() string { return "purchase_goals" }

// SavingsTransaction is one deposit toward a purchase goal.
type SavingsTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GoalID    uint      `gorm:"index;not null" json:"goal_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	Notes     string    `gorm:"size:500" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavingsTransaction) TableName() string { return "savings_transactions" }
