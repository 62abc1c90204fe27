package models

import "time"

type Investment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProfileID      uint      `gorm:"index;not null" json:"profile_id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	Category       string    `gorm:"size:100" json:"category"`
	Broker         string    `gorm:"size:100" json:"broker"`
	InvestedAmount float64   `gorm:"not null" json:"invested_amount"`
	CurrentValue   float64   `gorm:"not null" json:"current_value"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Investment) TableName() string { return "investments" }
