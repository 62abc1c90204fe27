package models

// Transaction is a single income or expense entry. Date is stored as an
// ISO "YYYY-MM-DD" string so range filters and month/year grouping behave
// identically across the sqlite, mysql and postgres drivers.
type Transaction struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProfileID   uint    `gorm:"index;not null" json:"profile_id"`
	CategoryID  uint    `gorm:"index;not null" json:"category_id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Type        string  `gorm:"size:10;not null" json:"type"` // INCOME, EXPENSE
	Description string  `gorm:"size:500" json:"description"`
	Date        string  `gorm:"size:10;index;not null" json:"date"`
}

func (Transaction) TableName() string { return "transactions" }
