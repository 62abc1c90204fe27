package models

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProfileID uint   `gorm:"index;not null" json:"profile_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Emoji     string `gorm:"size:16;not null" json:"emoji"`
	Type      string `gorm:"size:10;not null" json:"type"` // INCOME, EXPENSE
}

func (Category) TableName() string { return "categories" }
