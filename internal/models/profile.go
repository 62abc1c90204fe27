package models

// Profile is a user-scoped financial workspace with its own categories,
// transactions, budgets, goals and investments.
type Profile struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Theme string `gorm:"size:50;default:blue" json:"theme"`
}

func (Profile) TableName() string { return "profiles" }

// UserProfile links a user to a profile they own. Every profile-scoped
// request is authorized against this table.
type UserProfile struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ProfileID uint `gorm:"primaryKey;autoIncrement:false" json:"profile_id"`
}

func (UserProfile) TableName() string { return "user_profiles" }
