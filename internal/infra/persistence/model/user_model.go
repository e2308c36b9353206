package model

import "time"

// UserModel mirrors the 'users' table. IDs come from the identity provider.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID         string  `gorm:"type:varchar(128);primaryKey"`
	Email      string  `gorm:"type:varchar(255);index"`
	Name       string  `gorm:"type:varchar(100)"`
	FamilyName string  `gorm:"type:varchar(100)"`
	Logo       *string `gorm:"type:text"`
	Role       string  `gorm:"type:varchar(32);not null;default:USER"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
