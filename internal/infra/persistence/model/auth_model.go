package model

import "time"

// AuthenticationModel mirrors the 'user_authentications' table holding local credentials.
type AuthenticationModel struct {
	UserID         string `gorm:"type:varchar(128);primaryKey"`
	Provider       string `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	ProviderUserID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	PasswordHash   string `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}
