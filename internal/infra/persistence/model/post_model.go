package model

import (
	"time"

	"gorm.io/datatypes"
)

// ModifierJSON is the stored shape of a post's lastModifiedBy.
type ModifierJSON struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// PostModel mirrors the 'posts' table. Rows are always addressed by (topic_id, id).
type PostModel struct {
	ID             string                           `gorm:"type:varchar(64);primaryKey"`
	TopicID        string                           `gorm:"type:varchar(64);not null;index:idx_posts_topic_created,priority:1"`
	Name           string                           `gorm:"type:varchar(200);not null"`
	Description    string                           `gorm:"type:text"`
	AuthorID       string                           `gorm:"type:varchar(128);not null"`
	AuthorName     string                           `gorm:"type:varchar(255)"`
	LastModifiedBy datatypes.JSONType[ModifierJSON] `gorm:"not null"`
	CreatedAt      time.Time                        `gorm:"index:idx_posts_topic_created,priority:2"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
