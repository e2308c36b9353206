package model

import (
	"time"

	"gorm.io/datatypes"
)

// TopicModel mirrors the 'topics' table. Membership lists and reactions are JSONB so the
// writer/reader containment queries can use the jsonb ? operator.
type TopicModel struct {
	ID          string                                  `gorm:"type:varchar(64);primaryKey"`
	Name        string                                  `gorm:"type:varchar(200);not null"`
	Description string                                  `gorm:"type:text"`
	Category    string                                  `gorm:"type:varchar(64);index"`
	Cover       string                                  `gorm:"type:text"`
	Owner       string                                  `gorm:"type:varchar(128);not null;index"`
	Writers     datatypes.JSONSlice[string]             `gorm:"not null"`
	Readers     datatypes.JSONSlice[string]             `gorm:"not null"`
	Reactions   datatypes.JSONType[map[string][]string] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TopicModel) TableName() string {
	return "topics"
}
