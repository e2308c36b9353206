// Package model holds the GORM persistence models.
package model

// All lists every model for AutoMigrate and the query generator.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&TopicModel{},
		&PostModel{},
	}
}
