package entity

import "time"

// Modifier identifies who last changed a post.
type Modifier struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// Post is a message inside a topic.
type Post struct {
	ID             string
	TopicID        string
	Name           string
	Description    string
	AuthorID       string
	AuthorName     string
	LastModifiedBy Modifier
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAuthor reports whether userID wrote the post.
func (p *Post) IsAuthor(userID string) bool {
	return p != nil && userID != "" && p.AuthorID == userID
}
