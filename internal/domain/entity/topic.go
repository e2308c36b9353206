package entity

import (
	"slices"
	"time"
)

// Category is the closed set of topic genres.
type Category string

const (
	CategoryScienceFiction Category = "Science Fiction"
	CategoryHorror         Category = "Horror"
	CategoryRomance        Category = "Romance"
	CategoryBiography      Category = "Biography"
	CategoryFantasy        Category = "Fantasy"
	CategoryMystery        Category = "Mystery"
	CategoryThriller       Category = "Thriller"
	CategoryHistorical     Category = "Historical"
	CategoryAdventure      Category = "Adventure"
	CategoryPoetry         Category = "Poetry"
	CategorySelfHelp       Category = "Self-Help"
	CategoryPhilosophy     Category = "Philosophy"
	CategoryPsychology     Category = "Psychology"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryScienceFiction,
	CategoryHorror,
	CategoryRomance,
	CategoryBiography,
	CategoryFantasy,
	CategoryMystery,
	CategoryThriller,
	CategoryHistorical,
	CategoryAdventure,
	CategoryPoetry,
	CategorySelfHelp,
	CategoryPhilosophy,
	CategoryPsychology,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the known genres.
func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}

// Topic is a discussion room with an owner and explicit writer/reader lists.
type Topic struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Cover       string
	Owner       string
	Writers     []string
	Readers     []string
	Reactions   Reactions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwner reports whether userID owns the topic.
func (t *Topic) IsOwner(userID string) bool {
	return t != nil && userID != "" && t.Owner == userID
}

// IsWriter reports whether userID is listed as a writer.
func (t *Topic) IsWriter(userID string) bool {
	return t != nil && userID != "" && slices.Contains(t.Writers, userID)
}

// IsReader reports whether userID is listed as a reader.
func (t *Topic) IsReader(userID string) bool {
	return t != nil && userID != "" && slices.Contains(t.Readers, userID)
}

// MemberRoleOf returns the strongest relation userID has to the topic.
func (t *Topic) MemberRoleOf(userID string) (TopicRelation, bool) {
	switch {
	case t.IsOwner(userID):
		return RelationOwner, true
	case t.IsWriter(userID):
		return RelationWriter, true
	case t.IsReader(userID):
		return RelationReader, true
	default:
		return "", false
	}
}

// Clone returns a deep copy of the topic.
func (t *Topic) Clone() *Topic {
	if t == nil {
		return nil
	}
	cloned := *t
	cloned.Writers = slices.Clone(t.Writers)
	cloned.Readers = slices.Clone(t.Readers)
	cloned.Reactions = t.Reactions.Clone()

	return &cloned
}

// TopicRelation is the relation of a user to a topic, used by list filters.
type TopicRelation string

const (
	RelationOwner  TopicRelation = "owner"
	RelationWriter TopicRelation = "writer"
	RelationReader TopicRelation = "reader"
)

// IsValid checks if the TopicRelation is a valid value.
func (r TopicRelation) IsValid() bool {
	switch r {
	case RelationOwner, RelationWriter, RelationReader:
		return true
	default:
		return false
	}
}

// MemberRole is the list a member is placed in.
type MemberRole string

const (
	MemberReader MemberRole = "reader"
	MemberWriter MemberRole = "writer"
)

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	return r == MemberReader || r == MemberWriter
}

// Opposite returns the other membership list.
func (r MemberRole) Opposite() MemberRole {
	if r == MemberWriter {
		return MemberReader
	}

	return MemberWriter
}
