package firestore

import (
	"strings"
	"time"

	"bookclub/internal/domain/entity"
)

// userDoc is the stored shape of users/{uid}. The lower-cased copies back prefix search.
type userDoc struct {
	Email      string    `firestore:"email"`
	EmailLower string    `firestore:"emailLower"`
	Name       string    `firestore:"name"`
	NameLower  string    `firestore:"nameLower"`
	FamilyName string    `firestore:"familyName"`
	Logo       *string   `firestore:"logo"`
	Role       string    `firestore:"role"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

type credentialDoc struct {
	UserID         string    `firestore:"userId"`
	Provider       string    `firestore:"provider"`
	ProviderUserID string    `firestore:"providerUserId"`
	PasswordHash   string    `firestore:"passwordHash"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

type topicDoc struct {
	Name        string              `firestore:"name"`
	Description string              `firestore:"description"`
	Category    string              `firestore:"category"`
	Cover       string              `firestore:"cover"`
	Owner       string              `firestore:"owner"`
	Writers     []string            `firestore:"writers"`
	Readers     []string            `firestore:"readers"`
	Reactions   map[string][]string `firestore:"reactions"`
	CreatedAt   time.Time           `firestore:"createdAt"`
	UpdatedAt   time.Time           `firestore:"updatedAt"`
}

type modifierDoc struct {
	UserID   string `firestore:"userId"`
	UserName string `firestore:"userName"`
}

type postDoc struct {
	Name           string      `firestore:"name"`
	Description    string      `firestore:"description"`
	Author         string      `firestore:"author"`
	AuthorName     string      `firestore:"authorName"`
	LastModifiedBy modifierDoc `firestore:"lastModifiedBy"`
	CreatedAt      time.Time   `firestore:"createdAt"`
	UpdatedAt      time.Time   `firestore:"updatedAt"`
}

// --- Mapper Functions ---

func toUserDomain(id string, data *userDoc) *entity.User {
	return &entity.User{
		ID:         id,
		Email:      data.Email,
		Name:       data.Name,
		FamilyName: data.FamilyName,
		Logo:       data.Logo,
		Role:       entity.RoleOrDefault(data.Role),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *userDoc {
	return &userDoc{
		Email:      data.Email,
		EmailLower: strings.ToLower(data.Email),
		Name:       data.Name,
		NameLower:  strings.ToLower(data.Name),
		FamilyName: data.FamilyName,
		Logo:       data.Logo,
		Role:       entity.RoleOrDefault(data.Role.String()).String(),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toTopicDomain(id string, data *topicDoc) *entity.Topic {
	reactions := entity.NewReactions()
	for kind, users := range data.Reactions {
		reactions[entity.ReactionKind(kind)] = nonNil(users)
	}

	return &entity.Topic{
		ID:          id,
		Name:        data.Name,
		Description: data.Description,
		Category:    entity.Category(data.Category),
		Cover:       data.Cover,
		Owner:       data.Owner,
		Writers:     nonNil(data.Writers),
		Readers:     nonNil(data.Readers),
		Reactions:   reactions,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTopicDomain(data *entity.Topic) *topicDoc {
	return &topicDoc{
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category.String(),
		Cover:       data.Cover,
		Owner:       data.Owner,
		Writers:     nonNil(data.Writers),
		Readers:     nonNil(data.Readers),
		Reactions:   fromReactionsDomain(data.Reactions),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromReactionsDomain(reactions entity.Reactions) map[string][]string {
	raw := make(map[string][]string, len(entity.ReactionKinds))
	for _, kind := range entity.ReactionKinds {
		raw[kind.String()] = nonNil(reactions[kind])
	}

	return raw
}

func toPostDomain(topicID, id string, data *postDoc) *entity.Post {
	return &entity.Post{
		ID:          id,
		TopicID:     topicID,
		Name:        data.Name,
		Description: data.Description,
		AuthorID:    data.Author,
		AuthorName:  data.AuthorName,
		LastModifiedBy: entity.Modifier{
			UserID:   data.LastModifiedBy.UserID,
			UserName: data.LastModifiedBy.UserName,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *postDoc {
	return &postDoc{
		Name:        data.Name,
		Description: data.Description,
		Author:      data.AuthorID,
		AuthorName:  data.AuthorName,
		LastModifiedBy: modifierDoc{
			UserID:   data.LastModifiedBy.UserID,
			UserName: data.LastModifiedBy.UserName,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}

func stampCreate(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
