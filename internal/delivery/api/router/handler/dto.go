package handler

import (
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/usecase"
)

type topicRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"required,category"`
	Cover       string   `json:"cover" validate:"omitempty,url"`
	Writers     []string `json:"writers"`
	Readers     []string `json:"readers"`
}

func (r *topicRequest) toInput() *usecase.TopicInput {
	return &usecase.TopicInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    entity.Category(r.Category),
		Cover:       r.Cover,
		Writers:     r.Writers,
		Readers:     r.Readers,
	}
}

type addMemberRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Role    string `json:"role" validate:"required,member_role"`
	Confirm bool   `json:"confirm"`
}

type postRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=20000"`
}

type profileRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	FamilyName *string `json:"familyName" validate:"omitempty,max=100"`
	Logo       *string `json:"logo" validate:"omitempty,url"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	FamilyName string    `json:"familyName,omitempty"`
	Logo       *string   `json:"logo,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		FamilyName: user.FamilyName,
		Logo:       user.Logo,
		Role:       user.Role.String(),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

type reactionResponse struct {
	Emoji string   `json:"emoji"`
	Users []string `json:"users"`
	Count int      `json:"count"`
}

type topicResponse struct {
	ID          string                                    `json:"id"`
	Name        string                                    `json:"name"`
	Description string                                    `json:"description"`
	Category    string                                    `json:"category"`
	Cover       string                                    `json:"cover,omitempty"`
	Owner       string                                    `json:"owner"`
	Writers     []string                                  `json:"writers"`
	Readers     []string                                  `json:"readers"`
	Reactions   map[entity.ReactionKind]*reactionResponse `json:"reactions"`
	CreatedAt   time.Time                                 `json:"createdAt"`
	UpdatedAt   time.Time                                 `json:"updatedAt"`
}

func toTopicResponse(topic *entity.Topic) *topicResponse {
	if topic == nil {
		return nil
	}

	reactions := make(map[entity.ReactionKind]*reactionResponse, len(entity.ReactionKinds))
	for _, kind := range entity.ReactionKinds {
		users := append([]string{}, topic.Reactions[kind]...)
		reactions[kind] = &reactionResponse{Emoji: kind.Emoji(), Users: users, Count: len(users)}
	}

	return &topicResponse{
		ID:          topic.ID,
		Name:        topic.Name,
		Description: topic.Description,
		Category:    topic.Category.String(),
		Cover:       topic.Cover,
		Owner:       topic.Owner,
		Writers:     nonNil(topic.Writers),
		Readers:     nonNil(topic.Readers),
		Reactions:   reactions,
		CreatedAt:   topic.CreatedAt,
		UpdatedAt:   topic.UpdatedAt,
	}
}

func toTopicResponses(topics []*entity.Topic) []*topicResponse {
	out := make([]*topicResponse, 0, len(topics))
	for _, topic := range topics {
		out = append(out, toTopicResponse(topic))
	}

	return out
}

type postResponse struct {
	ID             string          `json:"id"`
	TopicID        string          `json:"topicId"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	AuthorID       string          `json:"authorId"`
	AuthorName     string          `json:"authorName"`
	LastModifiedBy entity.Modifier `json:"lastModifiedBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toPostResponse(post *entity.Post) *postResponse {
	if post == nil {
		return nil
	}

	return &postResponse{
		ID:             post.ID,
		TopicID:        post.TopicID,
		Name:           post.Name,
		Description:    post.Description,
		AuthorID:       post.AuthorID,
		AuthorName:     post.AuthorName,
		LastModifiedBy: post.LastModifiedBy,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []*postResponse {
	out := make([]*postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
