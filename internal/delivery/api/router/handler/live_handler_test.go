package handler

import (
	"testing"

	"bookclub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no origin header", allowed: []string{"https://app.example.com"}, want: true},
		{name: "no allow list", origin: "https://evil.example.com", want: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example.com", want: true},
		{name: "listed", allowed: []string{"https://app.example.com"}, origin: "https://app.example.com", want: true},
		{name: "not listed", allowed: []string{"https://app.example.com"}, origin: "https://evil.example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(tt.allowed, tt.origin))
		})
	}
}

func TestReplaceLatest(t *testing.T) {
	ch := make(chan []*entity.Topic, 1)

	replaceLatest(ch, []*entity.Topic{{ID: "a"}})
	replaceLatest(ch, []*entity.Topic{{ID: "b"}})

	got := <-ch
	assert.Equal(t, "b", got[0].ID)
	assert.Empty(t, ch)
}

func TestToTopicResponse_MaterializesReactions(t *testing.T) {
	resp := toTopicResponse(&entity.Topic{ID: "t1", Reactions: entity.Reactions{entity.ReactionLove: {"u1"}}})

	assert.Len(t, resp.Reactions, len(entity.ReactionKinds))
	assert.Equal(t, []string{"u1"}, resp.Reactions[entity.ReactionLove].Users)
	assert.Equal(t, entity.ReactionLove.Emoji(), resp.Reactions[entity.ReactionLove].Emoji)
	assert.Empty(t, resp.Reactions[entity.ReactionSad].Users)
	assert.NotNil(t, resp.Writers)
	assert.Nil(t, toTopicResponse(nil))
}
