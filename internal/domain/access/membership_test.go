package access

import (
	"testing"

	"bookclub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMember_NewCandidate(t *testing.T) {
	res, err := AddMember("u9", entity.MemberReader, []string{"u3"}, []string{"u2"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"u3", "u9"}, res.Readers)
	assert.Equal(t, []string{"u2"}, res.Writers)
	assert.False(t, res.NeedsConfirmation)
	assert.True(t, res.Changed)
}

func TestAddMember_Idempotent(t *testing.T) {
	first, err := AddMember("u9", entity.MemberWriter, nil, nil, false)
	require.NoError(t, err)

	second, err := AddMember("u9", entity.MemberWriter, first.Readers, first.Writers, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"u9"}, second.Writers)
	assert.False(t, second.Changed)
	assert.False(t, second.NeedsConfirmation)
}

func TestAddMember_ConflictNeedsConfirmation(t *testing.T) {
	readers := []string{"u3"}
	writers := []string{"u2"}

	res, err := AddMember("u2", entity.MemberReader, readers, writers, false)
	require.NoError(t, err)

	assert.True(t, res.NeedsConfirmation)
	assert.False(t, res.Changed)
	assert.Equal(t, readers, res.Readers)
	assert.Equal(t, writers, res.Writers)
}

func TestAddMember_ConflictConfirmed(t *testing.T) {
	readers := []string{"u3"}
	writers := []string{"u2", "u7"}

	res, err := AddMember("u2", entity.MemberReader, readers, writers, true)
	require.NoError(t, err)

	assert.False(t, res.NeedsConfirmation)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"u3", "u2"}, res.Readers)
	assert.Equal(t, []string{"u7"}, res.Writers)
	// inputs are never mutated
	assert.Equal(t, []string{"u2", "u7"}, writers)
}

func TestAddMember_InvalidInput(t *testing.T) {
	_, err := AddMember("", entity.MemberReader, nil, nil, false)
	require.ErrorIs(t, err, ErrEmptyCandidate)

	_, err = AddMember("u1", entity.MemberRole("owner"), nil, nil, false)
	require.ErrorIs(t, err, ErrInvalidMemberRole)
}

func TestRemoveMember(t *testing.T) {
	res, err := RemoveMember("u2", entity.MemberWriter, []string{"u3"}, []string{"u2", "u7"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u7"}, res.Writers)
	assert.True(t, res.Changed)

	res, err = RemoveMember("u2", entity.MemberReader, []string{"u3"}, []string{"u7"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u3"}, res.Readers)
	assert.False(t, res.Changed)
}

func TestNormalizeMembers(t *testing.T) {
	writers, readers := NormalizeMembers("u1",
		[]string{"u1", "u2", "u2", ""},
		[]string{"u2", "u3", "u1", "u3"},
	)

	assert.Equal(t, []string{"u2"}, writers)
	assert.Equal(t, []string{"u3"}, readers)
}
