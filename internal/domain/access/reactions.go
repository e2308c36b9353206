package access

import (
	"slices"

	"bookclub/internal/domain/entity"
)

// ToggleReaction returns a new reaction map with userID's reaction of kind flipped.
// The result always carries all four kinds. Anonymous users and unknown kinds leave
// the map as it was.
func ToggleReaction(current entity.Reactions, kind entity.ReactionKind, userID string) entity.Reactions {
	if userID == "" || !kind.IsValid() {
		return current.Clone()
	}

	next := entity.NewReactions()
	for k, users := range current {
		next[k] = slices.Clone(users)
	}

	users := next[kind]
	if slices.Contains(users, userID) {
		next[kind] = without(users, userID)
	} else {
		next[kind] = append(users, userID)
	}

	return next
}
