package entity

import "slices"

// ReactionKind is one of the four emoji reactions a topic supports.
type ReactionKind string

const (
	ReactionLove       ReactionKind = "LOVE"
	ReactionThumbsUp   ReactionKind = "THUMBS_UP"
	ReactionThumbsDown ReactionKind = "THUMBS_DOWN"
	ReactionSad        ReactionKind = "SAD"
)

// ReactionKinds lists every kind in display order.
var ReactionKinds = []ReactionKind{ReactionLove, ReactionThumbsUp, ReactionThumbsDown, ReactionSad}

var reactionEmoji = map[ReactionKind]string{
	ReactionLove:       "❤️",
	ReactionThumbsUp:   "👍",
	ReactionThumbsDown: "👎",
	ReactionSad:        "😢",
}

// String returns the string representation of the ReactionKind.
func (k ReactionKind) String() string {
	return string(k)
}

// IsValid checks if the ReactionKind is a known kind.
func (k ReactionKind) IsValid() bool {
	_, ok := reactionEmoji[k]

	return ok
}

// Emoji returns the display glyph for the kind.
func (k ReactionKind) Emoji() string {
	return reactionEmoji[k]
}

// Reactions maps each kind to the ids of users who reacted with it.
type Reactions map[ReactionKind][]string

// NewReactions returns a total, empty reaction map.
func NewReactions() Reactions {
	r := make(Reactions, len(ReactionKinds))
	for _, kind := range ReactionKinds {
		r[kind] = []string{}
	}

	return r
}

// Clone returns a deep copy. A nil map clones to nil.
func (r Reactions) Clone() Reactions {
	if r == nil {
		return nil
	}
	cloned := make(Reactions, len(r))
	for kind, users := range r {
		cloned[kind] = slices.Clone(users)
	}

	return cloned
}

// Has reports whether userID reacted with kind.
func (r Reactions) Has(kind ReactionKind, userID string) bool {
	return slices.Contains(r[kind], userID)
}

// Counts returns the number of reactions per kind, with every kind present.
func (r Reactions) Counts() map[ReactionKind]int {
	counts := make(map[ReactionKind]int, len(ReactionKinds))
	for _, kind := range ReactionKinds {
		counts[kind] = len(r[kind])
	}

	return counts
}
