package access

import (
	"slices"

	"bookclub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyCandidate is returned when a membership change names no user.
	ErrEmptyCandidate = errors.New("membership candidate is empty")
	// ErrInvalidMemberRole is returned for a role other than reader or writer.
	ErrInvalidMemberRole = errors.New("invalid member role")
)

// MembershipResult is the outcome of a membership change.
// When NeedsConfirmation is set the lists are returned unchanged.
type MembershipResult struct {
	Readers           []string
	Writers           []string
	NeedsConfirmation bool
	Changed           bool
}

// AddMember places candidate in the role list. A user holds at most one of reader or writer,
// so a candidate found in the opposite list is only moved once confirmed is true.
func AddMember(candidate string, role entity.MemberRole, readers, writers []string, confirmed bool) (MembershipResult, error) {
	if candidate == "" {
		return MembershipResult{}, ErrEmptyCandidate
	}
	if !role.IsValid() {
		return MembershipResult{}, errors.Wrapf(ErrInvalidMemberRole, "role %q", role)
	}

	result := MembershipResult{
		Readers: slices.Clone(readers),
		Writers: slices.Clone(writers),
	}
	target, opposite := &result.Readers, &result.Writers
	if role == entity.MemberWriter {
		target, opposite = &result.Writers, &result.Readers
	}

	if slices.Contains(*target, candidate) {
		return result, nil
	}

	if slices.Contains(*opposite, candidate) {
		if !confirmed {
			result.NeedsConfirmation = true

			return result, nil
		}
		*opposite = without(*opposite, candidate)
	}

	*target = append(*target, candidate)
	result.Changed = true

	return result, nil
}

// RemoveMember deletes userID from the role list. Removing an absent user is a no-op.
func RemoveMember(userID string, role entity.MemberRole, readers, writers []string) (MembershipResult, error) {
	if !role.IsValid() {
		return MembershipResult{}, errors.Wrapf(ErrInvalidMemberRole, "role %q", role)
	}

	result := MembershipResult{
		Readers: slices.Clone(readers),
		Writers: slices.Clone(writers),
	}

	list := &result.Readers
	if role == entity.MemberWriter {
		list = &result.Writers
	}
	if slices.Contains(*list, userID) {
		*list = without(*list, userID)
		result.Changed = true
	}

	return result, nil
}

// NormalizeMembers removes blanks, duplicates and the owner from both lists.
// A user listed as both writer and reader is kept as writer.
func NormalizeMembers(owner string, writers, readers []string) (normWriters, normReaders []string) {
	seen := map[string]struct{}{owner: {}, "": {}}
	keep := func(ids []string) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}

		return out
	}

	normWriters = keep(writers)
	normReaders = keep(readers)

	return normWriters, normReaders
}

func without(ids []string, userID string) []string {
	return slices.DeleteFunc(ids, func(id string) bool { return id == userID })
}
