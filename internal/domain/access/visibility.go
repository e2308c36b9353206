package access

import "bookclub/internal/domain/entity"

// MergeVisible unions topic lists and drops repeated ids.
// The first occurrence of an id wins, so callers pass owner results first.
func MergeVisible(lists ...[]*entity.Topic) []*entity.Topic {
	size := 0
	for _, list := range lists {
		size += len(list)
	}

	seen := make(map[string]struct{}, size)
	merged := make([]*entity.Topic, 0, size)
	for _, list := range lists {
		for _, topic := range list {
			if topic == nil {
				continue
			}
			if _, dup := seen[topic.ID]; dup {
				continue
			}
			seen[topic.ID] = struct{}{}
			merged = append(merged, topic)
		}
	}

	return merged
}
