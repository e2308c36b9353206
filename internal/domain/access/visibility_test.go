package access

import (
	"testing"

	"bookclub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMergeVisible_DedupesKeepingFirstOccurrence(t *testing.T) {
	owned := []*entity.Topic{{ID: "t1", Name: "owned"}}
	written := []*entity.Topic{{ID: "t1", Name: "written copy"}, {ID: "t2"}}
	read := []*entity.Topic{{ID: "t3"}, {ID: "t2"}}

	merged := MergeVisible(owned, written, read)

	ids := make([]string, 0, len(merged))
	for _, topic := range merged {
		ids = append(ids, topic.ID)
	}
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids)
	assert.Equal(t, "owned", merged[0].Name)
}

func TestMergeVisible_Empty(t *testing.T) {
	assert.Empty(t, MergeVisible())
	assert.Empty(t, MergeVisible(nil, []*entity.Topic{nil}))
}
