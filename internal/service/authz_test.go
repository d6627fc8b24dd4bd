package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyBlog(t *testing.T) {
	t.Parallel()

	assert.True(t, CanModifyBlog(1, 1))
	assert.False(t, CanModifyBlog(1, 2))
	assert.False(t, CanModifyBlog(2, 1))
}

func TestCanEditComment(t *testing.T) {
	t.Parallel()

	assert.True(t, CanEditComment(5, 5))
	// The blog owner gets no edit rights over other people's comments.
	assert.False(t, CanEditComment(1, 5))
}

func TestCanDeleteComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		principalID     uint
		commentAuthorID uint
		blogAuthorID    uint
		want            bool
	}{
		{"comment author", 5, 5, 1, true},
		{"blog author moderates", 1, 5, 1, true},
		{"author of both", 1, 1, 1, true},
		{"unrelated user", 9, 5, 1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanDeleteComment(tt.principalID, tt.commentAuthorID, tt.blogAuthorID))
		})
	}
}

func TestOwnerFlag(t *testing.T) {
	t.Parallel()

	// Same dual rule as delete: author or blog owner.
	assert.True(t, OwnerFlag(5, 5, 1))
	assert.True(t, OwnerFlag(1, 5, 1))
	assert.False(t, OwnerFlag(9, 5, 1))
}
