package pg

import (
	"context"
	"testing"

	"github.com/sembang-dev/sembang/shared/domain"
	internal_errors "github.com/sembang-dev/sembang/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsByThread(t *testing.T) {
	ctx := context.Background()
	owner := setupUser(t)
	other := setupUser(t)
	thread := setupThread(t, owner.Id)

	t.Run("empty thread", func(t *testing.T) {
		comments, err := storage.CommentsByThread(ctx, thread.Id)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	first := setupComment(t, thread.Id, owner.Id)
	second := setupComment(t, thread.Id, other.Id)
	third := setupComment(t, thread.Id, owner.Id)
	require.NoError(t, storage.TombstoneComment(ctx, second.Id))

	// a comment in another thread must not leak in
	setupComment(t, setupThread(t, owner.Id).Id, owner.Id)

	comments, err := storage.CommentsByThread(ctx, thread.Id)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, []domain.CommentId{first.Id, second.Id, third.Id},
		[]domain.CommentId{comments[0].Id, comments[1].Id, comments[2].Id}, "oldest first")
	assert.False(t, comments[0].Tombstone)
	assert.True(t, comments[1].Tombstone)
	assert.Equal(t, "sebuah comment", comments[1].Content, "storage keeps the original content")
	assert.Equal(t, other.Username, comments[1].Username)
}

func TestCommentGuards(t *testing.T) {
	ctx := context.Background()
	owner := setupUser(t)
	intruder := setupUser(t)
	thread := setupThread(t, owner.Id)
	otherThread := setupThread(t, owner.Id)
	comment := setupComment(t, thread.Id, owner.Id)

	ref := domain.CommentRef{ThreadId: thread.Id, CommentId: comment.Id}
	wrongThread := domain.CommentRef{ThreadId: otherThread.Id, CommentId: comment.Id}

	t.Run("exists", func(t *testing.T) {
		assert.NoError(t, storage.CommentExists(ctx, ref))
		assert.NoError(t, storage.CommentInThread(ctx, ref))
	})

	t.Run("wrong thread is not found", func(t *testing.T) {
		assert.True(t, internal_errors.IsNotFound(storage.CommentExists(ctx, wrongThread)))
		assert.True(t, internal_errors.IsNotFound(storage.CommentInThread(ctx, wrongThread)))
	})

	t.Run("ownership", func(t *testing.T) {
		assert.NoError(t, storage.VerifyCommentOwner(ctx, owner.Id, comment.Id))
		assert.True(t, internal_errors.IsForbidden(storage.VerifyCommentOwner(ctx, intruder.Id, comment.Id)))
		assert.True(t, internal_errors.IsNotFound(storage.VerifyCommentOwner(ctx, owner.Id, "comment-missing")))
	})

	t.Run("tombstone once", func(t *testing.T) {
		require.NoError(t, storage.TombstoneComment(ctx, comment.Id))

		assert.True(t, internal_errors.IsNotFound(storage.CommentExists(ctx, ref)))
		assert.NoError(t, storage.CommentInThread(ctx, ref), "deleted comments still accept replies")
		assert.True(t, internal_errors.IsNotFound(storage.TombstoneComment(ctx, comment.Id)))
	})
}
