package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sembang-dev/sembang/shared/domain"
	internal_errors "github.com/sembang-dev/sembang/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frozen makes every write share one timestamp so ordering falls back to
// insertion order.
func frozen(s *Storage) *Storage {
	at := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }
	return s
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := New()

	added, err := s.CreateUser(ctx, domain.NewUser{Username: "dicoding", Fullname: "Dicoding Indonesia"}, "hash")
	require.NoError(t, err)
	assert.Regexp(t, `^user-[0-9a-f]{16}$`, added.Id)

	_, err = s.CreateUser(ctx, domain.NewUser{Username: "dicoding", Fullname: "Other"}, "hash")
	assert.True(t, internal_errors.IsConflict(err))

	user, err := s.UserByUsername(ctx, "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PassHash)

	_, err = s.UserByUsername(ctx, "nobody")
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestThreadHierarchy(t *testing.T) {
	ctx := context.Background()
	s := frozen(New())

	owner, err := s.CreateUser(ctx, domain.NewUser{Username: "budi", Fullname: "Budi"}, "hash")
	require.NoError(t, err)
	thread, err := s.CreateThread(ctx, domain.NewThread{Title: "t", Body: "b"}, owner.Id)
	require.NoError(t, err)
	other, err := s.CreateThread(ctx, domain.NewThread{Title: "t2", Body: "b2"}, owner.Id)
	require.NoError(t, err)

	var commentIds []domain.CommentId
	for i := 0; i < 5; i++ {
		c, err := s.CreateComment(ctx, domain.NewComment{Content: "c"}, thread.Id, owner.Id)
		require.NoError(t, err)
		commentIds = append(commentIds, c.Id)
	}
	_, err = s.CreateComment(ctx, domain.NewComment{Content: "elsewhere"}, other.Id, owner.Id)
	require.NoError(t, err)

	r1, err := s.CreateReply(ctx, domain.NewReply{Content: "r1"}, commentIds[3], owner.Id)
	require.NoError(t, err)
	r2, err := s.CreateReply(ctx, domain.NewReply{Content: "r2"}, commentIds[0], owner.Id)
	require.NoError(t, err)

	comments, err := s.CommentsByThread(ctx, thread.Id)
	require.NoError(t, err)
	require.Len(t, comments, 5)
	for i, c := range comments {
		assert.Equal(t, commentIds[i], c.Id, "ties are broken by insertion order")
		assert.Equal(t, "budi", c.Username)
	}

	replies, err := s.RepliesByThread(ctx, thread.Id)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r1.Id, replies[0].Id)
	assert.Equal(t, commentIds[3], replies[0].ParentCommentId)
	assert.Equal(t, r2.Id, replies[1].Id)

	record, err := s.ThreadByID(ctx, thread.Id)
	require.NoError(t, err)
	assert.Equal(t, "budi", record.Username)

	empty, err := s.CommentsByThread(ctx, "thread-missing")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGuardsAndTombstones(t *testing.T) {
	ctx := context.Background()
	s := New()

	thread, _ := s.CreateThread(ctx, domain.NewThread{Title: "t", Body: "b"}, "user-a")
	comment, _ := s.CreateComment(ctx, domain.NewComment{Content: "c"}, thread.Id, "user-a")
	reply, _ := s.CreateReply(ctx, domain.NewReply{Content: "r"}, comment.Id, "user-a")

	cref := domain.CommentRef{ThreadId: thread.Id, CommentId: comment.Id}
	rref := domain.ReplyRef{ThreadId: thread.Id, CommentId: comment.Id, ReplyId: reply.Id}

	assert.NoError(t, s.ThreadExists(ctx, thread.Id))
	assert.True(t, internal_errors.IsNotFound(s.ThreadExists(ctx, "thread-x")))

	assert.NoError(t, s.CommentExists(ctx, cref))
	assert.True(t, internal_errors.IsNotFound(s.CommentExists(ctx, domain.CommentRef{ThreadId: "thread-x", CommentId: comment.Id})))
	assert.True(t, internal_errors.IsForbidden(s.VerifyCommentOwner(ctx, "user-b", comment.Id)))

	assert.NoError(t, s.ReplyExists(ctx, rref))
	wrong := rref
	wrong.CommentId = "comment-x"
	assert.True(t, internal_errors.IsNotFound(s.ReplyExists(ctx, wrong)))
	otherThread := rref
	otherThread.ThreadId = "thread-x"
	assert.True(t, internal_errors.IsNotFound(s.ReplyExists(ctx, otherThread)))
	assert.True(t, internal_errors.IsForbidden(s.VerifyReplyOwner(ctx, "user-b", reply.Id)))

	require.NoError(t, s.TombstoneComment(ctx, comment.Id))
	assert.True(t, internal_errors.IsNotFound(s.TombstoneComment(ctx, comment.Id)))
	assert.True(t, internal_errors.IsNotFound(s.CommentExists(ctx, cref)))
	assert.NoError(t, s.CommentInThread(ctx, cref))
	assert.NoError(t, s.ReplyExists(ctx, rref), "a reply outlives its parent's tombstone")

	require.NoError(t, s.TombstoneReply(ctx, reply.Id))
	assert.True(t, internal_errors.IsNotFound(s.TombstoneReply(ctx, reply.Id)))

	comments, _ := s.CommentsByThread(ctx, thread.Id)
	assert.True(t, comments[0].Tombstone)
	assert.Equal(t, "c", comments[0].Content)
}

func TestConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := New()
	thread, _ := s.CreateThread(ctx, domain.NewThread{Title: "t", Body: "b"}, "user-a")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.CreateComment(ctx, domain.NewComment{Content: "c"}, thread.Id, "user-a")
			assert.NoError(t, err)
			_, err = s.CreateReply(ctx, domain.NewReply{Content: "r"}, c.Id, "user-a")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	comments, err := s.CommentsByThread(ctx, thread.Id)
	require.NoError(t, err)
	assert.Len(t, comments, 50)
	replies, err := s.RepliesByThread(ctx, thread.Id)
	require.NoError(t, err)
	assert.Len(t, replies, 50)
}
