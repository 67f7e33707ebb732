package service

import (
	"context"

	"github.com/sembang-dev/sembang/shared/domain"
)

// Storage contracts. Implementations live in storage/pg and storage/memory.
// Lookups fail with a NotFound error, ownership checks with Forbidden.

type ThreadStorage interface {
	CreateThread(ctx context.Context, thread domain.NewThread, owner domain.UserId) (domain.AddedThread, error)
	ThreadByID(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error)
	ThreadExists(ctx context.Context, id domain.ThreadId) error
}

type CommentStorage interface {
	CreateComment(ctx context.Context, comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	// CommentsByThread returns comments in ascending creation order, tombstoned ones included.
	CommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
	// CommentExists fails if the comment is absent, tombstoned or under another thread.
	CommentExists(ctx context.Context, ref domain.CommentRef) error
	// CommentInThread fails only if the comment is not a child of the thread.
	CommentInThread(ctx context.Context, ref domain.CommentRef) error
	VerifyCommentOwner(ctx context.Context, owner domain.UserId, commentId domain.CommentId) error
	TombstoneComment(ctx context.Context, commentId domain.CommentId) error
}

type ReplyStorage interface {
	CreateReply(ctx context.Context, reply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	// RepliesByThread returns every reply of every comment of the thread in ascending creation order.
	RepliesByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error)
	ReplyExists(ctx context.Context, ref domain.ReplyRef) error
	VerifyReplyOwner(ctx context.Context, owner domain.UserId, replyId domain.ReplyId) error
	TombstoneReply(ctx context.Context, replyId domain.ReplyId) error
}

type UserStorage interface {
	// CreateUser fails with Conflict when the username is taken.
	CreateUser(ctx context.Context, user domain.NewUser, passHash string) (domain.AddedUser, error)
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}

// Sanitizer strips markup from user supplied text before it is stored.
type Sanitizer interface {
	Text(s string) string
}
