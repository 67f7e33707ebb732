package service

import (
	"context"

	"github.com/sembang-dev/sembang/shared/domain"
)

// Guard runs the checks that must pass before a comment or reply is created
// or tombstoned. Every check is read-only and fails fast with NotFound or
// Forbidden from the storage layer. A target that exists under another parent
// is reported exactly like a missing one.
type Guard struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewGuard(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Guard {
	return &Guard{threads: threads, comments: comments, replies: replies}
}

// ThreadExists is the parent check for new comments.
func (g *Guard) ThreadExists(ctx context.Context, threadId domain.ThreadId) error {
	return g.threads.ThreadExists(ctx, threadId)
}

// CommentInThread is the parent check for new replies. Tombstoned comments
// still accept replies.
func (g *Guard) CommentInThread(ctx context.Context, ref domain.CommentRef) error {
	return g.comments.CommentInThread(ctx, ref)
}

// CommentDeletable checks existence and membership first, then ownership.
func (g *Guard) CommentDeletable(ctx context.Context, ref domain.CommentRef, requester domain.UserId) error {
	if err := g.comments.CommentExists(ctx, ref); err != nil {
		return err
	}
	return g.comments.VerifyCommentOwner(ctx, requester, ref.CommentId)
}

func (g *Guard) ReplyDeletable(ctx context.Context, ref domain.ReplyRef, requester domain.UserId) error {
	if err := g.replies.ReplyExists(ctx, ref); err != nil {
		return err
	}
	return g.replies.VerifyReplyOwner(ctx, requester, ref.ReplyId)
}
