package service

import (
	"context"

	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/logger"
)

type CommentService interface {
	Add(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, requester domain.UserId) (domain.AddedComment, error)
	Delete(ctx context.Context, ref domain.CommentRef, requester domain.UserId) error
}

type Comment struct {
	storage   CommentStorage
	guard     *Guard
	sanitizer Sanitizer
}

func NewComment(storage CommentStorage, guard *Guard, sanitizer Sanitizer) *Comment {
	return &Comment{storage: storage, guard: guard, sanitizer: sanitizer}
}

// Add checks the thread exists, validates the payload and stores the comment
// owned by requester.
func (c *Comment) Add(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, requester domain.UserId) (domain.AddedComment, error) {
	if err := c.guard.ThreadExists(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}

	newComment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	newComment.Content = c.sanitizer.Text(newComment.Content)
	if newComment.Content == "" {
		return domain.AddedComment{}, errors.New(errors.MissingField, "cannot create new comment: content must contain text")
	}

	added, err := c.storage.CreateComment(ctx, newComment, threadId, requester)
	if err != nil {
		logger.Log.Error("failed to create comment", "thread_id", threadId, "owner", requester, "error", err)
		return domain.AddedComment{}, err
	}
	createdTotal.WithLabelValues("comment").Inc()
	return added, nil
}

// Delete tombstones the comment. Deleting an already tombstoned comment
// fails with NotFound.
func (c *Comment) Delete(ctx context.Context, ref domain.CommentRef, requester domain.UserId) error {
	if err := c.guard.CommentDeletable(ctx, ref, requester); err != nil {
		return err
	}

	if err := c.storage.TombstoneComment(ctx, ref.CommentId); err != nil {
		return err
	}
	tombstonedTotal.WithLabelValues("comment").Inc()
	logger.Log.Info("comment tombstoned", "thread_id", ref.ThreadId, "comment_id", ref.CommentId)
	return nil
}
