package service

import (
	"context"

	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/logger"
)

type ReplyService interface {
	Add(ctx context.Context, payload domain.Payload, ref domain.CommentRef, requester domain.UserId) (domain.AddedReply, error)
	Delete(ctx context.Context, ref domain.ReplyRef, requester domain.UserId) error
}

type Reply struct {
	storage   ReplyStorage
	guard     *Guard
	sanitizer Sanitizer
}

func NewReply(storage ReplyStorage, guard *Guard, sanitizer Sanitizer) *Reply {
	return &Reply{storage: storage, guard: guard, sanitizer: sanitizer}
}

func (r *Reply) Add(ctx context.Context, payload domain.Payload, ref domain.CommentRef, requester domain.UserId) (domain.AddedReply, error) {
	if err := r.guard.CommentInThread(ctx, ref); err != nil {
		return domain.AddedReply{}, err
	}

	newReply, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	newReply.Content = r.sanitizer.Text(newReply.Content)
	if newReply.Content == "" {
		return domain.AddedReply{}, errors.New(errors.MissingField, "cannot create new reply: content must contain text")
	}

	added, err := r.storage.CreateReply(ctx, newReply, ref.CommentId, requester)
	if err != nil {
		logger.Log.Error("failed to create reply", "comment_id", ref.CommentId, "owner", requester, "error", err)
		return domain.AddedReply{}, err
	}
	createdTotal.WithLabelValues("reply").Inc()
	return added, nil
}

func (r *Reply) Delete(ctx context.Context, ref domain.ReplyRef, requester domain.UserId) error {
	if err := r.guard.ReplyDeletable(ctx, ref, requester); err != nil {
		return err
	}

	if err := r.storage.TombstoneReply(ctx, ref.ReplyId); err != nil {
		return err
	}
	tombstonedTotal.WithLabelValues("reply").Inc()
	logger.Log.Info("reply tombstoned", "comment_id", ref.CommentId, "reply_id", ref.ReplyId)
	return nil
}
