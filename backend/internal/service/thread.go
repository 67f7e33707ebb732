package service

import (
	"context"

	"github.com/sembang-dev/sembang/backend/internal/hierarchy"
	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/logger"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.DetailThread, error)
}

type Thread struct {
	storage   ThreadStorage
	comments  CommentStorage
	replies   ReplyStorage
	sanitizer Sanitizer
}

func NewThread(storage ThreadStorage, comments CommentStorage, replies ReplyStorage, sanitizer Sanitizer) *Thread {
	return &Thread{storage: storage, comments: comments, replies: replies, sanitizer: sanitizer}
}

func (t *Thread) Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	newThread.Title = t.sanitizer.Text(newThread.Title)
	newThread.Body = t.sanitizer.Text(newThread.Body)
	if newThread.Title == "" || newThread.Body == "" {
		return domain.AddedThread{}, errors.New(errors.MissingField, "cannot create new thread: title and body must contain text")
	}

	added, err := t.storage.CreateThread(ctx, newThread, owner)
	if err != nil {
		logger.Log.Error("failed to create thread", "owner", owner, "error", err)
		return domain.AddedThread{}, err
	}
	createdTotal.WithLabelValues("thread").Inc()
	return added, nil
}

// Get reads the thread, its comments and their replies in three independent
// queries and assembles them. The reads are not a snapshot: a reply written
// between the last two may be missing from this view.
func (t *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.DetailThread, error) {
	thread, err := t.storage.ThreadByID(ctx, id)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := t.comments.CommentsByThread(ctx, id)
	if err != nil {
		return domain.DetailThread{}, err
	}

	replies, err := t.replies.RepliesByThread(ctx, id)
	if err != nil {
		return domain.DetailThread{}, err
	}

	threadsAssembledTotal.Inc()
	return hierarchy.Assemble(thread, comments, replies), nil
}
