package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sembang-dev/sembang/shared/domain"
	internal_errors "github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/utils"
)

var errThreadNotFound = internal_errors.NewNotFound("thread tidak ditemukan")

func (s *Storage) CreateThread(ctx context.Context, thread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	id := utils.NewID(domain.ThreadPrefix)
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO threads (id, title, body, owner)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, owner`,
		id, thread.Title, thread.Body, owner,
	).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.ParseAddedThread(domain.Payload{"id": added.Id, "title": added.Title, "owner": added.Owner})
}

func (s *Storage) ThreadByID(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	var thread domain.ThreadRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT t.id, t.title, t.body, t.date, u.username
		 FROM threads t
		 JOIN users u ON u.id = t.owner
		 WHERE t.id = $1`,
		id,
	).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, errThreadNotFound
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) ThreadExists(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return errThreadNotFound
	}
	return nil
}
