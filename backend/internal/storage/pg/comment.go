package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sembang-dev/sembang/shared/domain"
	internal_errors "github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/utils"
)

var (
	errCommentNotFound = internal_errors.NewNotFound("komentar tidak ditemukan")
	errNotOwner        = internal_errors.NewForbidden("anda tidak berhak mengakses resource ini")
)

func (s *Storage) CreateComment(ctx context.Context, comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	id := utils.NewID(domain.CommentPrefix)
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO comments (id, thread_id, owner, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, content, owner`,
		id, threadId, owner, comment.Content,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.ParseAddedComment(domain.Payload{"id": added.Id, "content": added.Content, "owner": added.Owner})
}

// CommentsByThread scans every comment of the thread, tombstoned ones
// included, oldest first.
func (s *Storage) CommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, u.username, c.date, c.content, c.is_deleted
		 FROM comments c
		 JOIN users u ON u.id = c.owner
		 WHERE c.thread_id = $1
		 ORDER BY c.date, c.seq`,
		threadId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRecord{}
	for rows.Next() {
		var (
			id, username, content string
			date                  time.Time
			deleted               bool
		)
		if err := rows.Scan(&id, &username, &date, &content, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		record, err := domain.ParseCommentRecord(domain.Payload{
			"id": id, "username": username, "date": date,
			"content": content, "replies": []any{}, "tombstone": deleted,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid comment row %s: %w", id, err)
		}
		comments = append(comments, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) CommentExists(ctx context.Context, ref domain.CommentRef) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM comments
			WHERE id = $1 AND thread_id = $2 AND is_deleted = FALSE
		)`,
		ref.CommentId, ref.ThreadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return errCommentNotFound
	}
	return nil
}

func (s *Storage) CommentInThread(ctx context.Context, ref domain.CommentRef) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2)",
		ref.CommentId, ref.ThreadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return errCommentNotFound
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, owner domain.UserId, commentId domain.CommentId) error {
	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", commentId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errCommentNotFound
		}
		return fmt.Errorf("failed to get comment owner: %w", err)
	}
	if actual != owner {
		return errNotOwner
	}
	return nil
}

// TombstoneComment flips is_deleted once; an already deleted comment is NotFound.
func (s *Storage) TombstoneComment(ctx context.Context, commentId domain.CommentId) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE comments SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE",
		commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n == 0 {
		return errCommentNotFound
	}
	return nil
}
