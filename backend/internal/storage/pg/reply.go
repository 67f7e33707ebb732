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

var errReplyNotFound = internal_errors.NewNotFound("balasan tidak ditemukan")

func (s *Storage) CreateReply(ctx context.Context, reply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	id := utils.NewID(domain.ReplyPrefix)
	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO replies (id, comment_id, owner, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, content, owner`,
		id, commentId, owner, reply.Content,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.ParseAddedReply(domain.Payload{"id": added.Id, "content": added.Content, "owner": added.Owner})
}

// RepliesByThread returns the replies of every comment of the thread in one
// query, oldest first.
func (s *Storage) RepliesByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.content, r.date, u.username, r.comment_id, r.is_deleted
		 FROM replies r
		 JOIN comments c ON c.id = r.comment_id
		 JOIN users u ON u.id = r.owner
		 WHERE c.thread_id = $1
		 ORDER BY r.date, r.seq`,
		threadId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.ReplyRecord{}
	for rows.Next() {
		var (
			id, content, username, commentId string
			date                             time.Time
			deleted                          bool
		)
		if err := rows.Scan(&id, &content, &date, &username, &commentId, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		record, err := domain.ParseReplyRecord(domain.Payload{
			"id": id, "content": content, "date": date, "username": username,
			"parentCommentId": commentId, "tombstone": deleted,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid reply row %s: %w", id, err)
		}
		replies = append(replies, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

// ReplyExists checks the whole path: the reply sits under the comment, the
// comment under the thread, and the reply is not deleted.
func (s *Storage) ReplyExists(ctx context.Context, ref domain.ReplyRef) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM replies r
			JOIN comments c ON c.id = r.comment_id
			WHERE r.id = $1 AND r.comment_id = $2 AND c.thread_id = $3 AND r.is_deleted = FALSE
		)`,
		ref.ReplyId, ref.CommentId, ref.ThreadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if !exists {
		return errReplyNotFound
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, owner domain.UserId, replyId domain.ReplyId) error {
	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", replyId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errReplyNotFound
		}
		return fmt.Errorf("failed to get reply owner: %w", err)
	}
	if actual != owner {
		return errNotOwner
	}
	return nil
}

func (s *Storage) TombstoneReply(ctx context.Context, replyId domain.ReplyId) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE replies SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE",
		replyId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if n == 0 {
		return errReplyNotFound
	}
	return nil
}
