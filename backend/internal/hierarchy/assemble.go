// Package hierarchy builds the thread → comments → replies view from the
// flat lists the storage layer returns. It does no I/O and no authorization.
package hierarchy

import "github.com/sembang-dev/sembang/shared/domain"

// Assemble nests replies under their comments and comments under the thread,
// redacting tombstoned content on the way. Input order is kept at both levels,
// so callers must pass comments and replies in ascending creation order.
// Replies whose parent is not among comments are dropped.
func Assemble(thread domain.ThreadRecord, comments []domain.CommentRecord, replies []domain.ReplyRecord) domain.DetailThread {
	byParent := make(map[domain.CommentId][]domain.DetailReply, len(comments))
	for _, r := range replies {
		byParent[r.ParentCommentId] = append(byParent[r.ParentCommentId], RedactReply(r))
	}

	detailed := make([]domain.DetailComment, 0, len(comments))
	for _, c := range comments {
		dc := RedactComment(c)
		if rs, ok := byParent[c.Id]; ok {
			dc.Replies = rs
		}
		detailed = append(detailed, dc)
	}

	return domain.DetailThread{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: detailed,
	}
}
