package hierarchy

import "github.com/sembang-dev/sembang/shared/domain"

// Markers shown in place of tombstoned content.
const (
	DeletedCommentMarker = "**komentar telah dihapus**"
	DeletedReplyMarker   = "**balasan telah dihapus**"
)

// RedactComment maps a stored comment to its public projection. The returned
// comment has an empty, non-nil Replies slice.
func RedactComment(c domain.CommentRecord) domain.DetailComment {
	content := c.Content
	if c.Tombstone {
		content = DeletedCommentMarker
	}
	return domain.DetailComment{
		Id:       c.Id,
		Username: c.Username,
		Date:     c.Date,
		Content:  content,
		Replies:  []domain.DetailReply{},
	}
}

func RedactReply(r domain.ReplyRecord) domain.DetailReply {
	content := r.Content
	if r.Tombstone {
		content = DeletedReplyMarker
	}
	return domain.DetailReply{
		Id:       r.Id,
		Content:  content,
		Date:     r.Date,
		Username: r.Username,
	}
}
