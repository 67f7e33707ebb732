package domain

import "time"

type NewComment struct {
	Content string `validate:"max=10000"`
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentRecord is a stored comment as read for thread assembly.
// Tombstone is bookkeeping and never leaves the service layer.
type CommentRecord struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	Tombstone bool
}

type DetailComment struct {
	Id       CommentId     `json:"id"`
	Username Username      `json:"username"`
	Date     time.Time     `json:"date"`
	Content  string        `json:"content"`
	Replies  []DetailReply `json:"replies"`
}

// CommentRef names a comment through its parent thread.
type CommentRef struct {
	ThreadId  ThreadId
	CommentId CommentId
}
