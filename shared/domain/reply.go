package domain

import "time"

type NewReply struct {
	Content string `validate:"max=10000"`
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type ReplyRecord struct {
	Id              ReplyId
	Content         string
	Date            time.Time
	Username        Username
	ParentCommentId CommentId
	Tombstone       bool
}

type DetailReply struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

// ReplyRef names a reply through its full parent chain.
type ReplyRef struct {
	ThreadId  ThreadId
	CommentId CommentId
	ReplyId   ReplyId
}

func (r ReplyRef) Comment() CommentRef {
	return CommentRef{ThreadId: r.ThreadId, CommentId: r.CommentId}
}
