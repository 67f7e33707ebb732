package domain

// Identifiers are opaque kind-prefixed strings, e.g. "thread-3f2a9c0d1b7e4a55".
type (
	UserId    = string
	Username  = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
)

// ID prefixes, see utils.NewID.
const (
	UserPrefix    = "user"
	ThreadPrefix  = "thread"
	CommentPrefix = "comment"
	ReplyPrefix   = "reply"
)
