package domain

import "time"

type NewThread struct {
	Title string `validate:"max=50"`
	Body  string `validate:"max=10000"`
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// ThreadRecord is a stored thread joined with its owner's username.
type ThreadRecord struct {
	Id       ThreadId
	Title    string
	Body     string
	Date     time.Time
	Username Username
}

// DetailThread is the public projection returned by GET /threads/{threadId}.
// It is assembled on every read and never stored.
type DetailThread struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []DetailComment `json:"comments"`
}
