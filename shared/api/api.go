package api

import "github.com/sembang-dev/sembang/shared/domain"

// Response DTOs. Each one is the "data" member of a success envelope.

type AddedUserResponse struct {
	AddedUser domain.AddedUser `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"` // also set as an HttpOnly cookie
}

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.DetailThread `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
