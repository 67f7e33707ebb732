package handler

import (
	"context"
	"net/http"

	"github.com/sembang-dev/sembang/backend/internal/service"
	"github.com/sembang-dev/sembang/shared/config"
	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/errors"
	mw "github.com/sembang-dev/sembang/shared/middleware"
	"github.com/sembang-dev/sembang/shared/utils"
)

const maxBodyBytes = 1 << 20

// HealthChecker reports whether the storage backend can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
	cfg     *config.Config
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		health:  health,
		cfg:     cfg,
	}
}

// decodeBody reads the request body as an untyped payload.
func decodeBody(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return utils.DecodePayload(r.Body)
}

// requester returns the authenticated user id. Routes that call it sit behind
// NeedAuth, so a missing user is a wiring error surfaced as 401.
func requester(r *http.Request) (domain.UserId, error) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		return "", errors.NewUnauthorized("Missing authentication")
	}
	return user.Id, nil
}
