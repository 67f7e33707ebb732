package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/sembang-dev/sembang/backend/internal/handler"
	"github.com/sembang-dev/sembang/backend/internal/service"
	"github.com/sembang-dev/sembang/backend/internal/storage/memory"
	"github.com/sembang-dev/sembang/backend/internal/storage/pg"
	"github.com/sembang-dev/sembang/shared/config"
	"github.com/sembang-dev/sembang/shared/jwt"
	"github.com/sembang-dev/sembang/shared/logger"
	mw "github.com/sembang-dev/sembang/shared/middleware"
	"github.com/sembang-dev/sembang/shared/middleware/ratelimiter"
	"github.com/sembang-dev/sembang/shared/utils"
)

// idleLimiterTTL is how long an unused per-user bucket is kept.
const idleLimiterTTL = time.Hour

// Store is everything the services and the readiness probe need from a backend.
type Store interface {
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	service.UserStorage
	handler.HealthChecker
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config          *config.Config
	Handler         *handler.Handler
	AuthMiddleware  *mw.Auth
	MutationLimiter *ratelimiter.KeyedLimiter

	cleanup []func() error
}

// SetupDependencies opens the configured storage backend and wires the
// services, handler and middleware around it.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	var (
		store   Store
		cleanup []func() error
	)
	switch cfg.Public.Storage.Driver {
	case config.DriverMemory:
		logger.Component("setup").Warn("using in-memory storage, data is lost on restart")
		store = memory.New()
	case config.DriverPg:
		storage, err := pg.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := storage.Migrate(ctx); err != nil {
			storage.Cleanup()
			return nil, err
		}
		store = storage
		cleanup = append(cleanup, storage.Cleanup)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Public.Storage.Driver)
	}

	return Wire(cfg, store, cleanup...), nil
}

// Wire builds the dependency graph over an already opened store.
func Wire(cfg *config.Config, store Store, cleanup ...func() error) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	sanitizer := utils.NewTextSanitizer()
	guard := service.NewGuard(store, store, store)

	auth := service.NewAuth(store, jwtService, sanitizer)
	thread := service.NewThread(store, store, store, sanitizer)
	comment := service.NewComment(store, guard, sanitizer)
	reply := service.NewReply(store, guard, sanitizer)

	limiter := ratelimiter.New(cfg.Public.MutationRPS, cfg.Public.MutationBurst, idleLimiterTTL)

	return &Dependencies{
		Config:          cfg,
		Handler:         handler.New(auth, thread, comment, reply, store, cfg),
		AuthMiddleware:  mw.NewAuth(jwtService),
		MutationLimiter: limiter,
		cleanup:         append(cleanup, func() error { limiter.Stop(); return nil }),
	}
}

// Close releases the storage connection and background timers.
func (d *Dependencies) Close() error {
	var firstErr error
	for _, fn := range d.cleanup {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
