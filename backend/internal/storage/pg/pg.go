package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/sembang-dev/sembang/backend/internal/service"
	"github.com/sembang-dev/sembang/shared/config"
	"github.com/sembang-dev/sembang/shared/logger"
	"github.com/sembang-dev/sembang/shared/storage/pg"
)

//go:embed migrations/init.sql
var initSchema string

type Storage struct {
	db *sql.DB
}

var (
	_ service.ThreadStorage  = (*Storage)(nil)
	_ service.CommentStorage = (*Storage)(nil)
	_ service.ReplyStorage   = (*Storage)(nil)
	_ service.UserStorage    = (*Storage)(nil)
)

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	log := logger.Component("pg")
	log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := pg.Connect(ctx, cfg, pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	log.Info("successfully connected to db")
	return &Storage{db: db}, nil
}

// Migrate applies the embedded schema in one transaction. Every statement is
// idempotent.
func (s *Storage) Migrate(ctx context.Context) error {
	return pg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return applySchema(ctx, tx, initSchema)
	})
}

func applySchema(ctx context.Context, q pg.Querier, schema string) error {
	if _, err := q.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
