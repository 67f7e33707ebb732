package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sembang-dev/sembang/shared/domain"
	internal_errors "github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/storage/pg"
	"github.com/sembang-dev/sembang/shared/utils"
)

func (s *Storage) CreateUser(ctx context.Context, user domain.NewUser, passHash string) (domain.AddedUser, error) {
	id := utils.NewID(domain.UserPrefix)
	var added domain.AddedUser
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (id, username, password, fullname)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, fullname`,
		id, user.Username, passHash, user.Fullname,
	).Scan(&added.Id, &added.Username, &added.Fullname)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.AddedUser{}, internal_errors.NewConflict("username tidak tersedia")
		}
		return domain.AddedUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return added, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, fullname, password FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.Fullname, &user.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("user tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
