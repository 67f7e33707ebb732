package service

import (
	"context"

	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.AddedUser, error)
	Login(ctx context.Context, payload domain.Payload) (string, error)
}

type Auth struct {
	storage   UserStorage
	jwt       Jwt
	sanitizer Sanitizer
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage UserStorage, jwt Jwt, sanitizer Sanitizer) *Auth {
	return &Auth{storage: storage, jwt: jwt, sanitizer: sanitizer}
}

// Register hashes the password and stores the user. A taken username is a Conflict.
func (a *Auth) Register(ctx context.Context, payload domain.Payload) (domain.AddedUser, error) {
	newUser, err := domain.ParseNewUser(payload)
	if err != nil {
		return domain.AddedUser{}, err
	}
	newUser.Fullname = a.sanitizer.Text(newUser.Fullname)
	if newUser.Fullname == "" {
		return domain.AddedUser{}, errors.New(errors.MissingField, "cannot create new user: fullname must contain text")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(newUser.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.AddedUser{}, err
	}

	added, err := a.storage.CreateUser(ctx, newUser, string(passHash))
	if err != nil {
		return domain.AddedUser{}, err
	}
	logger.Log.Info("user registered", "user_id", added.Id)
	return added, nil
}

// Login checks the credentials and returns an access token.
// Unknown usernames and wrong passwords produce the same error.
func (a *Auth) Login(ctx context.Context, payload domain.Payload) (string, error) {
	creds, err := domain.ParseCredentials(payload)
	if err != nil {
		return "", err
	}

	user, err := a.storage.UserByUsername(ctx, creds.Username)
	if err != nil {
		// to not leak existing users
		if errors.IsNotFound(err) {
			return "", errors.NewUnauthorized("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", errors.NewUnauthorized("invalid credentials")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
