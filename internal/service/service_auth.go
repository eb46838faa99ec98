package service

import (
	"context"
	"fmt"

	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/store"
	"github.com/prasetyadi/ecosort/internal/utils"
	"github.com/prasetyadi/ecosort/models"
)

// Auth implements AuthService over the user repository. The built-in
// administrator account is matched against the configured credentials
// before the repository is consulted, so it works even on an empty
// database and shadows any stored user with the same username.
type Auth struct {
	logger *logger.Logger
	users  store.UserRepository
	app    config.App
}

func NewAuthService(users store.UserRepository, app config.App, log *logger.Logger) *Auth {
	return &Auth{
		logger: log.GetChildLogger(),
		users:  users,
		app:    app,
	}
}

func (a *Auth) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("register user: %w", ErrInvalidDataProvided)
	}

	created, err := a.users.CreateUser(ctx, models.User{Username: username, Password: password})
	if err != nil {
		log.Info().Str("func", "Register").Str("username", username).Err(err).Msg("user registration failed")
		return models.User{}, err
	}

	log.Info().Str("func", "Register").Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

func (a *Auth) Login(ctx context.Context, username, password string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Identity{}, fmt.Errorf("login: %w", ErrInvalidDataProvided)
	}

	if username == a.app.AdminUsername && password == a.app.AdminPassword {
		log.Info().Str("func", "Login").Str("username", username).Msg("administrator logged in")
		return models.AdminIdentity(username), nil
	}

	user, err := a.users.FindUserByCredentials(ctx, username, password)
	if err != nil {
		log.Info().Str("func", "Login").Str("username", username).Err(err).Msg("login failed")
		return models.Identity{}, err
	}

	return models.AccountIdentity(user), nil
}

func (a *Auth) CreateSessionToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateSessionToken(a.app.TokenIssuer, identity, a.app.SessionDuration, a.app.TokenSignKey)
	if err != nil {
		log.Error().Str("func", "CreateSessionToken").Err(err).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *Auth) ParseSessionToken(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, a.app.TokenSignKey, a.app.TokenIssuer)
	if err != nil {
		log.Debug().Str("func", "ParseSessionToken").Err(err).Msg("session token rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	return token.Identity, nil
}
