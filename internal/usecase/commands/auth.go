package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	reqdto "concert-reservation/internal/handler/dto/request"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/pkg/clock"
	"concert-reservation/internal/pkg/errs"
	"concert-reservation/internal/pkg/password"
	"concert-reservation/internal/usecase/queries"
	"concert-reservation/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	AccessTokenDuration() time.Duration
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	clock     clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	user, err := a.uow.CommandReads().UserCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so callers cannot probe for accounts
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "load user credentials")
	}

	if err := password.Compare(user.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, errs.ErrUserInactive
	}

	accessToken, err := a.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, user.ID, now)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.WarnContext(ctx, "failed to update last login", "user_id", user.ID, "error", err.Error())
	}

	view, err := a.readStore.FindByID(ctx, user.ID)
	if err != nil {
		return nil, errs.Wrap(err, "load logged in user")
	}

	return &LoginResult{
		AccessToken: accessToken,
		ExpiresIn:   a.tokens.AccessTokenDuration(),
		User:        view,
	}, nil
}
