package main

import (
	"context"
	"log/slog"
	"os"

	"concert-reservation/internal/domain/user"
	"concert-reservation/internal/handler/middleware"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
	"concert-reservation/internal/infra/uow"
	"concert-reservation/internal/pkg/config"
	"concert-reservation/internal/pkg/errs"
	"concert-reservation/internal/pkg/password"
	"concert-reservation/internal/usecase/shared"

	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	Email     string `envconfig:"SEED_ADMIN_EMAIL" default:"admin@example.com"`
	Password  string `envconfig:"SEED_ADMIN_PASSWORD" default:"admin123"`
	FirstName string `envconfig:"SEED_ADMIN_FIRST_NAME" default:"Admin"`
	LastName  string `envconfig:"SEED_ADMIN_LAST_NAME" default:"User"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	var seed seedConfig
	if err := envconfig.Process("", &seed); err != nil {
		logger.Error("シード設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("データベース接続に失敗しました", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	created, err := seedAdmin(context.Background(), uow.NewPostgresUoW(pool), seed)
	if err != nil {
		logger.Error("管理ユーザーの作成に失敗しました", "error", err)
		cleanup()
		os.Exit(1)
	}
	if !created {
		logger.Info("管理ユーザーは既に存在します", "email", seed.Email)
		return
	}
	logger.Info("管理ユーザーを作成しました", "email", seed.Email)
}

// seedAdmin is safe to re-run; an existing account with the same email is left untouched.
func seedAdmin(ctx context.Context, u shared.UnitOfWork, seed seedConfig) (bool, error) {
	email, err := user.NewEmail(seed.Email)
	if err != nil {
		return false, errs.Wrap(err, "admin email")
	}
	if _, err := user.NewPassword(seed.Password); err != nil {
		return false, errs.Wrap(err, "admin password")
	}

	_, err = u.CommandReads().UserCredentialsByEmail(ctx, email.Value())
	switch {
	case err == nil:
		return false, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return false, err
	}

	hash, err := password.Hash(seed.Password, password.SeedCost)
	if err != nil {
		return false, err
	}
	admin, err := user.NewUser(email, hash, seed.FirstName, seed.LastName)
	if err != nil {
		return false, err
	}

	err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, admin)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
