// Command provision migrates the schema and creates the bootstrap admin
// from the admin.* configuration. Running it again is a no-op.
package main

import (
	"context"
	"log/slog"
	"os"

	"cardportal/config"
	"cardportal/internal/domain/lifecycle"
	"cardportal/internal/infra/auth"
	"cardportal/internal/infra/cache"
	logs "cardportal/internal/infra/log"
	"cardportal/internal/infra/persistence/postgres"
	"cardportal/internal/usecase"
	"cardportal/internal/usecase/impl"

	"github.com/pkg/errors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Provisioning failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*lifecycle.DefaultTimeout)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("Database schema migrated")

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		UserRepo:     postgres.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Revoker:      cache.NewMemoryRevoker(),
		Config:       cfg,
		Logger:       logger,
	})

	admin, created, err := authUC.ProvisionAdmin(ctx, &usecase.ProvisionAdminInput{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		FullName: cfg.Admin.FullName,
	})
	if err != nil {
		return err
	}

	if created {
		logger.Info("Admin account created", slog.String("email", admin.Email), slog.String("id", admin.ID.String()))
	} else {
		logger.Info("Admin account already present", slog.String("email", admin.Email))
	}

	return nil
}
