// Comando initdb prepara la base: migraciones (postgres) o índices (mongo),
// cuenta admin inicial y, con -sample, mascotas de ejemplo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"patitas-eternas/internal/adapters/auth/jwtsession"
	mdb "patitas-eternas/internal/adapters/storage/mongodb"
	pg "patitas-eternas/internal/adapters/storage/postgres"
	"patitas-eternas/internal/config"
	"patitas-eternas/internal/domain/users"
	"patitas-eternas/internal/platform/logger"
	"patitas-eternas/internal/ports/auth"
	"patitas-eternas/internal/router"
)

func main() {
	sample := flag.Bool("sample", false, "crear mascotas de ejemplo si no hay ninguna")
	token := flag.Duration("token", 0, "imprimir un token admin con esta vigencia (requiere AUTH_JWT_SECRET)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "initdb",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, log, *sample, *token); err != nil {
		log.Error("initdb failed", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("initdb done", nil)
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, sample bool, tokenTTL time.Duration) error {
	if cfg.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}

	if err := prepareSchema(ctx, cfg, log); err != nil {
		return err
	}

	b, err := router.OpenBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close(context.Background()) }()

	admin, err := seedAdmin(ctx, users.NewService(b.Users), cfg.Admin, log)
	if err != nil {
		return err
	}

	if sample {
		n, err := seedSamplePets(ctx, b.Pets)
		if err != nil {
			return err
		}
		log.Info("sample pets", map[string]any{"created": n})
	}

	if tokenTTL > 0 {
		v, err := jwtsession.NewVerifier(cfg.Auth.JWTSecret)
		if err != nil {
			return err
		}
		tok, err := v.Sign(auth.Claims{
			UserID: admin.ID,
			Email:  admin.Email,
			Name:   admin.Name,
			Role:   string(admin.Role),
		}, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(tok)
	}
	return nil
}

func prepareSchema(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := pg.Open(cfg.Storage.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.Migrate(db); err != nil {
			return err
		}
		log.Info("migrations applied", nil)
	case config.StorageMongo:
		client, err := mdb.Connect(ctx, cfg.Storage.MongoURI)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		if err := mdb.EnsureIndexes(ctx, client.Database(cfg.Storage.MongoDatabase)); err != nil {
			return err
		}
		log.Info("indexes created", nil)
	default:
		log.Warn("memory storage: nothing persists after exit", nil)
	}
	return nil
}

func seedAdmin(ctx context.Context, svc *users.Service, seed config.AdminSeed, log logger.Logger) (users.User, error) {
	u, created, err := svc.EnsureAdmin(ctx, seed.Name, seed.Email, seed.Password)
	if err != nil {
		return users.User{}, fmt.Errorf("seed admin: %w", err)
	}
	log.Info("admin account", map[string]any{"email": u.Email, "created": created})
	return u, nil
}
