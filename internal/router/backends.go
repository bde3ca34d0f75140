package router

import (
	"context"
	"errors"
	"fmt"

	"patitas-eternas/internal/adapters/auth/idp"
	"patitas-eternas/internal/adapters/auth/jwtsession"
	"patitas-eternas/internal/adapters/payments/paypal"
	mem "patitas-eternas/internal/adapters/storage/memory"
	mdb "patitas-eternas/internal/adapters/storage/mongodb"
	pg "patitas-eternas/internal/adapters/storage/postgres"
	"patitas-eternas/internal/adapters/storage/s3store"
	"patitas-eternas/internal/config"
	"patitas-eternas/internal/domain/applications"
	"patitas-eternas/internal/domain/images"
	"patitas-eternas/internal/domain/payments"
	"patitas-eternas/internal/domain/pets"
	"patitas-eternas/internal/domain/users"
	"patitas-eternas/internal/platform/logger"
	"patitas-eternas/internal/ports/auth"

	"go.mongodb.org/mongo-driver/mongo"
)

// Backends agrupa los adapters elegidos por configuración.
type Backends struct {
	Pets         pets.Repository
	Applications applications.Repository
	Users        users.Repository
	Payments     payments.Repository
	Images       images.Store
	Gateway      payments.Gateway // nil => pagos deshabilitados

	closers []func(context.Context) error
}

// MemoryBackends: todo en memoria, sin pasarela. Default de dev y tests.
func MemoryBackends() *Backends {
	return &Backends{
		Pets:         mem.NewPetRepo(),
		Applications: mem.NewApplicationRepo(),
		Users:        mem.NewUserRepo(),
		Payments:     mem.NewPaymentRepo(),
		Images:       mem.NewImageStore(),
	}
}

// Close libera conexiones abiertas por OpenBackends.
func (b *Backends) Close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenBackends conecta storage, image store y pasarela según cfg.
func OpenBackends(ctx context.Context, cfg *config.Config, log logger.Logger) (*Backends, error) {
	b := MemoryBackends()

	var mongoDB *mongo.Database
	if cfg.Storage.Driver == config.StorageMongo || cfg.Images.Store == config.ImagesGridFS {
		client, err := mdb.Connect(ctx, cfg.Storage.MongoURI)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Disconnect)
		mongoDB = client.Database(cfg.Storage.MongoDatabase)
	}

	switch cfg.Storage.Driver {
	case config.StorageMongo:
		b.Pets = mdb.NewPetsRepo(mongoDB)
		b.Applications = mdb.NewApplicationsRepo(mongoDB)
		b.Users = mdb.NewUsersRepo(mongoDB)
		b.Payments = mdb.NewPaymentsRepo(mongoDB)
	case config.StoragePostgres:
		db, err := pg.Open(cfg.Storage.PostgresDSN)
		if err != nil {
			_ = b.Close(ctx)
			return nil, fmt.Errorf("postgres: open: %w", err)
		}
		b.closers = append(b.closers, func(context.Context) error { return db.Close() })
		b.Pets = pg.NewPetsRepo(db)
		b.Applications = pg.NewApplicationsRepo(db)
		b.Users = pg.NewUsersRepo(db)
		b.Payments = pg.NewPaymentsRepo(db)
	}

	switch cfg.Images.Store {
	case config.ImagesGridFS:
		store, err := mdb.NewGridFSStore(mongoDB)
		if err != nil {
			_ = b.Close(ctx)
			return nil, err
		}
		b.Images = store
	case config.ImagesS3:
		store, err := s3store.New(ctx, s3store.Options{
			Bucket:   cfg.Images.S3Bucket,
			Prefix:   cfg.Images.S3Prefix,
			Region:   cfg.Images.AWSRegion,
			Endpoint: cfg.Images.AWSEndpoint,
		})
		if err != nil {
			_ = b.Close(ctx)
			return nil, err
		}
		b.Images = store
	}

	if cfg.PayPal.Configured() {
		gw, err := paypal.New(cfg.PayPal.APIURL, cfg.PayPal.ClientID, cfg.PayPal.Secret, cfg.PayPal.Timeout)
		if err != nil {
			_ = b.Close(ctx)
			return nil, err
		}
		b.Gateway = gw
	} else {
		log.Warn("paypal not configured; payment routes will answer 500", nil)
	}

	log.Info("backends ready", map[string]any{
		"storage": cfg.Storage.Driver,
		"images":  cfg.Images.Store,
	})
	return b, nil
}

// NewVerifier elige cómo se validan los Bearer tokens:
// secreto propio (HS256) > IdP remoto > nil (modo dev, headers de debug).
func NewVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	switch {
	case cfg.Auth.JWTSecret != "":
		v, err := jwtsession.NewVerifier(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, err
		}
		return v, nil
	case cfg.Auth.IDPBaseURL != "":
		client, err := idp.NewClient(idp.Config{
			BaseURL: cfg.Auth.IDPBaseURL,
			APIKey:  cfg.Auth.IDPAPIKey,
			Timeout: cfg.Auth.IDPTimeout,
		})
		if err != nil {
			return nil, err
		}
		return idp.NewVerifier(client), nil
	}
	return nil, nil
}
