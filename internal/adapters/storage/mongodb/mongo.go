package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"patitas-eternas/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	petsCollection         = "pets"
	applicationsCollection = "adoption_applications"
	usersCollection        = "users"
	paymentsCollection     = "payments"
	imagesBucket           = "images"
)

// Connect abre el cliente y hace ping al primario.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices de todas las colecciones. Idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	asc := func(key string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}}
	}
	desc := func(key string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: key, Value: -1}}}
	}

	plan := map[string][]mongo.IndexModel{
		petsCollection: {
			asc("species"), asc("status"), asc("size"), asc("age"), asc("location"),
		},
		applicationsCollection: {
			asc("petId"), asc("userId"), asc("status"), desc("submittedAt"),
		},
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			asc("role"),
		},
		paymentsCollection: {
			asc("userId"), asc("status"), desc("createdAt"),
		},
	}

	for coll, models := range plan {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo: indexes %s: %w", coll, err)
		}
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, storage.ErrMalformedID
	}
	return oid, nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
	}
	return err
}

func insertedHex(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongo: unexpected inserted id %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
