package mongodb

import (
	"context"
	"time"

	"patitas-eternas/internal/domain/users"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{coll: db.Collection(usersCollection)}
}

// Create depende del índice único en email (ver EnsureIndexes).
func (r *UsersRepo) Create(ctx context.Context, u users.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, userToDoc(u))
	if err != nil {
		return "", mapErr(err)
	}
	return insertedHex(res)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return users.User{}, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsersRepo) SetRole(ctx context.Context, id string, role users.Role) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": string(role), "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *UsersRepo) findOne(ctx context.Context, q bson.M) (users.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, q).Decode(&d); err != nil {
		return users.User{}, mapErr(err)
	}
	return d.toDomain(), nil
}
