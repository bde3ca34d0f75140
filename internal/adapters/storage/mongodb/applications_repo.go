package mongodb

import (
	"context"
	"fmt"

	"patitas-eternas/internal/domain/applications"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationsRepo struct {
	coll *mongo.Collection
}

func NewApplicationsRepo(db *mongo.Database) *ApplicationsRepo {
	return &ApplicationsRepo{coll: db.Collection(applicationsCollection)}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) (string, error) {
	res, err := r.coll.InsertOne(ctx, applicationToDoc(a))
	if err != nil {
		return "", mapErr(err)
	}
	return insertedHex(res)
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	oid, err := parseID(id)
	if err != nil {
		return applications.Application{}, err
	}

	var d applicationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return applications.Application{}, mapErr(err)
	}
	return d.toDomain(), nil
}

func (r *ApplicationsRepo) List(ctx context.Context, f applications.ListFilter) ([]applications.Application, error) {
	q := bson.M{}
	if f.UserID != nil {
		q["userId"] = *f.UserID
	}

	cur, err := r.coll.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongodb: find applications: %w", err)
	}
	var docs []applicationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode applications: %w", err)
	}

	out := make([]applications.Application, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ApplicationsRepo) Update(ctx context.Context, id string, patch applications.Patch) (applications.Application, error) {
	oid, err := parseID(id)
	if err != nil {
		return applications.Application{}, err
	}

	set := bson.M{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if !patch.UpdatedAt.IsZero() {
		set["updatedAt"] = patch.UpdatedAt
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var d applicationDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		return applications.Application{}, mapErr(err)
	}
	return d.toDomain(), nil
}
