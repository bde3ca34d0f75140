package mongodb

import (
	"context"
	"fmt"

	"patitas-eternas/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(petsCollection)}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	res, err := r.coll.InsertOne(ctx, petToDoc(p))
	if err != nil {
		return "", mapErr(err)
	}
	return insertedHex(res)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := parseID(id)
	if err != nil {
		return pets.Pet{}, err
	}

	var d petDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return d.toDomain(), nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	cur, err := r.coll.Find(ctx, petFilter(f), options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongodb: find pets: %w", err)
	}

	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode pets: %w", err)
	}

	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	oid, err := parseID(id)
	if err != nil {
		return pets.Pet{}, err
	}

	set := petSet(patch)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var d petDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return d.toDomain(), nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

// petFilter traduce el filtro a un documento de consulta.
func petFilter(f pets.ListFilter) bson.M {
	q := bson.M{}
	if len(f.Species) > 0 {
		in := make([]string, 0, len(f.Species))
		for _, s := range f.Species {
			in = append(in, string(s))
		}
		q["species"] = bson.M{"$in": in}
	}
	if f.Size != nil {
		q["size"] = string(*f.Size)
	}
	if f.MinAge != nil || f.MaxAge != nil {
		age := bson.M{}
		if f.MinAge != nil {
			age["$gte"] = *f.MinAge
		}
		if f.MaxAge != nil {
			age["$lte"] = *f.MaxAge
		}
		q["age"] = age
	}
	if f.Status != nil {
		q["status"] = string(*f.Status)
	}
	return q
}

func petSet(pt pets.Patch) bson.M {
	set := bson.M{}
	if pt.Name != nil {
		set["name"] = *pt.Name
	}
	if pt.Species != nil {
		set["species"] = string(*pt.Species)
	}
	if pt.Breed != nil {
		set["breed"] = *pt.Breed
	}
	if pt.Age != nil {
		set["age"] = *pt.Age
	}
	if pt.Size != nil {
		set["size"] = string(*pt.Size)
	}
	if pt.Gender != nil {
		set["gender"] = string(*pt.Gender)
	}
	if pt.Location != nil {
		set["location"] = *pt.Location
	}
	if pt.Description != nil {
		set["description"] = *pt.Description
	}
	if pt.Characteristics != nil {
		set["characteristics"] = nonNil(*pt.Characteristics)
	}
	if pt.HealthStatus != nil {
		set["healthStatus"] = nonNil(*pt.HealthStatus)
	}
	if pt.Status != nil {
		set["status"] = string(*pt.Status)
	}
	if pt.ImageIDs != nil {
		set["imageIds"] = nonNil(*pt.ImageIDs)
	}
	if !pt.UpdatedAt.IsZero() {
		set["updatedAt"] = pt.UpdatedAt
	}
	return set
}
