package mongodb

import (
	"context"

	"patitas-eternas/internal/domain/payments"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentsRepo struct {
	coll *mongo.Collection
}

func NewPaymentsRepo(db *mongo.Database) *PaymentsRepo {
	return &PaymentsRepo{coll: db.Collection(paymentsCollection)}
}

func (r *PaymentsRepo) Create(ctx context.Context, p payments.Payment) (string, error) {
	res, err := r.coll.InsertOne(ctx, paymentToDoc(p))
	if err != nil {
		return "", mapErr(err)
	}
	return insertedHex(res)
}

func (r *PaymentsRepo) GetByID(ctx context.Context, id string) (payments.Payment, error) {
	oid, err := parseID(id)
	if err != nil {
		return payments.Payment{}, err
	}

	var d paymentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return payments.Payment{}, mapErr(err)
	}
	return d.toDomain(), nil
}
