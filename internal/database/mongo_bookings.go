package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"homerepair/internal/models"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.BookedService) (models.InsertResult, error) {
	booking.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *mongoBookingRepo) FindByCustomer(ctx context.Context, email string) ([]models.BookedService, error) {
	return r.find(ctx, customerFilter(email))
}

func (r *mongoBookingRepo) FindByProvider(ctx context.Context, email string) ([]models.BookedService, error) {
	return r.find(ctx, providerFilter(email))
}

// UpdateStatus overwrites serviceStatus whatever its previous value was.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"serviceStatus": status}},
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.BookedService, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]models.BookedService, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
