package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homerepair/internal/models"
)

type mongoServiceRepo struct {
	coll *mongo.Collection
}

func (r *mongoServiceRepo) List(ctx context.Context, skip, limit int64) ([]models.Service, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

// Count is the collection metadata estimate, not an exact count.
func (r *mongoServiceRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

func (r *mongoServiceRepo) Popular(ctx context.Context, n int64) ([]models.Service, error) {
	return r.find(ctx, bson.M{}, options.Find().SetLimit(n))
}

func (r *mongoServiceRepo) FindByProvider(ctx context.Context, email string) ([]models.Service, error) {
	return r.find(ctx, providerFilter(email))
}

func (r *mongoServiceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var service models.Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *mongoServiceRepo) Insert(ctx context.Context, service models.Service) (models.InsertResult, error) {
	service.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *mongoServiceRepo) Search(ctx context.Context, query string) ([]models.Service, error) {
	return r.find(ctx, searchFilter(query))
}

func (r *mongoServiceRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
