package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func EnsureServiceIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(ServicesCollection).Indexes()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "providerEmail", Value: 1}},
			Options: options.Index().SetName("providerEmail_index"),
		},
		{
			Keys:    bson.D{{Key: "serviceName", Value: 1}},
			Options: options.Index().SetName("serviceName_index"),
		},
	}

	zap.L().Debug("EnsureServiceIndexes: creating indexes", zap.Int("count", len(indexModels)))
	if _, err := indexes.CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("service indexes: %w", err)
	}
	zap.L().Info("EnsureServiceIndexes: indexes ready")
	return nil
}

func EnsureBookingIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(BookedServicesCollection).Indexes()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}},
			Options: options.Index().SetName("userEmail_index"),
		},
		{
			Keys:    bson.D{{Key: "providerEmail", Value: 1}},
			Options: options.Index().SetName("providerEmail_index"),
		},
	}

	zap.L().Debug("EnsureBookingIndexes: creating indexes", zap.Int("count", len(indexModels)))
	if _, err := indexes.CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("booking indexes: %w", err)
	}
	zap.L().Info("EnsureBookingIndexes: indexes ready")
	return nil
}
