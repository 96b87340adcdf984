package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ServicesCollection       = "services"
	BookedServicesCollection = "bookedServices"
)

// Connect creates a client pinned to the stable API v1. It does not wait for
// the deployment to answer; use Ping for that.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}

func ping(ctx context.Context, client *mongo.Client) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return client.Ping(checkCtx, readpref.Primary())
}

// MongoStore serves both collections from a single long-lived client.
type MongoStore struct {
	client   *mongo.Client
	services *mongoServiceRepo
	bookings *mongoBookingRepo
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		services: &mongoServiceRepo{coll: db.Collection(ServicesCollection)},
		bookings: &mongoBookingRepo{coll: db.Collection(BookedServicesCollection)},
	}
}

func (s *MongoStore) Services() ServiceRepository { return s.services }

func (s *MongoStore) Bookings() BookingRepository { return s.bookings }

func (s *MongoStore) Ping(ctx context.Context) error {
	return ping(ctx, s.client)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Database() *mongo.Database {
	return s.services.coll.Database()
}
