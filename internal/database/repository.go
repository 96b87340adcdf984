package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"homerepair/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks homerepair/internal/database ServiceRepository,BookingRepository

var ErrNotFound = errors.New("document not found")

type ServiceRepository interface {
	List(ctx context.Context, skip, limit int64) ([]models.Service, error)
	Count(ctx context.Context) (int64, error)
	Popular(ctx context.Context, n int64) ([]models.Service, error)
	FindByProvider(ctx context.Context, email string) ([]models.Service, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Insert(ctx context.Context, service models.Service) (models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	Search(ctx context.Context, query string) ([]models.Service, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, booking models.BookedService) (models.InsertResult, error)
	FindByCustomer(ctx context.Context, email string) ([]models.BookedService, error)
	FindByProvider(ctx context.Context, email string) ([]models.BookedService, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
}

// Store is the document store as seen by the HTTP layer.
type Store interface {
	Services() ServiceRepository
	Bookings() BookingRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
