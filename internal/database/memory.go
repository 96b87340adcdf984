package database

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"homerepair/internal/models"
)

// MemoryStore keeps both collections in process, in insertion order. It
// follows the same matching rules as the mongo repositories.
type MemoryStore struct {
	services *memoryServiceRepo
	bookings *memoryBookingRepo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		services: &memoryServiceRepo{},
		bookings: &memoryBookingRepo{},
	}
}

func (s *MemoryStore) Services() ServiceRepository { return s.services }

func (s *MemoryStore) Bookings() BookingRepository { return s.bookings }

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }

type memoryServiceRepo struct {
	mu   sync.RWMutex
	docs []models.Service
}

func (r *memoryServiceRepo) List(_ context.Context, skip, limit int64) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0)
	if skip < 0 || skip >= int64(len(r.docs)) {
		return out, nil
	}
	end := int64(len(r.docs))
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return append(out, r.docs[skip:end]...), nil
}

func (r *memoryServiceRepo) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func (r *memoryServiceRepo) Popular(ctx context.Context, n int64) ([]models.Service, error) {
	return r.List(ctx, 0, n)
}

func (r *memoryServiceRepo) FindByProvider(_ context.Context, email string) ([]models.Service, error) {
	return r.filter(func(s models.Service) bool { return s.ProviderEmail == email }), nil
}

func (r *memoryServiceRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		service := r.docs[i]
		return &service, nil
	}
	return nil, ErrNotFound
}

func (r *memoryServiceRepo) Insert(_ context.Context, service models.Service) (models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	service.ID = primitive.NewObjectID()
	r.docs = append(r.docs, service)
	return models.InsertResult{Acknowledged: true, InsertedID: service.ID}, nil
}

func (r *memoryServiceRepo) Update(_ context.Context, id primitive.ObjectID, fields models.ServiceFields) (models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.docs = append(r.docs, models.Service{ID: id, ServiceFields: fields})
		return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
	}

	result := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if r.docs[i].ServiceFields != fields {
		r.docs[i].ServiceFields = fields
		result.ModifiedCount = 1
	}
	return result, nil
}

func (r *memoryServiceRepo) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.DeleteResult{Acknowledged: true}, nil
	}
	r.docs = append(r.docs[:i], r.docs[i+1:]...)
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *memoryServiceRepo) Search(_ context.Context, query string) ([]models.Service, error) {
	needle := strings.ToLower(query)
	return r.filter(func(s models.Service) bool {
		return strings.Contains(strings.ToLower(s.ServiceName), needle)
	}), nil
}

func (r *memoryServiceRepo) filter(match func(models.Service) bool) []models.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, doc := range r.docs {
		if match(doc) {
			out = append(out, doc)
		}
	}
	return out
}

func (r *memoryServiceRepo) indexOf(id primitive.ObjectID) int {
	for i, doc := range r.docs {
		if doc.ID == id {
			return i
		}
	}
	return -1
}

type memoryBookingRepo struct {
	mu   sync.RWMutex
	docs []models.BookedService
}

func (r *memoryBookingRepo) Insert(_ context.Context, booking models.BookedService) (models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = primitive.NewObjectID()
	r.docs = append(r.docs, booking)
	return models.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (r *memoryBookingRepo) FindByCustomer(_ context.Context, email string) ([]models.BookedService, error) {
	return r.filter(func(b models.BookedService) bool { return b.UserEmail == email }), nil
}

func (r *memoryBookingRepo) FindByProvider(_ context.Context, email string) ([]models.BookedService, error) {
	return r.filter(func(b models.BookedService) bool { return b.ProviderEmail == email }), nil
}

func (r *memoryBookingRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.docs {
		if r.docs[i].ID != id {
			continue
		}
		result := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if r.docs[i].ServiceStatus != status {
			r.docs[i].ServiceStatus = status
			result.ModifiedCount = 1
		}
		return result, nil
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func (r *memoryBookingRepo) filter(match func(models.BookedService) bool) []models.BookedService {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.BookedService, 0)
	for _, doc := range r.docs {
		if match(doc) {
			out = append(out, doc)
		}
	}
	return out
}
