package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"homerepair/internal/models"
)

// Runs against a real deployment when MONGO_TEST_URI is set. Each run uses
// its own database and drops it afterwards.
func newTestMongoStore(t *testing.T) *MongoStore {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := Connect(ctx, uri)
	require.NoError(t, err)

	store := NewMongoStore(client, "homerepair_test_"+primitive.NewObjectID().Hex())
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, EnsureServiceIndexes(store.Database()))
	require.NoError(t, EnsureBookingIndexes(store.Database()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = store.Database().Drop(ctx)
		_ = store.Close(ctx)
	})
	return store
}

func TestMongoServices(t *testing.T) {
	store := newTestMongoStore(t)
	services := store.Services()
	ctx := context.Background()

	ids := seedServices(t, services, "Pipe Fixing", "Roof Repair", "Tile (Bath)", "Wiring")

	page, err := services.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tile (Bath)", "Wiring"}, serviceNames(page))

	for _, q := range []string{"pipe", "PIPE", "ix"} {
		found, err := services.Search(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Pipe Fixing"}, serviceNames(found), q)
	}
	found, err := services.Search(ctx, "(Bath)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tile (Bath)"}, serviceNames(found))

	got, err := services.FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Pipe Fixing", got.ServiceName)

	_, err = services.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	fresh := primitive.NewObjectID()
	res, err := services.Update(ctx, fresh, models.ServiceFields{ServiceName: "Gutter", Price: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.UpsertedCount)

	del, err := services.Delete(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Zero(t, del.DeletedCount)
}

func TestMongoBookings(t *testing.T) {
	store := newTestMongoStore(t)
	bookings := store.Bookings()
	ctx := context.Background()

	res, err := bookings.Insert(ctx, models.BookedService{
		ServiceName:   "Pipe Fixing",
		UserEmail:     "c@x.com",
		ProviderEmail: "p@x.com",
	})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID)

	upd, err := bookings.UpdateStatus(ctx, id, "Completed")
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.MatchedCount)

	list, err := bookings.FindByProvider(ctx, "p@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Completed", list[0].ServiceStatus)

	none, err := bookings.FindByCustomer(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
