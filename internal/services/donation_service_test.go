package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodlink/internal/domain"
)

type fakeDonationStore struct {
	inserted []*domain.DonationRequest
	upserts  map[primitive.ObjectID]*domain.DonationRequest
}

func newFakeDonationStore() *fakeDonationStore {
	return &fakeDonationStore{upserts: map[primitive.ObjectID]*domain.DonationRequest{}}
}

func (f *fakeDonationStore) Insert(_ context.Context, req *domain.DonationRequest) (primitive.ObjectID, error) {
	f.inserted = append(f.inserted, req)
	return primitive.NewObjectID(), nil
}

func (f *fakeDonationStore) Upsert(_ context.Context, id primitive.ObjectID, req *domain.DonationRequest) error {
	f.upserts[id] = req
	return nil
}

func TestSave_WithIDUpsertsAndRefreshesTimestamp(t *testing.T) {
	store := newFakeDonationStore()
	svc := NewDonationService(store)
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	req := &domain.DonationRequest{RequesterEmail: "alice@bloodlink.test", Status: domain.StatusPending}
	id, err := svc.Save(context.Background(), "507f191e810c19729de860ea", req)
	require.NoError(t, err)

	assert.Equal(t, "507f191e810c19729de860ea", id.Hex())
	assert.Empty(t, store.inserted)
	require.Contains(t, store.upserts, id)
	assert.Equal(t, fixed, store.upserts[id].CreatedAt)
}

func TestSave_WithoutIDInserts(t *testing.T) {
	store := newFakeDonationStore()
	svc := NewDonationService(store)

	req := &domain.DonationRequest{RequesterEmail: "bob@bloodlink.test"}
	_, err := svc.Save(context.Background(), "", req)
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.Empty(t, store.upserts)
	assert.Equal(t, domain.StatusPending, store.inserted[0].Status)
	assert.False(t, store.inserted[0].CreatedAt.IsZero())
}

func TestSave_BadIDFailsBeforeAnyWrite(t *testing.T) {
	store := newFakeDonationStore()
	svc := NewDonationService(store)

	_, err := svc.Save(context.Background(), "not-hex", &domain.DonationRequest{})
	require.Error(t, err)
	assert.Empty(t, store.inserted)
	assert.Empty(t, store.upserts)
}
