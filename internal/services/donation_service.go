package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodlink/internal/domain"
)

// DonationStore is the slice of the donation repo the service writes through.
type DonationStore interface {
	Insert(ctx context.Context, req *domain.DonationRequest) (primitive.ObjectID, error)
	Upsert(ctx context.Context, id primitive.ObjectID, req *domain.DonationRequest) error
}

type DonationService struct {
	Store DonationStore
	// now is swappable for tests.
	now func() time.Time
}

func NewDonationService(store DonationStore) *DonationService {
	return &DonationService{Store: store, now: time.Now}
}

// Save implements the upsert contract: with an id the matching record is
// updated-or-inserted with a fresh timestamp; without one a new record is
// inserted. Either way the request leaves here stamped and with a status.
func (s *DonationService) Save(ctx context.Context, idHex string, req *domain.DonationRequest) (primitive.ObjectID, error) {
	if req.Status == "" {
		req.Status = domain.StatusPending
	}
	req.CreatedAt = s.now().UTC()

	if idHex != "" {
		id, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return primitive.NilObjectID, err
		}
		return id, s.Store.Upsert(ctx, id, req)
	}
	return s.Store.Insert(ctx, req)
}
