package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloodlink/internal/domain"
)

type DonationRepo struct{ col *mongo.Collection }

func NewDonationRepo(db *mongo.Database) *DonationRepo {
	return &DonationRepo{col: db.Collection(colDonations)}
}

func (r *DonationRepo) Insert(ctx context.Context, req *domain.DonationRequest) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Upsert replaces the fields of the request matching id, inserting when no
// such record exists.
func (r *DonationRepo) Upsert(ctx context.Context, id primitive.ObjectID, req *domain.DonationRequest) error {
	update := bson.M{"$set": bson.M{
		"requesterEmail": req.RequesterEmail,
		"requesterName":  req.RequesterName,
		"recipientName":  req.RecipientName,
		"district":       req.District,
		"upazila":        req.Upazila,
		"hospital":       req.Hospital,
		"address":        req.Address,
		"bloodGroup":     req.BloodGroup,
		"donationDate":   req.DonationDate,
		"donationTime":   req.DonationTime,
		"message":        req.Message,
		"status":         req.Status,
		"createdAt":      req.CreatedAt,
	}}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

func (r *DonationRepo) ByID(ctx context.Context, id primitive.ObjectID) (*domain.DonationRequest, error) {
	var req domain.DonationRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DonationRepo) ByRequester(ctx context.Context, email string) ([]domain.DonationRequest, error) {
	return r.find(ctx, bson.M{"requesterEmail": email}, nil)
}

// Recent returns the requester's three newest requests.
func (r *DonationRepo) Recent(ctx context.Context, email string) ([]domain.DonationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(3)
	return r.find(ctx, bson.M{"requesterEmail": email}, opts)
}

func (r *DonationRepo) All(ctx context.Context) ([]domain.DonationRequest, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *DonationRepo) Pending(ctx context.Context) ([]domain.DonationRequest, error) {
	return r.find(ctx, bson.M{"status": domain.StatusPending}, nil)
}

// SetStatus moves a request through its lifecycle. Donor identity is stamped
// when a donor takes the request (status inprogress).
func (r *DonationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status, donorName, donorEmail string) error {
	set := bson.M{"status": status}
	if donorName != "" {
		set["donorName"] = donorName
	}
	if donorEmail != "" {
		set["donorEmail"] = donorEmail
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *DonationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *DonationRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *DonationRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.DonationRequest, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	var reqs []domain.DonationRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}
