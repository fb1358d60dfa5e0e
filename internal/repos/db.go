package repos

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names follow the deployed dataset.
const (
	colUsers     = "user"
	colDonations = "donationRequest"
	colBlogs     = "blogs"
	colFunds     = "funding"
	colDivisions = "Division"
	colDistricts = "district"
	colUpazilas  = "upazilla"
)

// Connect dials the document store and verifies the connection. The returned
// client is a long-lived shared handle; callers pass the database down into
// repos instead of holding package-level state.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
