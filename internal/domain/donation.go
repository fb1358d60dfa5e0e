package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request lifecycle states.
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	District       string             `bson:"district" json:"district"`
	Upazila        string             `bson:"upazila" json:"upazila"`
	Hospital       string             `bson:"hospital" json:"hospital"`
	Address        string             `bson:"address" json:"address"`
	BloodGroup     string             `bson:"bloodGroup" json:"bloodGroup"`
	DonationDate   string             `bson:"donationDate" json:"donationDate"`
	DonationTime   string             `bson:"donationTime" json:"donationTime"`
	Message        string             `bson:"message,omitempty" json:"message,omitempty"`
	Status         string             `bson:"status" json:"status"`
	DonorName      string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail     string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
