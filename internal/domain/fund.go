package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Fund struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name" json:"name"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          time.Time          `bson:"date" json:"date"`
}

// PanelStats is the aggregate snapshot shown on the admin/volunteer panel.
type PanelStats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalRequests int64   `json:"totalRequests"`
	TotalFunds    float64 `json:"totalFunds"`
}
