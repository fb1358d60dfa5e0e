package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloodlink/internal/domain"
)

type FundRepo struct{ col *mongo.Collection }

func NewFundRepo(db *mongo.Database) *FundRepo {
	return &FundRepo{col: db.Collection(colFunds)}
}

func (r *FundRepo) Insert(ctx context.Context, f *domain.Fund) error {
	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *FundRepo) ByEmail(ctx context.Context, email string) ([]domain.Fund, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	var funds []domain.Fund
	if err := cur.All(ctx, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

func (r *FundRepo) All(ctx context.Context) ([]domain.Fund, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var funds []domain.Fund
	if err := cur.All(ctx, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

// TotalAmount sums all fund amounts server-side.
func (r *FundRepo) TotalAmount(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
