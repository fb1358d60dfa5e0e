package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bloodlink/internal/domain"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(colUsers)}
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	return n > 0, err
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// RoleByEmail resolves the role attached to an email. Missing records surface
// as mongo.ErrNoDocuments so gates can deny without a separate lookup.
func (r *UserRepo) RoleByEmail(ctx context.Context, email string) (string, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		return "", err
	}
	return doc.Role, nil
}

// List returns users, optionally filtered on active/blocked status.
func (r *UserRepo) List(ctx context.Context, status *bool) ([]domain.User, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, email string, fields bson.M) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	return err
}

func (r *UserRepo) SetRole(ctx context.Context, email, role string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	return err
}

// ToggleStatus flips the active flag. This is read-then-write: two concurrent
// toggles of the same record race and the last write wins.
func (r *UserRepo) ToggleStatus(ctx context.Context, email string) (bool, error) {
	u, err := r.ByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	next := !u.Status
	_, err = r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"status": next}})
	return next, err
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
