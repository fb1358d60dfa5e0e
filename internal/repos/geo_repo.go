package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bloodlink/internal/domain"
)

// GeoRepo serves the read-only division/district/upazila lookup tables.
type GeoRepo struct {
	divisions *mongo.Collection
	districts *mongo.Collection
	upazilas  *mongo.Collection
}

func NewGeoRepo(db *mongo.Database) *GeoRepo {
	return &GeoRepo{
		divisions: db.Collection(colDivisions),
		districts: db.Collection(colDistricts),
		upazilas:  db.Collection(colUpazilas),
	}
}

func (r *GeoRepo) Divisions(ctx context.Context) ([]domain.Division, error) {
	cur, err := r.divisions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []domain.Division
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GeoRepo) DistrictsByDivision(ctx context.Context, divisionID string) ([]domain.District, error) {
	cur, err := r.districts.Find(ctx, bson.M{"division_id": divisionID})
	if err != nil {
		return nil, err
	}
	var out []domain.District
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GeoRepo) UpazilasByDistrict(ctx context.Context, districtID string) ([]domain.Upazila, error) {
	cur, err := r.upazilas.Find(ctx, bson.M{"district_id": districtID})
	if err != nil {
		return nil, err
	}
	var out []domain.Upazila
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
