package domain

// Geographic lookup rows. The upstream dataset keys divisions, districts and
// upazilas by string ids, so these stay strings rather than ObjectIDs.

type Division struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type District struct {
	ID         string `bson:"id" json:"id"`
	DivisionID string `bson:"division_id" json:"division_id"`
	Name       string `bson:"name" json:"name"`
}

type Upazila struct {
	ID         string `bson:"id" json:"id"`
	DistrictID string `bson:"district_id" json:"district_id"`
	Name       string `bson:"name" json:"name"`
}
