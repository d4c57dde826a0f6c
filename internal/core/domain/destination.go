package domain

// Destination is a travel-catalog entry. Readable by anyone; created and
// deleted only by callers whose verified role is Admin.
type Destination struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	Description   string  `json:"description" bson:"description"`
	Location      string  `json:"location" bson:"location"`
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
}
