package models

// City is an entry of the static preferred-city registry.
type City struct {
	ID          int    `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// AccommodationType is a stay tier with its per-person surcharge. The cheapest
// tier carries a zero surcharge.
type AccommodationType struct {
	ID          string `bson:"_id" json:"id"`
	Label       string `bson:"label" json:"label"`
	Description string `bson:"description" json:"description"`
	Surcharge   int64  `bson:"surcharge" json:"surcharge"`
}

// AddOn is an optional paid enhancement applied per traveler.
type AddOn struct {
	ID          string `bson:"_id" json:"id"`
	Label       string `bson:"label" json:"label"`
	Description string `bson:"description" json:"description"`
	Price       int64  `bson:"price" json:"price"`
}

// BookingOptions bundles the static booking lookup tables for the options
// endpoint.
type BookingOptions struct {
	AccommodationTypes []AccommodationType `json:"accommodationTypes"`
	AddOns             []AddOn             `json:"addOns"`
}
