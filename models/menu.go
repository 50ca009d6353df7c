package models

// MenuItem is a catering package or premium add-on offered per guest.
type MenuItem struct {
	ItemID        string  `json:"itemId" bson:"itemId"`
	Name          string  `json:"name" bson:"name"`
	Category      string  `json:"category" bson:"category"` // package, addon, dessert
	PricePerGuest float64 `json:"pricePerGuest" bson:"pricePerGuest"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	Available     bool    `json:"available" bson:"available"`
	CreatedAt     int64   `json:"createdAt" bson:"createdAt"`
}
