package models

// ProposalTerms is the read-only view of a booking frozen at proposal time.
type ProposalTerms struct {
	EventType string            `json:"eventType" bson:"eventType"`
	Date      string            `json:"date" bson:"date"`
	Time      string            `json:"time" bson:"time"`
	Adults    int               `json:"adults" bson:"adults"`
	Children  int               `json:"children" bson:"children"`
	Location  string            `json:"location" bson:"location"`
	MenuItems []string          `json:"menuItems,omitempty" bson:"menuItems,omitempty"`
	Pricing   FinancialSnapshot `json:"pricing" bson:"pricing"`
}

type ProposalToken struct {
	Token      string        `json:"token" bson:"token"`
	BookingID  string        `json:"bookingId" bson:"bookingId"`
	Status     string        `json:"status" bson:"status"` // pending, accepted
	Terms      ProposalTerms `json:"terms" bson:"terms"`
	CreatedAt  int64         `json:"createdAt" bson:"createdAt"`
	AcceptedAt int64         `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty"`
}
