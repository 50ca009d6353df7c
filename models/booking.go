package models

// Booking lifecycle statuses kept consistent by the workflow normalizer.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Service statuses, derived from the event date.
const (
	ServiceUpcoming  = "upcoming"
	ServiceInService = "in_service"
	ServiceClosedOut = "closed_out"
)

// Proposal states mirrored onto the booking.
const (
	ProposalNone     = ""
	ProposalPending  = "pending"
	ProposalAccepted = "accepted"
)

// EventFinancialInput carries everything the pricing engine needs about an
// event. Missing numeric fields decode as zero and are priced as zero.
type EventFinancialInput struct {
	Adults               int     `json:"adults" bson:"adults"`
	Children             int     `json:"children" bson:"children"`
	Slot                 string  `json:"slot" bson:"slot"`
	Date                 string  `json:"date" bson:"date"`
	DistanceMiles        float64 `json:"distanceMiles" bson:"distanceMiles"`
	PremiumAddOnPerGuest float64 `json:"premiumAddOnPerGuest" bson:"premiumAddOnPerGuest"`
	StaffingProfile      string  `json:"staffingProfile,omitempty" bson:"staffingProfile,omitempty"`
}

// FinancialSnapshot is immutable once attached to a booking. It records the
// base prices actually used so later rule edits never rewrite history.
type FinancialSnapshot struct {
	Subtotal       float64 `json:"subtotal" bson:"subtotal"`
	Gratuity       float64 `json:"gratuity" bson:"gratuity"`
	DistanceFee    float64 `json:"distanceFee" bson:"distanceFee"`
	Total          float64 `json:"total" bson:"total"`
	AdultBasePrice float64 `json:"adultBasePrice" bson:"adultBasePrice"`
	ChildPrice     float64 `json:"childPrice" bson:"childPrice"`
	CapturedAt     int64   `json:"capturedAt" bson:"capturedAt"`
}

type StaffAssignment struct {
	StaffID string `json:"staffId" bson:"staffId"`
	Name    string `json:"name" bson:"name"`
	Role    string `json:"role" bson:"role"`
}

type Booking struct {
	BookingID   string `json:"bookingId" bson:"bookingId"`
	EventType   string `json:"eventType" bson:"eventType"`
	Slot        string `json:"slot" bson:"slot"`
	Date        string `json:"date" bson:"date"` // YYYY-MM-DD
	Time        string `json:"time" bson:"time"` // HH:MM
	Adults      int    `json:"adults" bson:"adults"`
	Children    int    `json:"children" bson:"children"`
	Location    string `json:"location" bson:"location"`
	ClientName  string `json:"clientName" bson:"clientName"`
	ClientEmail string `json:"clientEmail,omitempty" bson:"clientEmail,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty" bson:"clientPhone,omitempty"`

	DistanceMiles        float64 `json:"distanceMiles" bson:"distanceMiles"`
	PremiumAddOnPerGuest float64 `json:"premiumAddOnPerGuest" bson:"premiumAddOnPerGuest"`

	Pricing FinancialSnapshot `json:"pricing" bson:"pricing"`

	// Flattened financials, derived from Pricing by the normalizer.
	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
	Gratuity    float64 `json:"gratuity" bson:"gratuity"`
	DistanceFee float64 `json:"distanceFee" bson:"distanceFee"`
	Total       float64 `json:"total" bson:"total"`
	Deposit     float64 `json:"deposit" bson:"deposit"`
	Balance     float64 `json:"balance" bson:"balance"`

	// Authoritative workflow inputs.
	DepositPaid    bool   `json:"depositPaid" bson:"depositPaid"`
	ProposalStatus string `json:"proposalStatus,omitempty" bson:"proposalStatus,omitempty"`
	Cancelled      bool   `json:"cancelled" bson:"cancelled"`

	// Derived by the workflow normalizer only. Never set by hand.
	Status        string `json:"status" bson:"status"`
	ServiceStatus string `json:"serviceStatus" bson:"serviceStatus"`

	Assignments []StaffAssignment `json:"assignments,omitempty" bson:"assignments,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
