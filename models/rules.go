package models

import "time"

// Pricing slots. Each event type maps onto one of these tiers.
const (
	SlotPrimary   = "primary"
	SlotSecondary = "secondary"
)

type DistanceFeeSchedule struct {
	FreeRadiusMiles float64 `json:"freeRadiusMiles" bson:"freeRadiusMiles"`
	PerMileRate     float64 `json:"perMileRate" bson:"perMileRate"`
}

type PricingRules struct {
	AdultBasePrices         map[string]float64  `json:"adultBasePrices" bson:"adultBasePrices"` // slot -> per-guest price
	DefaultSlot             string              `json:"defaultSlot" bson:"defaultSlot"`
	ChildDiscountPercent    float64             `json:"childDiscountPercent" bson:"childDiscountPercent"`
	PremiumAddOnMinPerGuest float64             `json:"premiumAddOnMinPerGuest" bson:"premiumAddOnMinPerGuest"`
	PremiumAddOnMaxPerGuest float64             `json:"premiumAddOnMaxPerGuest" bson:"premiumAddOnMaxPerGuest"`
	DistanceFee             DistanceFeeSchedule `json:"distanceFee" bson:"distanceFee"`
	DefaultGratuityPercent  float64             `json:"defaultGratuityPercent" bson:"defaultGratuityPercent"`
	MaxGuestsPerStaff       int                 `json:"maxGuestsPerStaff" bson:"maxGuestsPerStaff"`
}

// PaySplits holds the private-dinner payout percentages. Each value ranges
// 0-100 and each pair must total 100 before the configuration may be saved.
type PaySplits struct {
	ChefTipPercent         float64 `json:"chefTipPercent" bson:"chefTipPercent"`
	AssistantTipPercent    float64 `json:"assistantTipPercent" bson:"assistantTipPercent"`
	OwnerSharePercent      float64 `json:"ownerSharePercent" bson:"ownerSharePercent"`
	PartnerSharePercent    float64 `json:"partnerSharePercent" bson:"partnerSharePercent"`
	MonthlyPayoutPercent   float64 `json:"monthlyPayoutPercent" bson:"monthlyPayoutPercent"`
	MonthlyRetainedPercent float64 `json:"monthlyRetainedPercent" bson:"monthlyRetainedPercent"`
}

type RevenueTreatment struct {
	// Gratuity funds the tip pool and is never booked as service revenue.
	GratuityIsTipPool bool `json:"gratuityIsTipPool" bson:"gratuityIsTipPool"`
}

type RulesConfiguration struct {
	ID               string           `json:"id" bson:"id"`
	Pricing          PricingRules     `json:"pricing" bson:"pricing"`
	PrivateDinnerPay PaySplits        `json:"privateDinnerPay" bson:"privateDinnerPay"`
	Revenue          RevenueTreatment `json:"revenueTreatment" bson:"revenueTreatment"`
	UpdatedAt        time.Time        `json:"updatedAt" bson:"updatedAt"`
}
