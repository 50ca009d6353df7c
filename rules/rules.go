package rules

import (
	"fmt"
	"math"

	"banquet/models"
)

// Validate enforces the standing invariants a configuration must satisfy
// before it may be persisted: every split percentage ranges 0-100, paired
// splits total exactly 100 (nearest integer), the premium add-on range is
// ordered, and gratuity stays flagged as tip pool.
func Validate(c models.RulesConfiguration) error {
	pay := c.PrivateDinnerPay
	percents := map[string]float64{
		"chef tip":         pay.ChefTipPercent,
		"assistant tip":    pay.AssistantTipPercent,
		"owner share":      pay.OwnerSharePercent,
		"partner share":    pay.PartnerSharePercent,
		"monthly payout":   pay.MonthlyPayoutPercent,
		"monthly retained": pay.MonthlyRetainedPercent,
	}
	for name, v := range percents {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s percent must be between 0 and 100, got %v", name, v)
		}
	}

	pairs := []struct {
		name string
		a, b float64
	}{
		{"tip split", pay.ChefTipPercent, pay.AssistantTipPercent},
		{"ownership split", pay.OwnerSharePercent, pay.PartnerSharePercent},
		{"monthly payout split", pay.MonthlyPayoutPercent, pay.MonthlyRetainedPercent},
	}
	for _, p := range pairs {
		if math.Round(p.a+p.b) != 100 {
			return fmt.Errorf("%s must total 100%%, got %v + %v", p.name, p.a, p.b)
		}
	}

	if c.Pricing.PremiumAddOnMinPerGuest > c.Pricing.PremiumAddOnMaxPerGuest {
		return fmt.Errorf("premium add-on min %v exceeds max %v",
			c.Pricing.PremiumAddOnMinPerGuest, c.Pricing.PremiumAddOnMaxPerGuest)
	}

	if !c.Revenue.GratuityIsTipPool {
		return fmt.Errorf("gratuity must remain tip pool, not revenue")
	}

	return nil
}

// Defaults is the configuration installed on first run, before the owner
// has saved anything.
func Defaults() models.RulesConfiguration {
	return models.RulesConfiguration{
		ID: "current",
		Pricing: models.PricingRules{
			AdultBasePrices: map[string]float64{
				models.SlotPrimary:   70,
				models.SlotSecondary: 55,
			},
			DefaultSlot:             models.SlotPrimary,
			ChildDiscountPercent:    50,
			PremiumAddOnMinPerGuest: 0,
			PremiumAddOnMaxPerGuest: 25,
			DistanceFee:             models.DistanceFeeSchedule{FreeRadiusMiles: 30, PerMileRate: 2},
			DefaultGratuityPercent:  18,
			MaxGuestsPerStaff:       12,
		},
		PrivateDinnerPay: models.PaySplits{
			ChefTipPercent:         70,
			AssistantTipPercent:    30,
			OwnerSharePercent:      50,
			PartnerSharePercent:    50,
			MonthlyPayoutPercent:   60,
			MonthlyRetainedPercent: 40,
		},
		Revenue: models.RevenueTreatment{GratuityIsTipPool: true},
	}
}
