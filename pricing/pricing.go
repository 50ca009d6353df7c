package pricing

import (
	"math"
	"time"

	"banquet/models"
)

// Compute turns raw event parameters and a rules configuration into a
// financial snapshot. It performs no I/O and never fails: identical input,
// rules, and timestamp always produce an identical snapshot, which is what
// lets historical bookings be replayed against the rules they were priced
// with.
//
// Negative guest counts or distances are a caller contract violation and are
// not defended against here.
func Compute(in models.EventFinancialInput, rules models.RulesConfiguration, now time.Time) models.FinancialSnapshot {
	p := rules.Pricing

	adultPrice, ok := p.AdultBasePrices[in.Slot]
	if !ok {
		// Unrecognized slot falls back to the configured default tier.
		adultPrice = p.AdultBasePrices[p.DefaultSlot]
	}
	childPrice := round2(adultPrice * (1 - p.ChildDiscountPercent/100))

	// Out-of-range add-ons are clamped, not rejected; the engine runs against
	// already-validated form input and must stay total.
	addOn := clamp(in.PremiumAddOnPerGuest, p.PremiumAddOnMinPerGuest, p.PremiumAddOnMaxPerGuest)

	guests := in.Adults + in.Children
	subtotal := round2(float64(in.Adults)*adultPrice + float64(in.Children)*childPrice + addOn*float64(guests))

	fee := 0.0
	if in.DistanceMiles > p.DistanceFee.FreeRadiusMiles {
		fee = round2((in.DistanceMiles - p.DistanceFee.FreeRadiusMiles) * p.DistanceFee.PerMileRate)
	}

	// Gratuity funds the tip pool and is computed on service revenue only;
	// the distance fee is logistics and never enters the base.
	gratuity := round2(subtotal * p.DefaultGratuityPercent / 100)

	return models.FinancialSnapshot{
		Subtotal:       subtotal,
		Gratuity:       gratuity,
		DistanceFee:    fee,
		Total:          round2(subtotal + gratuity + fee),
		AdultBasePrice: adultPrice,
		ChildPrice:     childPrice,
		CapturedAt:     now.Unix(),
	}
}

// StaffUnits returns how many staff the guest count calls for under the
// configured max-guests-per-staff ratio. Zero when the ratio is unset.
func StaffUnits(guests int, rules models.RulesConfiguration) int {
	per := rules.Pricing.MaxGuestsPerStaff
	if per <= 0 || guests <= 0 {
		return 0
	}
	return (guests + per - 1) / per
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
