package pricing

import (
	"testing"
	"time"

	"banquet/models"
)

func testRules() models.RulesConfiguration {
	return models.RulesConfiguration{
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
	}
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestComputeDinnerScenario(t *testing.T) {
	in := models.EventFinancialInput{Adults: 15, Slot: models.SlotPrimary, DistanceMiles: 10}
	snap := Compute(in, testRules(), fixedNow)

	if snap.Subtotal != 1050 {
		t.Errorf("subtotal = %v, want 1050", snap.Subtotal)
	}
	if snap.Gratuity != 189 {
		t.Errorf("gratuity = %v, want 189", snap.Gratuity)
	}
	if snap.DistanceFee != 0 {
		t.Errorf("distance fee = %v, want 0 inside free radius", snap.DistanceFee)
	}
	if snap.Total != 1239 {
		t.Errorf("total = %v, want 1239", snap.Total)
	}
	if snap.AdultBasePrice != 70 {
		t.Errorf("adult base price = %v, want 70", snap.AdultBasePrice)
	}
}

func TestGratuityExcludesDistanceFee(t *testing.T) {
	rules := testRules()
	rules.Pricing.AdultBasePrices[models.SlotPrimary] = 100
	rules.Pricing.DefaultGratuityPercent = 20

	// subtotal 1000, 55 miles -> 25 billable miles at $2 = $50 fee
	in := models.EventFinancialInput{Adults: 10, Slot: models.SlotPrimary, DistanceMiles: 55}
	snap := Compute(in, rules, fixedNow)

	if snap.Subtotal != 1000 {
		t.Fatalf("subtotal = %v, want 1000", snap.Subtotal)
	}
	if snap.DistanceFee != 50 {
		t.Fatalf("distance fee = %v, want 50", snap.DistanceFee)
	}
	if snap.Gratuity != 200 {
		t.Errorf("gratuity = %v, want 200 (never 210: fee excluded from base)", snap.Gratuity)
	}
	if snap.Total != 1250 {
		t.Errorf("total = %v, want 1250", snap.Total)
	}
}

func TestComputeDeterministic(t *testing.T) {
	in := models.EventFinancialInput{Adults: 8, Children: 3, Slot: models.SlotSecondary, DistanceMiles: 42, PremiumAddOnPerGuest: 12}
	rules := testRules()

	a := Compute(in, rules, fixedNow)
	b := Compute(in, rules, fixedNow)
	if a != b {
		t.Errorf("same input produced different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestChildDiscount(t *testing.T) {
	in := models.EventFinancialInput{Adults: 2, Children: 2, Slot: models.SlotPrimary}
	snap := Compute(in, testRules(), fixedNow)

	// 2*70 + 2*35
	if snap.ChildPrice != 35 {
		t.Errorf("child price = %v, want 35", snap.ChildPrice)
	}
	if snap.Subtotal != 210 {
		t.Errorf("subtotal = %v, want 210", snap.Subtotal)
	}
}

func TestUnknownSlotFallsBackToDefault(t *testing.T) {
	in := models.EventFinancialInput{Adults: 1, Slot: "banquet-hall"}
	snap := Compute(in, testRules(), fixedNow)
	if snap.AdultBasePrice != 70 {
		t.Errorf("adult base price = %v, want default slot price 70", snap.AdultBasePrice)
	}
}

func TestPremiumAddOnClamped(t *testing.T) {
	rules := testRules()
	in := models.EventFinancialInput{Adults: 4, Slot: models.SlotPrimary, PremiumAddOnPerGuest: 100}
	snap := Compute(in, rules, fixedNow)
	// 4*70 + 4*25 (clamped to max)
	if snap.Subtotal != 380 {
		t.Errorf("subtotal = %v, want 380 with add-on clamped to 25", snap.Subtotal)
	}

	in.PremiumAddOnPerGuest = -5
	snap = Compute(in, rules, fixedNow)
	if snap.Subtotal != 280 {
		t.Errorf("subtotal = %v, want 280 with add-on clamped to 0", snap.Subtotal)
	}
}

func TestZeroGuestsKeepsDistanceFee(t *testing.T) {
	in := models.EventFinancialInput{Slot: models.SlotPrimary, DistanceMiles: 40}
	snap := Compute(in, testRules(), fixedNow)

	if snap.Subtotal != 0 || snap.Gratuity != 0 {
		t.Errorf("zero guests: subtotal = %v gratuity = %v, want 0/0", snap.Subtotal, snap.Gratuity)
	}
	if snap.DistanceFee != 20 {
		t.Errorf("distance fee = %v, want 20 even with zero headcount", snap.DistanceFee)
	}
	if snap.Total != 20 {
		t.Errorf("total = %v, want 20", snap.Total)
	}
}

func TestStaffUnits(t *testing.T) {
	rules := testRules()
	cases := []struct {
		guests, want int
	}{
		{0, 0}, {1, 1}, {12, 1}, {13, 2}, {36, 3}, {37, 4},
	}
	for _, c := range cases {
		if got := StaffUnits(c.guests, rules); got != c.want {
			t.Errorf("StaffUnits(%d) = %d, want %d", c.guests, got, c.want)
		}
	}

	rules.Pricing.MaxGuestsPerStaff = 0
	if got := StaffUnits(20, rules); got != 0 {
		t.Errorf("StaffUnits with unset ratio = %d, want 0", got)
	}
}
