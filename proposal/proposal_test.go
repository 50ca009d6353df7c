package proposal

import (
	"testing"
	"time"

	"banquet/models"
)

func TestAcceptAtMostOnce(t *testing.T) {
	tok := models.ProposalToken{
		Token:     "tok-1",
		BookingID: "b1",
		Status:    models.ProposalPending,
	}

	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	accepted, already := Accept(tok, first)
	if already {
		t.Fatal("first accept reported alreadyAccepted")
	}
	if accepted.Status != models.ProposalAccepted {
		t.Fatalf("status = %q, want accepted", accepted.Status)
	}
	if accepted.AcceptedAt != first.Unix() {
		t.Fatalf("acceptedAt = %d, want %d", accepted.AcceptedAt, first.Unix())
	}

	later := first.Add(48 * time.Hour)
	again, already := Accept(accepted, later)
	if !already {
		t.Error("repeat accept must report alreadyAccepted")
	}
	if again.AcceptedAt != first.Unix() {
		t.Errorf("repeat accept altered the acceptance timestamp: %d", again.AcceptedAt)
	}
}

func TestTermsFreezePricing(t *testing.T) {
	b := models.Booking{
		BookingID: "b1",
		EventType: "private dinner",
		Date:      "2025-07-04",
		Time:      "18:00",
		Adults:    12,
		Pricing:   models.FinancialSnapshot{Subtotal: 840, Gratuity: 151.2, Total: 991.2, AdultBasePrice: 70},
	}
	terms := TermsFor(b, []string{"tasting menu"})

	if terms.Pricing != b.Pricing {
		t.Errorf("terms pricing = %+v, want booking snapshot", terms.Pricing)
	}
	if terms.Adults != 12 || terms.Date != "2025-07-04" {
		t.Errorf("terms did not capture booking fields: %+v", terms)
	}
	if len(terms.MenuItems) != 1 || terms.MenuItems[0] != "tasting menu" {
		t.Errorf("menu items = %v", terms.MenuItems)
	}
}
