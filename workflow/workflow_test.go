package workflow

import (
	"testing"
	"time"

	"banquet/models"
)

var now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func baseBooking() models.Booking {
	return models.Booking{
		BookingID: "b1",
		Date:      "2025-07-04",
		Time:      "18:00",
		Pricing: models.FinancialSnapshot{
			Subtotal: 1000, Gratuity: 180, DistanceFee: 40, Total: 1220,
		},
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	cases := []models.Booking{
		baseBooking(),
		func() models.Booking { b := baseBooking(); b.Cancelled = true; return b }(),
		func() models.Booking { b := baseBooking(); b.DepositPaid = true; b.Deposit = 300; return b }(),
		func() models.Booking {
			b := baseBooking()
			b.ProposalStatus = models.ProposalAccepted
			b.Date = "2025-01-01"
			return b
		}(),
		{}, // empty record still normalizes
	}
	for i, b := range cases {
		once := Normalize(b, now)
		twice := Normalize(once, now)
		if once.Status != twice.Status || once.ServiceStatus != twice.ServiceStatus || once.Balance != twice.Balance {
			t.Errorf("case %d: normalize not idempotent: %+v vs %+v", i, once, twice)
		}
	}
}

func TestNormalizeDerivesFinancials(t *testing.T) {
	b := baseBooking()
	b.Deposit = 400
	// stale hand-written values get overwritten
	b.Subtotal = 1
	b.Total = 2

	got := Normalize(b, now)
	if got.Subtotal != 1000 || got.Total != 1220 {
		t.Errorf("flattened financials not rebuilt from snapshot: %+v", got)
	}
	if got.Balance != 820 {
		t.Errorf("balance = %v, want 820", got.Balance)
	}
}

func TestNormalizeStatusDerivation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.Booking)
		status  string
		service string
	}{
		{"fresh intake", func(b *models.Booking) {}, models.StatusPending, models.ServiceUpcoming},
		{"accepted proposal confirms", func(b *models.Booking) {
			b.ProposalStatus = models.ProposalAccepted
		}, models.StatusConfirmed, models.ServiceUpcoming},
		{"deposit confirms", func(b *models.Booking) {
			b.DepositPaid = true
		}, models.StatusConfirmed, models.ServiceUpcoming},
		{"cancel absorbs from confirmed", func(b *models.Booking) {
			b.DepositPaid = true
			b.Cancelled = true
		}, models.StatusCancelled, models.ServiceClosedOut},
		{"past confirmed completes", func(b *models.Booking) {
			b.DepositPaid = true
			b.Date = "2025-05-01"
		}, models.StatusCompleted, models.ServiceClosedOut},
		{"past unconfirmed stays pending", func(b *models.Booking) {
			b.Date = "2025-05-01"
		}, models.StatusPending, models.ServiceClosedOut},
		{"event today is in service", func(b *models.Booking) {
			b.DepositPaid = true
			b.Date = "2025-06-10"
		}, models.StatusConfirmed, models.ServiceInService},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := baseBooking()
			c.mutate(&b)
			got := Normalize(b, now)
			if got.Status != c.status {
				t.Errorf("status = %q, want %q", got.Status, c.status)
			}
			if got.ServiceStatus != c.service {
				t.Errorf("serviceStatus = %q, want %q", got.ServiceStatus, c.service)
			}
		})
	}
}

func TestNormalizeRepairsHandWrittenStatus(t *testing.T) {
	b := baseBooking()
	b.ProposalStatus = models.ProposalAccepted
	b.Status = models.StatusPending // stale: proposal was accepted meanwhile

	got := Normalize(b, now)
	if got.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want confirmed after accepted proposal", got.Status)
	}
}
