package workflow

import (
	"time"

	"banquet/models"
)

// Normalize recomputes a booking's derived fields from its authoritative
// data: the pricing snapshot, the deposit/proposal/cancellation flags, and
// the event date relative to now. It is the single writer of Status and
// ServiceStatus; every persistence path must run a booking through it.
//
// Normalize is idempotent and never fails — a partially filled record comes
// back with the most consistent state derivable from what is there.
func Normalize(b models.Booking, now time.Time) models.Booking {
	b.Subtotal = b.Pricing.Subtotal
	b.Gratuity = b.Pricing.Gratuity
	b.DistanceFee = b.Pricing.DistanceFee
	b.Total = b.Pricing.Total
	if b.Deposit < 0 {
		b.Deposit = 0
	}
	b.Balance = b.Total - b.Deposit

	committed := b.ProposalStatus == models.ProposalAccepted || b.DepositPaid

	switch {
	case b.Cancelled:
		b.Status = models.StatusCancelled
	case datePassed(b.Date, now) && committed:
		b.Status = models.StatusCompleted
	case committed:
		b.Status = models.StatusConfirmed
	default:
		b.Status = models.StatusPending
	}

	switch {
	case b.Cancelled || datePassed(b.Date, now):
		b.ServiceStatus = models.ServiceClosedOut
	case sameDay(b.Date, now):
		b.ServiceStatus = models.ServiceInService
	default:
		b.ServiceStatus = models.ServiceUpcoming
	}

	return b
}

func datePassed(date string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

func sameDay(date string, now time.Time) bool {
	return date == now.Format("2006-01-02")
}
