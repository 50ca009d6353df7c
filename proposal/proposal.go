package proposal

import (
	"time"

	"banquet/models"
)

// Accept transitions a token pending -> accepted. The second return reports
// whether the token had already been accepted, in which case the record —
// including its original acceptance timestamp — comes back unchanged.
func Accept(t models.ProposalToken, now time.Time) (models.ProposalToken, bool) {
	if t.Status == models.ProposalAccepted {
		return t, true
	}
	t.Status = models.ProposalAccepted
	t.AcceptedAt = now.Unix()
	return t, false
}

// TermsFor freezes the booking's customer-facing terms at proposal time.
func TermsFor(b models.Booking, menuItems []string) models.ProposalTerms {
	return models.ProposalTerms{
		EventType: b.EventType,
		Date:      b.Date,
		Time:      b.Time,
		Adults:    b.Adults,
		Children:  b.Children,
		Location:  b.Location,
		MenuItems: menuItems,
		Pricing:   b.Pricing,
	}
}
