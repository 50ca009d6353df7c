package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banquet/db"
	"banquet/mailer"
	"banquet/models"
	"banquet/pricing"
	"banquet/rules"
	"banquet/utils"
	"banquet/workflow"
)

func genID() string {
	return utils.GenerateRandomDigitString(22)
}

// reprice rebuilds the booking's financial snapshot from its event fields
// and the given rules, then runs the workflow normalizer over the result.
func reprice(b models.Booking, cfg models.RulesConfiguration, now time.Time) models.Booking {
	in := models.EventFinancialInput{
		Adults:               b.Adults,
		Children:             b.Children,
		Slot:                 b.Slot,
		Date:                 b.Date,
		DistanceMiles:        b.DistanceMiles,
		PremiumAddOnPerGuest: b.PremiumAddOnPerGuest,
	}
	b.Pricing = pricing.Compute(in, cfg, now)
	return workflow.Normalize(b, now)
}

// persist normalizes, replaces the stored booking, and pushes the new state
// to any websocket subscribers watching it. Routing every write through here
// is what keeps status fields impossible to hand-set into a stale state.
func persist(ctx context.Context, b models.Booking) (models.Booking, error) {
	b = workflow.Normalize(b, time.Now())
	b.UpdatedAt = time.Now().Unix()
	_, err := db.BookingsCollection.ReplaceOne(ctx, bson.M{"bookingId": b.BookingID}, b)
	if err != nil {
		return b, err
	}
	if data, err := json.Marshal(utils.M{"booking": b}); err == nil {
		broadcast(b.BookingID, data)
	}
	return b, nil
}

func fetch(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": id}).Decode(&b)
	return b, err
}

// ---------- Handlers ----------

func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var b models.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if b.ClientName == "" || b.Date == "" || b.Time == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := rules.Load(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	b.BookingID = genID()
	b.CreatedAt = now.Unix()
	b.UpdatedAt = now.Unix()
	b.Cancelled = false
	b.ProposalStatus = models.ProposalNone
	b.DepositPaid = false
	b = reprice(b, cfg, now)

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	mailer.Enqueue(ctx, mailer.Message{
		To:      b.ClientEmail,
		Subject: "We received your catering request",
		Body: fmt.Sprintf("Hi %s,\n\nYour request for %s on %s at %s is in. Estimated total: $%.2f.\n",
			b.ClientName, b.EventType, b.Date, b.Time, b.Total),
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "booking": b})
}

func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["date"] = date
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	for cur.Next(ctx) {
		var b models.Booking
		if cur.Decode(&b) == nil {
			bookings = append(bookings, b)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": bookings})
}

func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": b})
}

// UpdateBooking changes event parameters (guests, date, distance, add-ons)
// and recomputes the snapshot under the current rules.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch struct {
		EventType            *string  `json:"eventType"`
		Slot                 *string  `json:"slot"`
		Date                 *string  `json:"date"`
		Time                 *string  `json:"time"`
		Adults               *int     `json:"adults"`
		Children             *int     `json:"children"`
		Location             *string  `json:"location"`
		DistanceMiles        *float64 `json:"distanceMiles"`
		PremiumAddOnPerGuest *float64 `json:"premiumAddOnPerGuest"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	if patch.EventType != nil {
		b.EventType = *patch.EventType
	}
	if patch.Slot != nil {
		b.Slot = *patch.Slot
	}
	if patch.Date != nil {
		b.Date = *patch.Date
	}
	if patch.Time != nil {
		b.Time = *patch.Time
	}
	if patch.Adults != nil {
		b.Adults = *patch.Adults
	}
	if patch.Children != nil {
		b.Children = *patch.Children
	}
	if patch.Location != nil {
		b.Location = *patch.Location
	}
	if patch.DistanceMiles != nil {
		b.DistanceMiles = *patch.DistanceMiles
	}
	if patch.PremiumAddOnPerGuest != nil {
		b.PremiumAddOnPerGuest = *patch.PremiumAddOnPerGuest
	}

	cfg, err := rules.Load(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	b = reprice(b, cfg, time.Now())

	b, err = persist(ctx, b)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": b})
}

// RecordDeposit marks the deposit paid; the normalizer promotes the booking.
func RecordDeposit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	b.Deposit = body.Amount
	b.DepositPaid = true
	b, err = persist(ctx, b)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": b})
}

// CancelBooking is idempotent: cancelling twice is still cancelled.
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	b.Cancelled = true
	b, err = persist(ctx, b)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	mailer.Enqueue(ctx, mailer.Message{
		To:      b.ClientEmail,
		Subject: "Your catering booking was cancelled",
		Body:    fmt.Sprintf("Hi %s,\n\nYour booking for %s has been cancelled.\n", b.ClientName, b.Date),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": b})
}
