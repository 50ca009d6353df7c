package proposal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banquet/db"
	"banquet/mailer"
	"banquet/models"
	"banquet/utils"
	"banquet/workflow"
)

func publicBase() string {
	if u := os.Getenv("PUBLIC_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080"
}

// CreateProposal issues a single-use token for a booking and mails the
// customer a link to view and accept the frozen terms.
func CreateProposal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		BookingID string   `json:"bookingId"`
		MenuItems []string `json:"menuItems"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.BookingID == "" {
		http.Error(w, "missing bookingId", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": body.BookingID}).Decode(&b); err != nil {
		http.Error(w, "booking not found", http.StatusNotFound)
		return
	}

	t := models.ProposalToken{
		Token:     uuid.NewString(),
		BookingID: b.BookingID,
		Status:    models.ProposalPending,
		Terms:     TermsFor(b, body.MenuItems),
		CreatedAt: time.Now().Unix(),
	}
	if _, err := db.ProposalsCollection.InsertOne(ctx, t); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	b.ProposalStatus = models.ProposalPending
	b = workflow.Normalize(b, time.Now())
	b.UpdatedAt = time.Now().Unix()
	if _, err := db.BookingsCollection.ReplaceOne(ctx, bson.M{"bookingId": b.BookingID}, b); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	link := fmt.Sprintf("%s/api/proposals/%s", publicBase(), t.Token)
	mailer.Enqueue(ctx, mailer.Message{
		To:      b.ClientEmail,
		Subject: "Your catering proposal is ready",
		Body: fmt.Sprintf("Hi %s,\n\nYour proposal for %s is ready: %s\nTotal: $%.2f\n",
			b.ClientName, b.Date, link, t.Terms.Pricing.Total),
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "proposal": t, "link": link})
}

// ViewProposal is public: the token itself is the credential.
func ViewProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var t models.ProposalToken
	if err := db.ProposalsCollection.FindOne(ctx, bson.M{"token": ps.ByName("token")}).Decode(&t); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"proposal": t})
}

// AcceptProposal transitions pending -> accepted exactly once. The update is
// conditional on the stored status so concurrent accepts cannot both win;
// the loser observes the accepted document and reports alreadyAccepted.
func AcceptProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	token := ps.ByName("token")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	res := db.ProposalsCollection.FindOneAndUpdate(ctx,
		bson.M{"token": token, "status": models.ProposalPending},
		bson.M{"$set": bson.M{"status": models.ProposalAccepted, "acceptedAt": now.Unix()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var t models.ProposalToken
	err := res.Decode(&t)
	if err == mongo.ErrNoDocuments {
		// Either unknown, or already accepted: look again to tell them apart.
		if err := db.ProposalsCollection.FindOne(ctx, bson.M{"token": token}).Decode(&t); err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"ok":              true,
			"alreadyAccepted": true,
			"bookingId":       t.BookingID,
			"acceptedAt":      t.AcceptedAt,
		})
		return
	}
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	// First accept: promote the booking through the normalizer.
	var b models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": t.BookingID}).Decode(&b); err == nil {
		b.ProposalStatus = models.ProposalAccepted
		b = workflow.Normalize(b, now)
		b.UpdatedAt = now.Unix()
		_, _ = db.BookingsCollection.ReplaceOne(ctx, bson.M{"bookingId": b.BookingID}, b)

		mailer.Enqueue(ctx, mailer.Message{
			To:      b.ClientEmail,
			Subject: "Proposal accepted — see you soon",
			Body:    fmt.Sprintf("Hi %s,\n\nYour event on %s is confirmed.\n", b.ClientName, b.Date),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":              true,
		"alreadyAccepted": false,
		"bookingId":       t.BookingID,
		"acceptedAt":      t.AcceptedAt,
	})
}

// ProposalQR renders the proposal link as a PNG for print materials.
func ProposalQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	token := ps.ByName("token")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.ProposalsCollection.FindOne(ctx, bson.M{"token": token}).Err(); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	link := fmt.Sprintf("%s/api/proposals/%s", publicBase(), token)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
