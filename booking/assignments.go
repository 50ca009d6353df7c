package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"banquet/availability"
	"banquet/db"
	"banquet/models"
	"banquet/pricing"
	"banquet/rules"
	"banquet/utils"
)

// AssignStaff adds a staff member to a booking after checking eligibility
// against their blackout dates, weekly pattern, and hour windows.
func AssignStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		StaffID string `json:"staffId"`
		Role    string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.StaffID == "" {
		http.Error(w, "missing staffId", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var s models.StaffMember
	if err := db.StaffCollection.FindOne(ctx, bson.M{"staffId": body.StaffID}).Decode(&s); err != nil {
		http.Error(w, "staff not found", http.StatusNotFound)
		return
	}

	if !availability.Eligible(s, b.Date, b.Time) {
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"ok":     false,
			"reason": "staff-unavailable",
		})
		return
	}

	for _, a := range b.Assignments {
		if a.StaffID == s.StaffID {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": b})
			return
		}
	}

	role := body.Role
	if role == "" {
		role = s.Role
	}
	b.Assignments = append(b.Assignments, models.StaffAssignment{
		StaffID: s.StaffID,
		Name:    s.Name,
		Role:    role,
	})

	b, err = persist(ctx, b)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": b})
}

func UnassignStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	staffID := ps.ByName("staffId")
	kept := b.Assignments[:0]
	for _, a := range b.Assignments {
		if a.StaffID != staffID {
			kept = append(kept, a)
		}
	}
	b.Assignments = kept

	b, err = persist(ctx, b)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": b})
}

// EligibleStaff lists everyone who may work this booking's date and time,
// along with how many staff the headcount calls for.
func EligibleStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b, err := fetch(ctx, ps.ByName("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	cur, err := db.StaffCollection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var eligible []models.StaffMember
	for cur.Next(ctx) {
		var s models.StaffMember
		if cur.Decode(&s) != nil {
			continue
		}
		if availability.Eligible(s, b.Date, b.Time) {
			eligible = append(eligible, s)
		}
	}

	cfg, err := rules.Load(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"staff":      eligible,
		"staffUnits": pricing.StaffUnits(b.Adults+b.Children, cfg),
	})
}
