package staff

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banquet/availability"
	"banquet/db"
	"banquet/models"
	"banquet/utils"
)

func CreateStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var s models.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if s.Name == "" || s.Role == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	s.StaffID = uuid.NewString()
	s.CreatedAt = time.Now().Unix()
	if s.Weekly == nil {
		// Explicit open week so "available every day" is stored, not implied.
		s.Weekly = models.OpenWeek()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.StaffCollection.InsertOne(ctx, s); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "staff": s})
}

func ListStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = role
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cur, err := db.StaffCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var staff []models.StaffMember
	for cur.Next(ctx) {
		var s models.StaffMember
		if cur.Decode(&s) == nil {
			staff = append(staff, s)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"staff": staff})
}

func GetStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var s models.StaffMember
	if err := db.StaffCollection.FindOne(ctx, bson.M{"staffId": ps.ByName("id")}).Decode(&s); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"staff": s})
}

// UpdateStaff replaces the mutable profile fields, including the weekly
// schedule and blackout dates.
func UpdateStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in models.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var s models.StaffMember
	if err := db.StaffCollection.FindOne(ctx, bson.M{"staffId": ps.ByName("id")}).Decode(&s); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	if in.Name != "" {
		s.Name = in.Name
	}
	if in.Role != "" {
		s.Role = in.Role
	}
	s.Email = in.Email
	s.Phone = in.Phone
	if in.Weekly != nil {
		s.Weekly = in.Weekly
	}
	s.UnavailableDates = in.UnavailableDates

	if _, err := db.StaffCollection.ReplaceOne(ctx, bson.M{"staffId": s.StaffID}, s); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "staff": s})
}

func DeleteStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.StaffCollection.DeleteOne(ctx, bson.M{"staffId": ps.ByName("id")}); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckAvailability answers whether one staff member can work a date/time.
func CheckAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := r.URL.Query().Get("date")
	clock := r.URL.Query().Get("time")
	if date == "" {
		http.Error(w, "missing date", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var s models.StaffMember
	if err := db.StaffCollection.FindOne(ctx, bson.M{"staffId": ps.ByName("id")}).Decode(&s); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"staffId":  s.StaffID,
		"date":     date,
		"time":     clock,
		"eligible": availability.Eligible(s, date, clock),
	})
}
