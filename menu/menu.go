package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"banquet/db"
	"banquet/models"
	"banquet/utils"
)

func CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Name == "" || item.Category == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	item.ItemID = uuid.NewString()
	item.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.MenuCollection.InsertOne(ctx, item); err != nil {
		http.Error(w, "db insert failed", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"item": item})
}

func ListItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	if r.URL.Query().Get("available") == "true" {
		filter["available"] = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cur, err := db.MenuCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var items []models.MenuItem
	for cur.Next(ctx) {
		var item models.MenuItem
		if cur.Decode(&item) == nil {
			items = append(items, item)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": items})
}

func UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	item.ItemID = ps.ByName("id")
	res, err := db.MenuCollection.UpdateOne(ctx,
		bson.M{"itemId": item.ItemID},
		bson.M{"$set": bson.M{
			"name":          item.Name,
			"category":      item.Category,
			"pricePerGuest": item.PricePerGuest,
			"description":   item.Description,
			"available":     item.Available,
		}},
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "item": item})
}

func DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.MenuCollection.DeleteOne(ctx, bson.M{"itemId": ps.ByName("id")}); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
