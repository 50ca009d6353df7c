package rules

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"banquet/db"
	"banquet/models"
	"banquet/rdx"
	"banquet/utils"
)

const cacheKey = "rules:current"

// Load returns the single current configuration, installing defaults when
// the collection is empty. Callers get a full value copy; pricing and
// availability calls receive it explicitly so a mid-save never leaks a
// half-updated rules object into a snapshot.
func Load(ctx context.Context) (models.RulesConfiguration, error) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var c models.RulesConfiguration
		if json.Unmarshal([]byte(cached), &c) == nil {
			return c, nil
		}
	}

	var c models.RulesConfiguration
	err := db.RulesCollection.FindOne(ctx, bson.M{"id": "current"}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		c = Defaults()
		c.UpdatedAt = time.Now()
		_, _ = db.RulesCollection.InsertOne(ctx, c)
	} else if err != nil {
		return models.RulesConfiguration{}, err
	}

	if data, err := json.Marshal(c); err == nil {
		if err := rdx.SetWithExpiry(cacheKey, string(data), 5*time.Minute); err != nil {
			log.Printf("rules cache write failed: %v", err)
		}
	}
	return c, nil
}

func GetRules(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Load(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"rules": c})
}

// SaveRules validates and upserts the configuration as a whole document.
// A rejected save leaves the stored configuration untouched.
func SaveRules(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var c models.RulesConfiguration
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := Validate(c); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c.ID = "current"
	c.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.RulesCollection.UpdateOne(ctx,
		bson.M{"id": "current"},
		bson.M{"$set": c},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxDel(cacheKey); err != nil {
		log.Printf("rules cache invalidation failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "rules": c})
}
