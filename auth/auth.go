package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"banquet/db"
	"banquet/globals"
	"banquet/middleware"
	"banquet/models"
	"banquet/rdx"
	"banquet/utils"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func verifyPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// generateTokens produces an access and refresh token pair, storing the
// hashed refresh token in Redis keyed by userID:jti.
func generateTokens(user models.User) (accessToken, refreshToken string, err error) {
	jti := uuid.NewString()
	now := time.Now()

	claims := middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	at := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err = at.SignedString(globals.JwtSecret)
	if err != nil {
		return "", "", err
	}

	rtRaw := make([]byte, 32)
	if _, err = rand.Read(rtRaw); err != nil {
		return "", "", err
	}
	refreshToken = hex.EncodeToString(rtRaw)
	hashedRT := sha256.Sum256([]byte(refreshToken))

	rtKey := fmt.Sprintf("refresh:%s:%s", user.UserID, jti)
	if err = rdx.SetWithExpiry(rtKey, hex.EncodeToString(hashedRT[:]), refreshTokenTTL); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func validateRefreshToken(userID, token string) (jti string, err error) {
	hash := sha256.Sum256([]byte(token))
	want := hex.EncodeToString(hash[:])

	iter := rdx.Conn.Scan(globals.Ctx, 0, fmt.Sprintf("refresh:%s:*", userID), 100).Iterator()
	for iter.Next(globals.Ctx) {
		key := iter.Val()
		stored, _ := rdx.RdxGet(key)
		if stored == want {
			parts := strings.Split(key, ":")
			if len(parts) == 3 {
				return parts[2], nil
			}
		}
	}
	return "", fmt.Errorf("refresh token not found or expired")
}

// ---------- Handlers ----------

func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Missing username or password", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&existing)
	if err == nil {
		http.Error(w, "User already exists", http.StatusConflict)
		return
	} else if err != mongo.ErrNoDocuments {
		log.Printf("register: db error: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		http.Error(w, "Could not hash password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         []string{"staff"},
		CreatedAt:    time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "userId": user.UserID})
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&user); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := verifyPassword(user.PasswordHash, req.Password); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	access, refresh, err := generateTokens(user)
	if err != nil {
		log.Printf("login: token generation: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":        access,
		"refreshToken": refresh,
		"userId":       user.UserID,
		"username":     user.Username,
	})
}

func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	jti, err := validateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userId": req.UserID}).Decode(&user); err != nil {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	// Rotate: drop the old refresh entry before issuing a new pair.
	_ = rdx.RdxDel(fmt.Sprintf("refresh:%s:%s", req.UserID, jti))

	access, refresh, err := generateTokens(user)
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":        access,
		"refreshToken": refresh,
	})
}

func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	_ = rdx.RdxDel(fmt.Sprintf("refresh:%s:%s", claims.UserID, claims.ID))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}
