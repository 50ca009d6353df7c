package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection      *mongo.Collection
	BookingsCollection  *mongo.Collection
	StaffCollection     *mongo.Collection
	RulesCollection     *mongo.Collection
	ProposalsCollection *mongo.Collection
	MenuCollection      *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("cateringdb").Collection("users")
	BookingsCollection = Client.Database("cateringdb").Collection("bookings")
	StaffCollection = Client.Database("cateringdb").Collection("staff")
	RulesCollection = Client.Database("cateringdb").Collection("rules")
	ProposalsCollection = Client.Database("cateringdb").Collection("proposals")
	MenuCollection = Client.Database("cateringdb").Collection("menu")
}
