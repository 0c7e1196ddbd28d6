package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/F-Mutua/Mindfit/config"
	"github.com/F-Mutua/Mindfit/routes"
	"github.com/F-Mutua/Mindfit/services"
)

const defaultSentimentURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"

func main() {

	log.Println("Starting application...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	client := config.ConnectDB()
	store := services.NewMongoStore(config.Database(client))

	sentimentURL := os.Getenv("HF_API_URL")
	if sentimentURL == "" {
		sentimentURL = defaultSentimentURL
	}
	var classifier services.SentimentClassifier
	if token := os.Getenv("HF_API_TOKEN"); token != "" {
		classifier = services.NewHuggingFaceClassifier(sentimentURL, token)
	} else {
		// Without a token the scorer stays neutral; writes still work.
		log.Println("HF_API_TOKEN not set, sentiment scoring disabled")
	}
	scorer := services.NewSentimentScorer(classifier)

	analytics := services.NewAnalytics(store, config.DefaultEngine())
	logger := services.NewSessionLogger(store, store, scorer)

	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api, routes.Deps{
		Store:     store,
		Analytics: analytics,
		Logger:    logger,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
