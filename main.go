package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/melochey/storefront-api/notify"
	"github.com/melochey/storefront-api/routes"
	"github.com/melochey/storefront-api/store"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	log.Info("starting storefront API")

	// Reference data: catalog, categories and promo table. Loaded once,
	// immutable for the life of the process.
	ref, err := store.LoadReferenceData(os.Getenv("CATALOG_FILE"))
	if err != nil {
		log.Fatalf("failed to load reference data: %v", err)
	}

	catalog, err := store.NewCatalog(ref.Products, ref.Categories)
	if err != nil {
		log.Fatalf("invalid catalog: %v", err)
	}
	log.Infof("catalog loaded: %d products, %d categories, %d promo codes",
		len(ref.Products), len(ref.Categories), len(ref.PromoCodes))

	sessions := store.NewSessions(ref.PromoCodes)
	notifier := notify.NewZapNotifier(logger)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, catalog, sessions, notifier)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("server running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
