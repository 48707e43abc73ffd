package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/fiamanillah/TravelLaneConnectBackend/api/swagger" // swagger docs
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/database"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/handler"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/middleware"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/repository"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/service"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           TravelLaneConnect API
// @version         1.0
// @description     Backend for collecting visa/travel-agency applications, document uploads and payment records.
// @host            localhost:3000
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "travellaneconnect")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db := database.WaitForConnection(dsn)
	log.Println("Connected to PostgreSQL successfully.")

	fileStore := newFileStore()

	// Set up dependencies (Repository -> Service -> Handler)
	applicationRepo := repository.NewApplicationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	txManager := repository.NewTransactionManager(db)

	applicationService := service.NewApplicationService(applicationRepo, fileStore)
	attachmentService := service.NewAttachmentService(applicationRepo, fileStore)
	paymentService := service.NewPaymentService(paymentRepo, applicationRepo, txManager)

	applicationHandler := handler.NewApplicationHandler(applicationService, attachmentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Running")
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	applicationHandler.RegisterRoutes(router.Group(""))
	paymentHandler.RegisterRoutes(router.Group(""))

	port := envOr("PORT", "3000")

	log.Printf("Server is running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// newFileStore selects the remote storage backend from STORAGE_BACKEND:
// "oss" (default) or "ftp".
func newFileStore() storage.FileStore {
	backend := strings.ToLower(envOr("STORAGE_BACKEND", "oss"))
	switch backend {
	case "ftp":
		store, err := storage.NewFTPStoreFromEnv()
		if err != nil {
			log.Fatalf("FTP store initialization failed: %v", err)
		}
		return store
	case "oss":
		store, err := storage.NewOSSStoreFromEnv()
		if err != nil {
			log.Fatalf("OSS store initialization failed: %v", err)
		}
		return store
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want oss or ftp)", backend)
		return nil
	}
}

func allowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{"https://travellaneconnect.com", "http://localhost:5173"}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
