package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-meals-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-meals-api/internal/config"
	"github.com/franciscosanchezn/gin-meals-api/internal/controllers"
	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/franciscosanchezn/gin-meals-api/internal/metrics"
	"github.com/franciscosanchezn/gin-meals-api/internal/middleware"
	"github.com/franciscosanchezn/gin-meals-api/internal/nutrition"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
)

var (
	catalogService services.CatalogService
	configuration  *config.Config
)

// @title Meals API
// @version 1.0
// @description A catalog of dishes enriched with nutrition data and meals composed of three dishes
// @host localhost:8000
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	applyLogLevel(configuration.LogLevel)

	// Initialize the nutrition gateway and the catalog
	gateway := setupNutritionGateway(configuration)
	catalogService = services.NewCatalogService(gateway)
	if configuration.SeedDishes {
		checkPanicErr(catalogService.Seed())
	}

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// applyLogLevel overrides the environment based level of every package logger when LOG_LEVEL is valid
func applyLogLevel(value string) {
	level, err := log.ParseLevel(value)
	if err != nil {
		log.WithError(err).Warnf("Ignoring invalid LOG_LEVEL %q", value)
		return
	}
	log.SetLevel(level)
	repository.SetLogLevel(level)
	services.SetLogLevel(level)
	controllers.SetLogLevel(level)
	middleware.SetLogLevel(level)
	nutrition.SetLogLevel(level)
	database.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupNutritionGateway builds the upstream client and wraps it with the lookup cache.
// The cache is backed by a database only when NUTRITION_CACHE_DRIVER is set.
func setupNutritionGateway(conf *config.Config) repository.NutritionGateway {
	client := nutrition.NewClient(nutrition.Config{
		BaseURL:       conf.NutritionAPIURL,
		APIKey:        conf.NutritionAPIKey,
		Timeout:       conf.NutritionTimeout,
		RateLimit:     conf.NutritionRateLimit,
		RejectUnknown: conf.NutritionRejectUnknown,
	})

	if !conf.Cache.Enabled() {
		log.Info("Nutrition cache database disabled, collapsing concurrent lookups only")
		return nutrition.NewCachedGateway(client, nil)
	}

	db, err := database.InitDatabase(conf.Cache)
	checkPanicErr(err)
	store, err := nutrition.NewGormStore(db)
	checkPanicErr(err)
	log.WithField("driver", conf.Cache.Driver).Info("Nutrition cache database ready")
	return nutrition.NewCachedGateway(client, store)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(), middleware.Recovery())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	router.GET("/", rootHandler)
	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	controllers.RegisterRoutes(router, catalogService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// rootHandler answers the liveness probe used by existing clients
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-meals-api",
	})
}
