package server

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/crossroads/crossroads-api/internal/calculator"
	"github.com/crossroads/crossroads-api/internal/handlers"
	"github.com/crossroads/crossroads-api/internal/logger"
	"github.com/crossroads/crossroads-api/internal/program"
	"github.com/crossroads/crossroads-api/internal/simulation"
)

// Handler Definitions
var (
	simulationHandler *handlers.SimulationHandler
	healthHandler     *handlers.HealthHandler
)

// InitializeHandlers wires the calculator client, program registry, and
// simulation service from the environment.
func InitializeHandlers() {
	calculatorURL := os.Getenv("CALCULATOR_URL")
	if calculatorURL == "" {
		logger.Fatal("CALCULATOR_URL environment variable is required")
	}

	clientOpts := []calculator.PolicyEngineOption{}
	if timeoutSecs := envInt("CALCULATOR_TIMEOUT_SECONDS", 0); timeoutSecs > 0 {
		clientOpts = append(clientOpts, calculator.WithTimeout(time.Duration(timeoutSecs)*time.Second))
	}
	calc := calculator.NewPolicyEngineClient(calculatorURL, logger.Log, clientOpts...)

	programYear := envInt("PROGRAM_YEAR", 2024)
	registry := program.NewForYear(programYear)

	serviceOpts := []simulation.Option{}
	if limit := envInt("SWEEP_MAX_CONCURRENCY", 0); limit > 0 {
		serviceOpts = append(serviceOpts, simulation.WithMaxConcurrency(limit))
	}
	service := simulation.NewService(calc, registry, logger.Log, serviceOpts...)

	simulationHandler = handlers.NewSimulationHandler(service)
	healthHandler = handlers.NewHealthHandler()
}

// SetupRouter configures the gin router with CORS and all routes.
func SetupRouter() *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", simulationHandler.Simulate)
		v1.POST("/cliffs", simulationHandler.Sweep)
		v1.GET("/life-events", simulationHandler.ListEventTypes)
	}

	return router
}

// NewServer builds the HTTP server listening on the configured port.
func NewServer(router *gin.Engine) *http.Server {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	return &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Fatal(name + " must be an integer, got " + raw)
	}
	return v
}
