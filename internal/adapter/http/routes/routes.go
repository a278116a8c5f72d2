package routes

import (
	"log"
	_ "metalmetrics/docs" // This will be auto-generated
	"metalmetrics/internal/adapter/http/handlers"
	repository2 "metalmetrics/internal/adapter/persistence/repository"
	"metalmetrics/internal/infrastructure/ai"
	"metalmetrics/internal/infrastructure/database"
	"metalmetrics/internal/usecase"
	"metalmetrics/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	actualsRepo := repository2.NewActualsDynamoRepository(ddb)
	settingsRepo := repository2.NewTenantSettingsDynamoRepository(ddb)

	var quoteGenerator interfaces.IQuoteGenerator
	generator, err := ai.NewClaudeQuoteGenerator()
	if err != nil {
		log.Printf("AI quote generator not configured: %v", err)
	} else {
		quoteGenerator = generator
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, estimateRepo, actualsRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, jobRepo, settingsRepo, quoteGenerator)
	actualsUseCase := usecase.NewActualsUseCase(actualsRepo, jobRepo, settingsRepo)
	profitabilityUseCase := usecase.NewProfitabilityUseCase(jobRepo, estimateRepo, actualsRepo, settingsRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(jobRepo, estimateRepo, actualsRepo, settingsRepo)
	settingsUseCase := usecase.NewTenantSettingsUseCase(settingsRepo)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	actualsHandler := handlers.NewActualsHandler(actualsUseCase)
	profitabilityHandler := handlers.NewProfitabilityHandler(profitabilityUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, estimateHandler, actualsHandler, profitabilityHandler)
	addDashboardRoutes(v1, dashboardHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
