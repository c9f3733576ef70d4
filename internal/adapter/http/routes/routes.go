package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "finestra/docs" // This will be auto-generated
	"finestra/internal/adapter/http/handlers"
	"finestra/internal/adapter/http/middleware"
	repository2 "finestra/internal/adapter/persistence/repository"
	"finestra/internal/infrastructure/ai"
	"finestra/internal/infrastructure/database"
	"finestra/internal/infrastructure/identity"
	"finestra/internal/usecase"
	"finestra/internal/usecase/interfaces"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	costRepo := repository2.NewCostItemDynamoRepository(ddb)
	revenueRepo := repository2.NewRevenueItemDynamoRepository(ddb)
	fixedCostRepo := repository2.NewFixedCostDynamoRepository(ddb)
	categoryRepo := repository2.NewCostCategoryDynamoRepository(ddb)

	var explanationGateway interfaces.IExplanationGateway
	groqGateway, err := ai.NewGroqGateway(os.Getenv("GROQ_API_KEY"))
	if err != nil {
		log.Printf("Groq gateway not configured: %v", err)
	} else {
		explanationGateway = groqGateway
	}

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	costUseCase := usecase.NewCostItemUseCase(costRepo, projectRepo)
	revenueUseCase := usecase.NewRevenueItemUseCase(revenueRepo, projectRepo)
	fixedCostUseCase := usecase.NewFixedCostUseCase(fixedCostRepo)
	categoryUseCase := usecase.NewCostCategoryUseCase(categoryRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(projectRepo, costRepo, revenueRepo)
	deviationUseCase := usecase.NewDeviationUseCase(projectRepo, costRepo, explanationGateway)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	costHandler := handlers.NewCostItemHandler(costUseCase)
	revenueHandler := handlers.NewRevenueItemHandler(revenueUseCase)
	fixedCostHandler := handlers.NewFixedCostHandler(fixedCostUseCase)
	categoryHandler := handlers.NewCostCategoryHandler(categoryUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	deviationHandler := handlers.NewDeviationHandler(deviationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authenticated := router.Group("/v1")
	authenticated.Use(middleware.FirebaseAuth(authClient()))
	addFinanceRoutes(authenticated, projectHandler, costHandler, revenueHandler, fixedCostHandler, categoryHandler, dashboardHandler, deviationHandler)
}

// authClient resolves the Firebase Auth client. With AUTH_MOCK set the
// middleware trusts the X-User-ID header instead, for local development
// without Firebase credentials.
func authClient() *auth.Client {
	if isAuthMockEnabled() {
		log.Printf("[auth][firebase] mock mode enabled, trusting X-User-ID")
		return nil
	}

	client, err := identity.NewFirebaseAuthClient(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize Firebase auth: %v", err)
	}
	return client
}

func isAuthMockEnabled() bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv("AUTH_MOCK")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-User-ID"},
		AllowCredentials: false,
	}))
}
