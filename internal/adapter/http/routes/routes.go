package routes

import (
	"log"
	"strconv"
	"time"

	_ "retailcore/docs" // This will be auto-generated
	"retailcore/internal/adapter/http/handlers"
	"retailcore/internal/adapter/persistence/repository"
	"retailcore/internal/infrastructure/config"
	"retailcore/internal/infrastructure/database"
	"retailcore/internal/usecase"
	"retailcore/internal/usecase/cache"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.LoadOrEnv()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	scoreRepo := repository.NewScoreDynamoRepository(ddb)
	orderRepo := repository.NewOrderHistoryDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	catRuleRepo := repository.NewCategoryRuleDynamoRepository(ddb)
	stockRuleRepo := repository.NewStockRuleDynamoRepository(ddb)
	profileRepo := repository.NewAssortmentProfileDynamoRepository(ddb)
	draftRepo := repository.NewDraftDynamoRepository(ddb)
	cartRepo := repository.NewCartDynamoRepository(ddb)

	stockRuleCache := cache.NewStockRuleCache(stockRuleRepo)

	autoPickUseCase := usecase.NewAutoPickUseCase(
		catalogRepo, scoreRepo, orderRepo, userRepo, catRuleRepo,
		stockRuleCache, profileRepo, draftRepo, cartRepo,
		usecase.AutoPickOptions{
			LookbackDays:  cfg.AutoPick.LookbackDays,
			UnseenShare:   cfg.AutoPick.UnseenShare,
			DefaultTarget: cfg.AutoPick.DefaultTarget,
			DraftTTL:      time.Duration(cfg.AutoPick.DraftTTLMinutes) * time.Minute,
		},
	)
	rulesUseCase := usecase.NewRulesUseCase(catRuleRepo, stockRuleRepo, stockRuleCache)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	autoPickHandler := handlers.NewAutoPickHandler(autoPickUseCase)
	rulesHandler := handlers.NewRulesHandler(rulesUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAutoPickRoutes(v1, autoPickHandler, catalogHandler)
	addAdminRoutes(v1, rulesHandler, profileHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
}
