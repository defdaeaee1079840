package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"TODOS_COLLECTION",
		"CATEGORIES_COLLECTION",
		"SETTINGS_COLLECTION",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize MongoDB connection
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	// Initialize repositories
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	todosRepo := repository.GetTodosRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)

	// Settings cache is optional: a missing Redis only disables caching
	var settingsCache usecase.SettingsCache
	cacheCfg := config.LoadCacheConfig()
	if cacheCfg.Enabled {
		cache, err := services.NewSettingsCache(cacheCfg.RedisURL, cacheCfg.SettingsTTL)
		if err != nil {
			log.Printf("Settings cache disabled: %v", err)
		} else {
			services.GlobalSettingsCache = cache
			settingsCache = cache
		}
	}

	// Initialize services
	categoryService := usecase.NewCategoryService(categoriesRepo, todosRepo)
	todoService := usecase.NewTodoService(todosRepo, categoriesRepo)
	settingsService := usecase.NewSettingsService(settingsRepo, settingsCache)

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(categoryService)
	todoHandler := handler.NewTodoHandler(todoService, categoryService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	serverCfg := config.LoadServerConfig()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestSizeLimiter(serverCfg.MaxRequestBody))

	// Public endpoints
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// User-scoped endpoints
	api := router.Group("/api")
	api.Use(middleware.UserMiddleware())
	{
		categories := api.Group("/categories")
		{
			categories.GET("/", categoryHandler.GetCategories)
			categories.POST("/", categoryHandler.CreateCategory)
			categories.GET("/colors", categoryHandler.GetAvailableColors)
			categories.PUT("/reorder", categoryHandler.ReorderCategories)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
			categories.POST("/:id/default", categoryHandler.SetDefaultCategory)
		}

		todos := api.Group("/todos")
		{
			todos.GET("/", todoHandler.GetTodos)
			todos.POST("/", todoHandler.CreateTodo)
			todos.DELETE("/", todoHandler.DeleteAllTodos)
			todos.POST("/move", todoHandler.MoveTasks)
			todos.GET("/due", todoHandler.GetDueTasks)
			todos.GET("/stats", todoHandler.GetTodoStats)
			todos.GET("/stats/by-type", todoHandler.GetTodoStatsByType)
			todos.GET("/grouped", todoHandler.GetGroupedTodos)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/", settingsHandler.GetSettings)
			settings.PUT("/", settingsHandler.UpdateSettings)
		}
	}

	return router
}

func main() {
	// Ensure indexes exist before serving
	dbCfg := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbCfg.DatabaseName)); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	router := setupRouter()

	serverAddr := fmt.Sprintf(":%s", config.LoadServerConfig().Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
