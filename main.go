package main

import (
	"log"
	"net/http"
	"os"

	"go-blog-api/config"
	"go-blog-api/handlers"
	"go-blog-api/middleware"
	"go-blog-api/repositories"
	"go-blog-api/services"
	"go-blog-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	postRepo := repositories.NewPostRepository(db, tagRepo)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)

	// Initialize handlers
	validator := validation.New()
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, validator)
	healthHandler := handlers.NewHealthHandler(userRepo)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health checks
	router.GET("/health/db", healthHandler.DB)
	router.GET("/health/env", healthHandler.Env)

	// Auth routes (public)
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/github", authHandler.GithubLogin)
		auth.GET("/github/callback", authHandler.GithubCallback)
	}

	// Public post routes
	router.GET("/posts", postHandler.ListPosts)
	router.GET("/posts/:id", postHandler.GetPost)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/profile", authHandler.GetProfile)
		protected.POST("/posts", postHandler.CreatePost)
		protected.PATCH("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
