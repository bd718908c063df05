package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"nsdrink-pos/config"
	"nsdrink-pos/middlewares"
	"nsdrink-pos/routes"
	"nsdrink-pos/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment only")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// connect db
	config.ConnectDatabase(cfg)

	// init router
	r := gin.Default() // Logger & Recovery
	r.Use(middlewares.RequestID())

	// CORS before routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
	}))

	// routes
	routes.RegisterRoutes(r)

	// seed data
	if cfg.Seed {
		seeders.Seed()
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
