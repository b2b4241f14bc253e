package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"planventure/cmd/fx/account_fx"
	"planventure/cmd/fx/controllers_fx"
	"planventure/cmd/fx/db_fx"
	"planventure/cmd/fx/memcache_fx"
	"planventure/cmd/fx/trip_fx"
	"planventure/internal/api/controllers"
	mem "planventure/pkg/memcache"
	"planventure/pkg/middleware"
)

const (
	createTripRateLimit  = 20
	createTripRateWindow = time.Hour
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	healthController *controllers.HealthController,
	limiterStore mem.RateLimiterStore) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, tripController, healthController, limiterStore)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	healthController *controllers.HealthController,
	limiterStore mem.RateLimiterStore) {

	r.GET("/", healthController.Home)
	r.GET("/health", healthController.Health)

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/refresh", authController.Refresh)
	authGroup.POST("/validate-email", authController.ValidateEmail)
	authGroup.POST("/validate-password", authController.ValidatePassword)

	authProtected := authGroup.Group("")
	authProtected.Use(middleware.JWTAuthMiddleware())
	authProtected.GET("/me", authController.Me)
	authProtected.POST("/change-password", authController.ChangePassword)

	tripsGroup := r.Group("/api/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.GET("", tripController.GetTrips)
	tripsGroup.POST("",
		middleware.RateLimitMiddleware(limiterStore, createTripRateLimit, createTripRateWindow),
		tripController.CreateTrip)
	tripsGroup.GET("/stats", tripController.GetTripStats)
	tripsGroup.POST("/generate-itinerary-preview", tripController.PreviewItinerary)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)
	tripsGroup.POST("/:tripId/generate-itinerary", tripController.GenerateItinerary)
}
