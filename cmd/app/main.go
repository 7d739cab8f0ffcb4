package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/cmd/fx/auth_fx"
	"github.com/Jonkomane982/student-feedback-app/cmd/fx/course_fx"
	"github.com/Jonkomane982/student-feedback-app/cmd/fx/db_fx"
	"github.com/Jonkomane982/student-feedback-app/cmd/fx/feedback_fx"
	"github.com/Jonkomane982/student-feedback-app/internal/api"
	"github.com/Jonkomane982/student-feedback-app/internal/infra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		feedback_fx.Module,
		course_fx.Module,
		auth_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(InitDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// InitDatabase rebuilds the schema before the server starts taking traffic.
func InitDatabase(db *gorm.DB) {
	if err := infra.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", port)
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
