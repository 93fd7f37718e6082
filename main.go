// @title EduLift Backend API
// @version 1.0
// @description Backend server for the EduLift career guidance and talent assessment platform.

// @contact.name API Support
// @contact.email support@edulift.io

// @license.name MIT

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"edulift_backend/internal/app"
	"edulift_backend/internal/config"
	"edulift_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
