package main

import (
	"log"

	"github.com/robklaiss/foteam/internal/app"
	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
)

func main() {
	config := configs.LoadConfig()
	photoLogger, err := logger.NewPhotoLogger(config.Log.Level, config.Log.Debug)
	if err != nil {
		log.Fatalf("[DEBUG] [Photo-Service] Failed to create logger: %v", err)
	}
	defer photoLogger.Sync()
	application := app.NewPhotoApplication(config, photoLogger)
	if err := application.Start(); err != nil {
		photoLogger.Error("Photo-Service stopped with error: " + err.Error())
	}
}
