package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/willcheung/robinhood-export-function/internal/app"
	"github.com/willcheung/robinhood-export-function/internal/config"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
