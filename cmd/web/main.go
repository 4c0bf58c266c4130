package main

import (
	"log"

	"vahub_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment or config file covers it.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
