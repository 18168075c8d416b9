package main

import (
	"gemvault_backend/internal/app"
	"gemvault_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("Application failed", "error", err)
	}
}
