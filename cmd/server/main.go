package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/iahmedraza4/translation-agent/internal/config"
	"github.com/iahmedraza4/translation-agent/internal/handlers"
	"github.com/iahmedraza4/translation-agent/internal/server"
	"github.com/iahmedraza4/translation-agent/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrMissingAPIKey) {
		log.Fatal("Please set the GEMINI_API_KEY environment variable.")
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	model := services.NewChatModel(cfg.APIKey, cfg.BaseURL, cfg.Model)
	translator := services.NewTranslator(
		services.NewTranslatorAgent(cfg.TargetLang),
		services.RunConfig{Model: model, Timeout: cfg.RequestTimeout},
	)

	app := server.New(cfg, handlers.NewTranslateHandler(translator, model.Name(), services.LanguageName(cfg.TargetLang)))

	log.Printf("Model: %s (%s)", cfg.Model, cfg.BaseURL)
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
