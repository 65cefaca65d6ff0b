package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"FinFrame/internal/di"
	"FinFrame/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	envFile := flag.String("env-file", ".env", "optional dotenv file")
	flag.Parse()

	// A missing dotenv file is fine; real environment wins either way.
	_ = godotenv.Load(*envFile)

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s bridge=%s client=%s", cfg.Environment, cfg.Bridge.Mode, cfg.Client.BaseURL)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
