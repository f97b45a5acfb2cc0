package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	_ "habits/docs"
	habits "habits/internal"
	"habits/internal/ai"
	"habits/internal/auth"
	"habits/internal/config"
	"habits/internal/store"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           Habits API
// @version         1.0
// @description     Daily habit tracking with streaks, success rates and charts
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "path to the .env file")
	port := flag.String("port", "", "HTTP server port (e.g. ':8080'), overrides HABITS_PORT")
	flag.Parse()

	log.SetTimeFormat(time.Stamp)
	log.SetReportCaller(true)

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if *port != "" {
		cfg.Port = *port
	}

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatal("Failed to open store", "error", err)
	}

	var completer habits.Completer
	aiClient, err := ai.NewClient(cfg.AIURL, cfg.AIKey, cfg.AIModel)
	if err != nil {
		log.Warn("AI client not available, insights disabled", "error", err)
	} else {
		completer = aiClient
	}

	server := habits.NewServer(st, auth.NewIssuer(cfg.JWTSecret), cfg.Location, completer)

	mux := http.NewServeMux()
	mux.Handle("/", server.SetupRoutes())
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	log.Info("Server starting on", "port", cfg.Port, "data", cfg.DataFile, "timezone", cfg.Location)
	log.Fatal(http.ListenAndServe(cfg.Port, mux))
}
