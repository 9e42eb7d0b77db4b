// Command harmonizer runs the HTTP service: analyze_bassline,
// realize_satb, generate_ai_music, and health, per spec.md §8.
package main

import (
	"log"
	"time"

	"harmonizer/api"
	"harmonizer/config"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if dsn := cfg.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			Environment:      cfg.Environment,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != "production",
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	router := api.SetupRouter(cfg)

	log.Printf("starting harmonizer on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("failed to start server:", err)
	}
}
