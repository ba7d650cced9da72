package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/Priyank-2005/opencric/internal/config"
	"github.com/Priyank-2005/opencric/internal/consumer"
	"github.com/Priyank-2005/opencric/internal/engine"
	"github.com/Priyank-2005/opencric/internal/handlers"
	"github.com/Priyank-2005/opencric/internal/hub"
	"github.com/Priyank-2005/opencric/internal/notify"
	"github.com/Priyank-2005/opencric/internal/store"
)

func main() {
	fmt.Println("=== OpenCric API v0 ===")

	// Load configuration
	cfg := config.Load()

	// Connect to Postgres
	dbClient, err := store.NewClient(cfg.Postgres.DSN)
	if err != nil {
		fmt.Printf("❌ Failed to connect to Postgres: %v\n", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	fmt.Println("✓ Connected to Postgres")

	ctx := context.Background()
	if err := dbClient.EnsureSchema(ctx); err != nil {
		fmt.Printf("❌ Failed to ensure schema: %v\n", err)
		os.Exit(1)
	}

	// Connect to Redis
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		fmt.Printf("❌ Failed to parse Redis URL: %v\n", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Redis")

	// Fan-out pipeline: engine publishes, consumer feeds the hub
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broadcastHub := hub.NewHub()
	go broadcastHub.Run(runCtx)

	scoreConsumer := consumer.NewPubSubConsumer(redisClient, broadcastHub)
	consumerErrors := make(chan error, 1)
	go func() {
		consumerErrors <- scoreConsumer.Start(runCtx)
	}()

	// Scoring engine
	publisher := notify.NewPublisher(redisClient)
	summaryCache := notify.NewSummaryCache(redisClient)
	scoringEngine := engine.New(dbClient, publisher, summaryCache)

	// Handlers
	handler := handlers.NewHandler(dbClient, dbClient, scoringEngine, summaryCache)
	wsHandler := handlers.NewWSHandler(broadcastHub, runCtx)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)
	r.Get("/ws", wsHandler.HandleWebSocket)
	r.Get("/ws/metrics", wsHandler.HandleHubMetrics)

	r.Route("/api", func(r chi.Router) {
		// Matches and derived views
		r.Get("/matches", handler.ListMatches)
		r.Get("/matches/{matchID}", handler.GetMatch)
		r.Get("/matches/{matchID}/score", handler.GetScore)
		r.Get("/matches/{matchID}/scorecard", handler.GetScorecard)
		r.Get("/matches/{matchID}/runrate", handler.GetRunRate)

		// Search and content
		r.Get("/search", handler.Search)
		r.Get("/news", handler.GetNews)
		r.Get("/series", handler.GetSeries)
		r.Get("/rankings", handler.GetRankings)

		// Admin ingest
		r.Route("/admin", func(r chi.Router) {
			r.Post("/create-match", handler.CreateMatches)
			r.Post("/toss", handler.RecordToss)
			r.Post("/change-innings", handler.ChangeInnings)
			r.Post("/score", handler.AppendDelivery)
			r.Post("/outcome", handler.SetOutcome)
			r.Post("/rankings", handler.UpsertRanking)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ OpenCric API listening on %s\n", cfg.Server.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case err := <-consumerErrors:
		if err != nil {
			fmt.Printf("❌ Consumer error: %v\n", err)
			os.Exit(1)
		}

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)
		cancel()

		// Give outstanding requests a deadline for completion
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("⚠️  Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("❌ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Shutdown complete")
}
