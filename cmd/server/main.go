package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicswipe/internal/cache"
	"civicswipe/internal/config"
	"civicswipe/internal/repository"
	"civicswipe/internal/service"
	"civicswipe/internal/transport/rest"
	"civicswipe/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	scoringCfg := config.DefaultScoringConfig()
	log.Printf("Scoring config: k=%d minQ=%d maxQ=%d", scoringCfg.ShrinkageK, scoringCfg.MinQuestions, scoringCfg.MaxQuestions)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	specRepo := repository.NewSpecRepo(db)
	swipeRepo := repository.NewSwipeRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	ballotRepo := repository.NewBallotRepo(db)

	// Initialize caches
	specCache := cache.NewSpecCache(rdb)
	assessCache := cache.NewAssessmentCache(rdb)
	profileCache := cache.NewProfileCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	specSvc := service.NewSpecService(specRepo, specCache)
	assessSvc := service.NewAssessmentService(specSvc, swipeRepo, profileRepo, assessCache, profileCache, scoringCfg)
	blueprintSvc := service.NewBlueprintService(specSvc, profileRepo, profileCache)
	ballotSvc := service.NewBallotService(ballotRepo, blueprintSvc, scoringCfg)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessSvc.SetBroadcaster(wsHub)
	blueprintSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		SpecService:       specSvc,
		AssessmentService: assessSvc,
		BlueprintService:  blueprintSvc,
		BallotService:     ballotSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/session")
		log.Println("  GET  /v1/spec")
		log.Println("  POST /v1/assessment/swipes")
		log.Println("  GET  /v1/assessment/next")
		log.Println("  POST /v1/assessment/restart")
		log.Println("  GET  /v1/blueprint")
		log.Println("  GET  /v1/blueprint/archetype")
		log.Println("  GET  /v1/elections")
		log.Println("  GET  /v1/ballot/{itemId}/recommendation")
		log.Println("  GET  /v1/ballot/{itemId}/matches")
		log.Println("  WS   /v1/ws/user")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
