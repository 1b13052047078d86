package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"civicswipe/internal/service"
	"civicswipe/internal/transport/rest/handler"
	"civicswipe/internal/transport/rest/middleware"
	"civicswipe/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	SpecService       *service.SpecService
	AssessmentService *service.AssessmentService
	BlueprintService  *service.BlueprintService
	BallotService     *service.BallotService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessHandler := handler.NewAssessmentHandler(c.AssessmentService, c.SpecService)
	blueprintHandler := handler.NewBlueprintHandler(c.BlueprintService)
	ballotHandler := handler.NewBallotHandler(c.BallotService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/session", authHandler.StartSession).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/user", wsHandler.UserWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/spec", assessHandler.GetSpec).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessment/swipes", assessHandler.SubmitSwipe).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessment/next", assessHandler.NextQuestion).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessment/restart", assessHandler.Restart).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/blueprint", blueprintHandler.GetProfile).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/blueprint/archetype", blueprintHandler.GetArchetype).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/blueprint/axes/{axisId}", blueprintHandler.UpdateAxis).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/blueprint/axes/{axisId}/lock", blueprintHandler.LockAxis).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/blueprint/axes/{axisId}/reset", blueprintHandler.ResetAxis).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/blueprint/domains/{domainId}/importance", blueprintHandler.UpdateImportance).Methods("PUT", "OPTIONS")

	userRoutes.HandleFunc("/elections", ballotHandler.ListElections).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/elections/{electionId}/items", ballotHandler.ListItems).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/ballot/{itemId}/recommendation", ballotHandler.GetRecommendation).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/ballot/{itemId}/matches", ballotHandler.GetMatches).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
