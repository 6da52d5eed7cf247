package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"salascrea/internal/api"
	"salascrea/internal/auth"
	"salascrea/internal/client"
	"salascrea/internal/config"
	"salascrea/internal/engine"
	"salascrea/internal/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	revsClient := client.NewRevsClient(cfg.RevsAPIURL, logger)
	sender := service.NewSenderService(cfg.Notify, logger)
	eng := engine.New(revsClient, sender, logger)

	reservationHandler := api.NewReservationHandler(eng, logger)
	specialtyHandler := api.NewSpecialtyHandler()

	r := mux.NewRouter()
	r.Use(api.RequestIDMiddleware)

	// Public endpoints
	r.HandleFunc("/api/specialties", specialtyHandler.ListSpecialties).Methods("GET")

	// Session-protected endpoints
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(auth.SessionMiddleware(cfg.JWTSecret, logger))
	protected.HandleFunc("/rooms", reservationHandler.ListRooms).Methods("GET")
	protected.HandleFunc("/reservations", reservationHandler.ListReservations).Methods("GET")
	protected.HandleFunc("/reservations", reservationHandler.CreateReservation).Methods("POST")

	// Keep availability warm between user fetches. Needs a service
	// account token for the upstream store.
	if cfg.ServiceToken != "" {
		c := cron.New()
		serviceSession := auth.SessionFromToken(cfg.ServiceToken, cfg.JWTSecret, logger)
		if _, err := c.AddFunc(cfg.RefreshSchedule, func() {
			eng.Refresh(context.Background(), serviceSession)
		}); err != nil {
			logger.Fatal("Invalid refresh schedule", zap.Error(err))
		}
		c.Start()
	} else {
		logger.Info("SERVICE_TOKEN not set, background refresh disabled")
	}

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Request-ID"}),
	)

	logger.Info("Server running", zap.String("port", cfg.Port))
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler(handlers.LoggingHandler(os.Stdout, r))))
}
