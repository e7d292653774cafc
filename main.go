package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bio-page/auth"
	"bio-page/config"
	"bio-page/handler"
	appLogger "bio-page/logger"
	"bio-page/middleware"
	"bio-page/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize logger
	appLogger.Initialize()

	// Load configuration
	cfg := config.MustLoadConfig()
	log.Info().Msg("Configuration loaded successfully")

	// Initialize the record store
	st, err := store.New(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to initialize store")
	}

	// Session secret is generated per process start, so existing sessions
	// do not survive a restart.
	sessions := auth.NewSessionManager(
		cfg.Session.CookieName,
		time.Duration(cfg.Session.LifetimeHours)*time.Hour,
	)

	// Create handler with dependency injection
	bioHandler := handler.NewBioHandler(st, sessions, cfg)
	adminAuth := middleware.NewAdminAuth(sessions)

	// Set up router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	// Public routes
	r.HandleFunc("/", bioHandler.Index).Methods("GET")
	r.HandleFunc("/health", bioHandler.HealthCheck).Methods("GET")
	r.HandleFunc("/admin/login", bioHandler.Login).Methods("GET", "POST")
	r.HandleFunc("/admin/logout", bioHandler.Logout).Methods("GET")

	// Admin routes, all behind the session gate
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Protect)
	admin.HandleFunc("", bioHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/dashboard", bioHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/update/profile", bioHandler.UpdateProfile).Methods("POST")
	admin.HandleFunc("/update/bio", bioHandler.UpdateBio).Methods("POST")
	admin.HandleFunc("/update/socials", bioHandler.UpdateSocials).Methods("POST")
	admin.HandleFunc("/update/second_dev", bioHandler.UpdateSecondDev).Methods("POST")
	admin.HandleFunc("/update/music", bioHandler.UpdateMusic).Methods("POST")
	admin.HandleFunc("/update/password", bioHandler.UpdatePassword).Methods("POST")
	admin.HandleFunc("/update/email", bioHandler.UpdateEmail).Methods("POST")
	admin.HandleFunc("/update/custom_css", bioHandler.UpdateCustomCSS).Methods("POST")
	admin.HandleFunc("/reset", bioHandler.ResetData).Methods("POST")

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", serverAddress).
			Str("scheme", cfg.WebServer.Scheme).
			Str("store", cfg.Store.Path).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped gracefully")
}
