package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/vportella/agora/internal/config"
	"github.com/vportella/agora/internal/database"
	"github.com/vportella/agora/internal/recommend"
	postgresrepo "github.com/vportella/agora/internal/repository/postgres"
	"github.com/vportella/agora/internal/sentiment"
	"github.com/vportella/agora/internal/service"
	"github.com/vportella/agora/internal/transport/http/handlers"
	"github.com/vportella/agora/internal/transport/http/middleware"
	"github.com/vportella/agora/internal/transport/ws"
)

const (
	idleTimeout    = time.Minute
	readTimeout    = 5 * time.Second
	writeTimeout   = 10 * time.Second
	shutdownPeriod = 30 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	jobRepo := postgresrepo.NewJobRepo(pool)
	projectRepo := postgresrepo.NewProjectRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	reviewRepo := postgresrepo.NewReviewRepo(pool)
	contentRepo := postgresrepo.NewContentRepo(pool)

	// Token signing
	signer := service.NewJWTSigner(cfg.JWTSecret, cfg.TokenTTL)

	// WebSocket fan-out
	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Companion services
	sentimentClient := sentiment.NewClient(cfg.SentimentURL)
	recommenderClient := recommend.NewClient(cfg.RecommenderURL)

	// Services
	authService := service.NewAuthService(userRepo, signer)
	jobService := service.NewJobService(jobRepo, userRepo)
	projectService := service.NewProjectService(projectRepo)
	postService := service.NewPostService(postRepo, userRepo, sentimentClient, notifier, logger)
	reviewService := service.NewReviewService(reviewRepo)
	contentService := service.NewContentService(contentRepo, userRepo, recommenderClient, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	jobHandler := handlers.NewJobHandler(jobService, logger)
	projectHandler := handlers.NewProjectHandler(projectService, logger)
	postHandler := handlers.NewPostHandler(postService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	contentHandler := handlers.NewContentHandler(contentService, logger)

	auth := middleware.Auth(signer)

	mux := chi.NewRouter()
	mux.Use(middleware.TraceID)
	mux.Use(middleware.LogAccess(logger))
	mux.Use(middleware.RecoverPanic(logger))
	mux.Use(cors.AllowAll().Handler)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status": "ok"}`))
		})

		// Public
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/jobs", jobHandler.List)
		r.Get("/projects", projectHandler.List)
		r.Get("/bids/{projectId}", projectHandler.Bids)
		r.Get("/posts", postHandler.List)
		r.Get("/reviews", reviewHandler.List)
		r.Get("/content", contentHandler.List)
		r.Get("/ws", ws.ServeWS(hub, signer))

		// Protected
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/jobs/recommended", jobHandler.Recommended)
			r.Post("/jobs", jobHandler.Create)
			r.Delete("/jobs/{id}", jobHandler.Delete)
			r.Post("/applications", jobHandler.Apply)
			r.Get("/applications/{jobId}", jobHandler.Applications)

			r.Post("/projects", projectHandler.Create)
			r.Delete("/projects/{id}", projectHandler.Delete)
			r.Post("/bids", projectHandler.PlaceBid)

			r.Post("/posts", postHandler.Create)
			r.Post("/likes", postHandler.Like)
			r.Post("/follows", postHandler.Follow)
			r.Get("/users", postHandler.Users)
			r.Get("/analytics", postHandler.Analytics)

			r.Post("/reviews", reviewHandler.Create)
			r.Put("/reviews/{id}", reviewHandler.Update)
			r.Delete("/reviews/{id}", reviewHandler.Delete)

			r.Get("/content/recommended", contentHandler.Recommended)
			r.Post("/watchlist", contentHandler.Watch)
			r.Get("/watchlist", contentHandler.Watchlist)
			r.Delete("/watchlist/{contentId}", contentHandler.Unwatch)
		})
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.ServerPort),
		Handler:      mux,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		IdleTimeout:  idleTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("stopped server", "addr", srv.Addr)
	return nil
}
