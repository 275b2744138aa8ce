package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"inkwell/internal/assets"
	"inkwell/internal/config"
	"inkwell/internal/handler"
	"inkwell/internal/middleware"
	"inkwell/internal/repository/postgres"
	"inkwell/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration, with an optional config.yaml overlay
	cfg := config.Load()
	if err := cfg.ApplyFile("config.yaml"); err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	// Bring the schema up to date
	if err := postgres.ApplyMigrations(ctx, pool, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("database ready")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	docRepo := postgres.NewDocumentRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	docService := service.NewDocumentService(docRepo, folderRepo, logger)
	folderService := service.NewFolderService(folderRepo, docRepo, txManager, logger)

	// Asset storage backend
	var assetStore assets.Store
	switch cfg.AssetBackend {
	case "s3":
		assetStore, err = assets.NewMinioStore(ctx, assets.MinioConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		})
	default:
		assetStore, err = assets.NewDiskStore(cfg.AssetDir)
	}
	if err != nil {
		log.Fatalf("Failed to setup asset storage: %v", err)
	}
	assetService := assets.NewService(assetStore, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	shareHandler := handler.NewShareHandler(docService, logger)
	assetHandler := handler.NewAssetHandler(assetService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// Document routes
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)
	mux.HandleFunc("POST /api/documents/{id}/move", docHandler.MoveDocument)

	// Public share route
	mux.HandleFunc("GET /api/share/{token}", shareHandler.ResolveShare)

	// Asset routes
	mux.HandleFunc("POST /api/assets", assetHandler.UploadAsset)
	mux.HandleFunc("GET /assets/{name}", assetHandler.ServeAsset)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server, shutting down gracefully on SIGINT/SIGTERM
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
