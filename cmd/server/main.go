package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"docuvault/internal/config"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
	"docuvault/internal/handler"
	"docuvault/internal/middleware"
	"docuvault/internal/ocr/providers/mock"
	"docuvault/internal/repository/localstore"
	"docuvault/internal/repository/memory"
	"docuvault/internal/repository/postgres"
	"docuvault/internal/seed"
	serviceDocstore "docuvault/internal/service/docstore"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logOutput := io.Writer(os.Stdout)
	if logDir := os.Getenv("LOG_DIR"); logDir != "" {
		logFile, err := config.SetupLogFile(logDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"store", cfg.StoreDriver,
	)

	ctx := context.Background()

	// Select the storage backend
	var folderRepo docstoreRepo.FolderRepository
	var docRepo docstoreRepo.DocumentRepository

	switch cfg.StoreDriver {
	case "postgres":
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		logger.Info("database connected", "table_prefix", cfg.TablePrefix)

		repoConfig := &postgres.RepositoryConfig{Pool: pool, Tables: tables, Logger: logger}
		folderRepo = postgres.NewFolderRepository(repoConfig)
		docRepo = postgres.NewDocumentRepository(repoConfig)

	case "memory":
		store := memory.NewStore()
		folderRepo = store.Folders()
		docRepo = store.Documents()

		// The in-memory store starts empty every run, so seed it up front
		fixture := seed.Default()
		if cfg.SeedFixture != "" {
			loaded, err := seed.LoadFile(cfg.SeedFixture)
			if err != nil {
				log.Fatalf("Failed to load seed fixture: %v", err)
			}
			fixture = loaded
		}
		if err := seed.Apply(ctx, folderRepo, docRepo, fixture, logger); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}

	default:
		log.Fatalf("Unknown store driver %q (want memory or postgres)", cfg.StoreDriver)
	}

	// Saved-connection settings live in a local YAML file either way
	connStore, err := localstore.NewConnectionStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open connection store: %v", err)
	}

	// OCR engine
	engine := mock.NewEngine(cfg.OCRFailureRate, time.Duration(cfg.OCRDelayMillis)*time.Millisecond)

	// Services
	folderService := serviceDocstore.NewFolderService(folderRepo, docRepo, logger)
	docService := serviceDocstore.NewDocumentService(folderRepo, docRepo, logger)
	treeService := serviceDocstore.NewTreeService(folderRepo, docRepo, logger)
	statsService := serviceDocstore.NewStatsService(folderRepo, docRepo, logger)
	ocrService := serviceDocstore.NewOCRService(docRepo, engine, logger)

	// Handlers
	folderHandler := handler.NewFolderHandler(folderService, logger)
	docHandler := handler.NewDocumentHandler(docService, logger)
	treeHandler := handler.NewTreeHandler(treeService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)
	ocrHandler := handler.NewOCRHandler(ocrService, logger)
	connHandler := handler.NewConnectionHandler(connStore, logger)

	logger.Info("services initialized", "ocr_engine", engine.Name())

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Tree routes
	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)
	mux.HandleFunc("GET /api/folders/{id}/tree", treeHandler.GetSubtree)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/stats", statsHandler.GetAllFolderStats) // Must come before {id} route
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)
	mux.HandleFunc("GET /api/folders/{id}/documents", docHandler.ListDocumentsInFolder)
	mux.HandleFunc("GET /api/folders/{id}/stats", statsHandler.GetFolderStats)

	// Stats routes
	mux.HandleFunc("GET /api/stats", statsHandler.GetGlobalStats)

	// Document routes
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/search", docHandler.SearchDocuments) // Must come before {id} route
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)

	// OCR routes
	mux.HandleFunc("POST /api/documents/{id}/ocr", ocrHandler.ProcessDocument)
	mux.HandleFunc("PATCH /api/documents/{id}/ocr/fields/{field_id}", ocrHandler.UpdateField)

	// Connection settings routes
	mux.HandleFunc("GET /api/connections", connHandler.ListConnections)
	mux.HandleFunc("POST /api/connections", connHandler.SaveConnection)
	mux.HandleFunc("GET /api/connections/active", connHandler.GetActiveConnection) // Must come before {id} route
	mux.HandleFunc("GET /api/connections/{id}", connHandler.GetConnection)
	mux.HandleFunc("DELETE /api/connections/{id}", connHandler.DeleteConnection)
	mux.HandleFunc("PUT /api/connections/{id}/activate", connHandler.ActivateConnection)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestLog(logger)(root)

	// CORS outermost so OPTIONS pre-flight never reaches the app
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
