package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/breaker"
	"github.com/drussmiller/sparta-media-go/internal/cache"
	"github.com/drussmiller/sparta-media-go/internal/config"
	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/extractor"
	"github.com/drussmiller/sparta-media-go/internal/handler/api"
	"github.com/drussmiller/sparta-media-go/internal/logger"
	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/repository/mariadb"
	"github.com/drussmiller/sparta-media-go/internal/storage"
	"github.com/drussmiller/sparta-media-go/internal/task"
	mediaSvc "github.com/drussmiller/sparta-media-go/internal/usecase/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)

	assetRepo := mariadb.NewAssetRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled")
	}

	// one gateway per process; every serving request shares its state
	gw := breaker.New(strg, breaker.Options{
		FailureThreshold: cfg.BreakerThreshold,
		Cooldown:         cfg.BreakerCooldown,
		CallTimeout:      cfg.BreakerCallTimeout,
	})

	registrarSvc := mediaSvc.NewUploadRegistrar(assetRepo, db.NewUUID)
	r.Post("/uploads", api.RegisterUploadHandler(registrarSvc))

	finaliserSvc := mediaSvc.NewUploadFinaliser(assetRepo, strg, dispatcher)
	r.With(api.WithID()).
		Post("/uploads/finalise/{id}", api.FinaliseUploadHandler(finaliserSvc))

	fileServerSvc := mediaSvc.NewFileServer(assetRepo, gw, ca)
	r.Get("/files/*", api.ServeFileHandler(fileServerSvc))

	repairSvc := mediaSvc.NewRepairRunner(strg)
	r.With(api.WithJWTAuth(cfg.JWTSecret)).
		Post("/admin/repair", api.RepairHandler(repairSvc))

	// synchronous generation endpoint for setups running without a worker
	generatorSvc := mediaSvc.NewThumbnailGenerator(assetRepo, strg, newExtractor(cfg), ca, pipelineOptions(cfg))
	r.With(api.WithID()).
		Post("/admin/thumbnails/{id}", api.GenerateThumbnailHandler(generatorSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioBucket,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	return strg
}

func newExtractor(cfg *config.Settings) port.FrameExtractor {
	return extractor.NewFFmpegExtractor(extractor.Options{
		BinPath:        cfg.FFmpegPath,
		TargetWidth:    cfg.ThumbWidth,
		MinSizeBytes:   cfg.ThumbMinSizeBytes,
		AttemptTimeout: cfg.ExtractTimeout,
	})
}

func pipelineOptions(cfg *config.Settings) mediaSvc.PipelineOptions {
	return mediaSvc.PipelineOptions{
		Offsets:         cfg.ThumbOffsets,
		WriteLegacyKeys: cfg.WriteLegacyKeys,
		PosterWidth:     cfg.ThumbWidth,
		PosterHeight:    cfg.ThumbWidth,
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
