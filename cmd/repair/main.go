package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/drussmiller/sparta-media-go/internal/config"
	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/repair"
	"github.com/drussmiller/sparta-media-go/internal/storage"
)

// Offline batch pass over the thumbnail namespaces. Safe to interrupt and
// re-run; every fix is idempotent.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	strg := initStorage(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanner := repair.NewScanner(strg, repair.Options{
		Roots:   cfg.RepairRoots,
		Workers: cfg.RepairWorkers,
	})

	summary, err := scanner.Scan(ctx)
	if err != nil {
		log.Printf("⚠️  Scan interrupted: %v", err)
	}
	log.Printf("✅  Repair scan finished: checked=%d fixed=%d skipped=%d errors=%d",
		summary.Checked, summary.Fixed, summary.Skipped, summary.Errors)
	if summary.Errors > 0 {
		os.Exit(1)
	}
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioBucket,
		cfg.MinioUseSSL,
	)
	if err != nil {
		log.Fatalf("❌  Failed to initialize MinIO client: %v", err)
	}
	return strg
}
