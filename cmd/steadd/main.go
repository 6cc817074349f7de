package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/sitestead/sitestead/internal/steadd/api"
	"github.com/sitestead/sitestead/internal/steadd/config"
	"github.com/sitestead/sitestead/internal/steadd/db"
	"github.com/sitestead/sitestead/internal/steadd/docs"
	"github.com/sitestead/sitestead/internal/steadd/marketplace"
	"github.com/sitestead/sitestead/internal/steadd/registry"
	"github.com/sitestead/sitestead/internal/steadd/store"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	log.WithFields(logrus.Fields{
		"version": version,
		"commit":  commit,
		"built":   date,
	}).Info("steadd starting")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Build the app catalog: builtin apps plus the optional manifest.
	// Any catalog error here is fatal; the process must not start with
	// an invalid registry.
	builder, err := registry.Builtin()
	if err != nil {
		log.Fatalf("Invalid builtin catalog: %v", err)
	}
	if cfg.AppsManifest != "" {
		if err := builder.LoadManifest(cfg.AppsManifest); err != nil {
			log.Fatalf("Invalid catalog manifest: %v", err)
		}
	}
	reg, err := builder.Build()
	if err != nil {
		log.Fatalf("Invalid catalog: %v", err)
	}
	log.WithFields(logrus.Fields{
		"apps":  len(reg.ListAll()),
		"items": len(reg.Items()),
	}).Info("catalog loaded")

	// Ensure database directory exists
	if cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	log.WithField("path", cfg.DBPath).Info("database initialized")

	// Optional docs store
	var docStore docs.Store
	if cfg.DocsS3Bucket != "" {
		docStore, err = docs.NewS3Store(context.Background(), cfg.DocsS3Bucket, cfg.DocsS3Region)
		if err != nil {
			log.Fatalf("Failed to initialize docs store: %v", err)
		}
		log.WithField("bucket", cfg.DocsS3Bucket).Info("docs store initialized")
	}

	server := api.NewServer(cfg, api.Deps{
		Registry: reg,
		Ledger:   marketplace.NewLedger(reg, store.NewInstallStore(database.DB), cfg.PlatformVersion, log),
		Features: store.NewFeatureStore(database.DB),
		Docs:     docStore,
		Log:      log,
	})

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
