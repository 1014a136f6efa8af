// Package app wires configuration into the running components shared by the server and the CLI.
package app

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
	"sogrinha/internal/config"
	"sogrinha/internal/database"
	"sogrinha/internal/database/migration"
	"sogrinha/internal/document"
	"sogrinha/internal/logging"
	"sogrinha/internal/repository/postgres"
	"sogrinha/internal/service"
	"sogrinha/internal/storage"
)

// Components are the collaborators built from one configuration.
// Records, Contracts and Documents are nil when no database is configured.
type Components struct {
	DB        *sql.DB
	Store     attachment.Store
	Records   service.RecordService
	Contracts service.ContractService
	Documents service.DocumentService
	Bridge    *bridge.Bridge
	Registry  *prometheus.Registry

	closers []func() error
}

// Build connects the configured backends and assembles the bridge around them.
// A nil picker exports to the configured export directory.
func Build(ctx context.Context, cfg *config.AppConfig, log *zap.Logger, picker bridge.Picker) (*Components, error) {
	c := &Components{Registry: prometheus.NewRegistry()}
	c.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.closers = append(c.closers, db.Close)

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			_ = c.Close()
			return nil, err
		}

		repo := postgres.NewRecordsPostgres(db)
		c.Records = service.NewRecordService(repo)
		c.Contracts = service.NewContractService(repo, cfg.Location)
		c.Documents = service.NewDocumentService(repo, document.NewGenerator(cfg.Location))
	} else {
		logging.Component(log, "app").Info("database_disabled")
	}

	store, err := newStore(cfg)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Store = store

	metrics, err := bridge.NewMetrics(c.Registry)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	if picker == nil {
		picker = bridge.DirPicker{Dir: cfg.Attachments.ExportDir}
	}
	opts := bridge.Options{
		Store:        c.Store,
		Picker:       picker,
		ExportDir:    cfg.Attachments.ExportDir,
		AllowedTypes: cfg.Attachments.AllowedTypes,
		Version:      cfg.Version,
		Logger:       logging.Component(log, "bridge"),
		Metrics:      metrics,
		Documents:    c.Documents,
	}
	c.Bridge = bridge.New(opts)

	return c, nil
}

// Close releases the backends in reverse order of construction.
func (c *Components) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func newStore(cfg *config.AppConfig) (attachment.Store, error) {
	switch cfg.Attachments.Backend {
	case "", "fs":
		return attachment.NewFileStore(cfg.DataDir), nil
	case "minio":
		objs, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		return attachment.NewObjectStore(objs), nil
	default:
		return nil, fmt.Errorf("unknown attachments backend %q", cfg.Attachments.Backend)
	}
}

// BridgeSecret returns the configured signing secret, or a random one for this process.
func BridgeSecret(cfg *config.AppConfig) ([]byte, error) {
	if cfg.BridgeSecret != "" {
		return []byte(cfg.BridgeSecret), nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate bridge secret: %w", err)
	}
	return secret, nil
}

// PublishToken writes an unscoped, non-expiring token to path for local clients. The file is owner-only.
func PublishToken(path string, secret []byte) error {
	token, err := bridge.IssueToken(secret, "", 0)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
