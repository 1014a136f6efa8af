package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sogrinha/docs"
	"sogrinha/internal/config"
	handlers "sogrinha/internal/http/handler"
	"sogrinha/internal/http/middleware"
)

const (
	bodyLimit       = 64 << 20
	shutdownTimeout = 10 * time.Second
)

// NewHTTP builds the fiber app exposing c.
func NewHTTP(c *Components, log *zap.Logger, secret []byte) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "sogrinha",
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})

	prom, err := middleware.NewPrometheusMiddleware(c.Registry)
	if err != nil {
		return nil, err
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:           c.DB,
		Bridge:       c.Bridge,
		Store:        c.Store,
		BridgeSecret: secret,
		Records:      c.Records,
		Contracts:    c.Contracts,
		Documents:    c.Documents,
	})

	return app, nil
}

// Serve runs the bridge server until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) error {
	c, err := Build(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	secret, err := BridgeSecret(cfg)
	if err != nil {
		return err
	}
	if err := PublishToken(cfg.TokenFile(), secret); err != nil {
		return err
	}

	app, err := NewHTTP(c, log, secret)
	if err != nil {
		return err
	}

	docs.SwaggerInfo.Version = cfg.Version

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening",
			zap.String("addr", cfg.ListenAddr()),
			zap.String("token_file", cfg.TokenFile()),
			zap.String("attachments_backend", cfg.Attachments.Backend),
		)
		errCh <- app.Listen(cfg.ListenAddr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutdown")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
