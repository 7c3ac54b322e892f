package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/catalog-gateway/api/openapi"
	"github.com/donaldgifford/catalog-gateway/internal/api/handlers"
	"github.com/donaldgifford/catalog-gateway/internal/api/middleware"
	"github.com/donaldgifford/catalog-gateway/internal/catalog"
	"github.com/donaldgifford/catalog-gateway/internal/config"
	"github.com/donaldgifford/catalog-gateway/internal/telemetry"
	"github.com/donaldgifford/catalog-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	cat := catalog.New(catalogConfig(cfg.Catalog),
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithLogger(log),
	)
	if err := cat.Ready(ctx); err != nil {
		// Browsing works without the download credentials; report what is missing.
		log.Warn("catalog configuration incomplete", "error", err)
	}

	e := newServer(cat, cfg, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(e, "catalog-gateway"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware, the Huma API, and
// every route mounted.
func newServer(svc *catalog.Catalog, cfg *config.Config, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	health := handlers.NewHealthHandler(svc)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Catalog Gateway", Version)
	api := humaecho.New(e, humaCfg)
	openapi.RegisterRoutes(e, humaCfg.Info.Title, humaCfg.OpenAPIPath+".json")

	cookies := handlers.CookieOptions{Secure: cfg.Cookies.Secure}

	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(svc, cookies))
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(svc))
	handlers.RegisterDownloadRoutes(api, e, handlers.NewDownloadHandler(svc, cookies, log))

	return e
}

func catalogConfig(c config.CatalogConfig) catalog.Config {
	return catalog.Config{
		BaseURLs: catalog.BaseURLs{
			TokenURL:         c.BaseURLs.TokenURL,
			IndexViewURL:     c.BaseURLs.IndexViewURL,
			DetailViewURL:    c.BaseURLs.DetailViewURL,
			BrandProductsURL: c.BaseURLs.BrandProductsURL,
			BrandURL:         c.BaseURLs.BrandURL,
			BinaryURL:        c.BaseURLs.BinaryURL,
			AuthURL:          c.BaseURLs.AuthURL,
			RedirectURI:      c.BaseURLs.RedirectURI,
		},
		Credentials: catalog.Credentials{
			ClientID:      c.ClientInfo.ClientID,
			ClientSecret:  c.ClientInfo.ClientSecret,
			ClientID2:     c.ClientInfo.ClientID2,
			ClientSecret2: c.ClientInfo.ClientSecret2,
		},
	}
}
