package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Domenick1991/farecompare/api"
	"github.com/Domenick1991/farecompare/config"
	"github.com/Domenick1991/farecompare/internal/logging"
	"github.com/Domenick1991/farecompare/internal/service/fares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafkaGo "github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"
)

// MessageSource feeds flights into the index while the server runs.
type MessageSource interface {
	Consume(ctx context.Context, handler func(context.Context, kafkaGo.Message) error) error
}

type Deps struct {
	Fares    fares.FareUseCase
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger

	// Ingest and IngestHandler are optional.
	Ingest        MessageSource
	IngestHandler func(context.Context, kafkaGo.Message) error
}

// Run starts the HTTP server and, when configured, the ingest consumer. It
// blocks until ctx is canceled or one of them fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, deps),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Logger.Info("http server listening", slog.String("address", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if deps.Ingest != nil && deps.IngestHandler != nil {
		g.Go(func() error {
			if err := deps.Ingest.Consume(gctx, deps.IngestHandler); err != nil {
				return fmt.Errorf("ingest consumer: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if deps.Logger != nil {
		router.Use(logging.GinMiddleware(deps.Logger))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "flights": deps.Fares.Len(c.Request.Context())})
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api.NewFareHandler(deps.Fares).Register(router.Group("/api/v1"))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/fares.swagger.json"))))
	}

	return router
}
