package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/fetcher"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/llm"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/postgres"
	recordrepo "github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/postgres/record"
	stylerepo "github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/postgres/style"
	topicrepo "github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/postgres/topic"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/config"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/analysis"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/rewrite"
	stylesvc "github.com/Fun-Fox/xhs-ai-note-styler/internal/service/style"
	topicsvc "github.com/Fun-Fox/xhs-ai-note-styler/internal/service/topic"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/transport/middleware"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AIRequestsPerMinute, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(logger, cfg, pool, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// newHandler builds the full HTTP handler: repositories, services, REST
// handlers and the middleware chain.
func newHandler(logger *slog.Logger, cfg *config.Config, pool postgres.Pool, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	topics := topicrepo.New(pool)
	styles := stylerepo.New(pool)
	records := recordrepo.New(pool)

	noteFetcher := fetcher.New(logger, cfg.Fetcher, &http.Client{})
	ai := llm.New(logger, cfg.LLM)

	topicService := topicsvc.NewService(logger, topics, styles, txm)
	styleService := stylesvc.NewService(logger, styles, txm)
	analysisService := analysis.NewService(logger, noteFetcher, ai, styles, cfg.Analysis)
	rewriteService := rewrite.NewService(logger, styles, records, ai, cfg.LLM.GenerateTimeout)

	router := rest.NewRouter(rest.Handlers{
		Topic:   rest.NewTopicHandler(topicService, logger),
		Style:   rest.NewStyleHandler(styleService, analysisService, logger),
		Rewrite: rest.NewRewriteHandler(rewriteService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}, limiter.Middleware())

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)
}

// serve runs srv until ctx is done, then drains in-flight requests within
// shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("http server stopped")

	return nil
}
