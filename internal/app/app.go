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

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/llm"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify/email"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify/slack"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/postgres"
	exportrepo "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/export"
	meetingrepo "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/meeting"
	recordingrepo "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/recording"
	taskrepo "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/task"
	tokenrepo "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
	authpkg "github.com/heartmarshall/meetsum-backend/internal/auth"
	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
	"github.com/heartmarshall/meetsum-backend/internal/service/analysis"
	"github.com/heartmarshall/meetsum-backend/internal/service/auth"
	"github.com/heartmarshall/meetsum-backend/internal/service/export"
	"github.com/heartmarshall/meetsum-backend/internal/service/meeting"
	"github.com/heartmarshall/meetsum-backend/internal/service/notification"
	"github.com/heartmarshall/meetsum-backend/internal/service/recording"
	"github.com/heartmarshall/meetsum-backend/internal/service/task"
	"github.com/heartmarshall/meetsum-backend/internal/service/zoomtoken"
	"github.com/heartmarshall/meetsum-backend/internal/transport/middleware"
	"github.com/heartmarshall/meetsum-backend/internal/transport/rest"
)

// tokenCleanupInterval is how often the server purges expired refresh tokens.
const tokenCleanupInterval = time.Hour

// App holds the wired dependencies shared by the server and CLI commands.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Metrics  *metrics.Metrics
	Users    *userrepo.Repo
	Auth     *auth.Service
	Meetings *meeting.Service

	pool    *pgxpool.Pool
	limiter *middleware.RateLimiter
	handler http.Handler
}

// Run is the server entry point. It initializes the logger, wires the
// services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// New connects to the database and wires every adapter and service.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	a, err := NewWithPool(cfg, logger, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

// NewWithPool wires the application on an existing pool. Close closes the pool.
func NewWithPool(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*App, error) {
	recordingBlobs, err := storage.NewLocal(cfg.Storage.RecordingsDir)
	if err != nil {
		return nil, fmt.Errorf("recording storage: %w", err)
	}
	exportBlobs, err := storage.NewLocal(cfg.Storage.ExportsDir)
	if err != nil {
		return nil, fmt.Errorf("export storage: %w", err)
	}
	mailer, err := email.NewSender(cfg.SMTP, logger)
	if err != nil {
		return nil, fmt.Errorf("smtp: %w", err)
	}

	m := metrics.New()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	meetings := meetingrepo.New(pool)
	recordings := recordingrepo.New(pool)
	tasks := taskrepo.New(pool)
	exports := exportrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	zoomClient := zoom.NewClient(cfg.Zoom, logger)
	zoomOAuth := zoom.NewOAuth(cfg.Zoom, logger)
	zoomTokens := zoomtoken.NewManager(logger, users, zoomOAuth, m, cfg.Zoom)

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	states := authpkg.NewStateSigner(cfg.Auth.JWTSecret, cfg.Auth.OAuthStateTTL)

	authSvc := auth.NewService(logger, users, tokens, jwt, states, zoomOAuth, zoomClient, cfg.Auth)
	analysisSvc := analysis.NewService(logger, meetings, tasks, tx, llm.NewClient(cfg.LLM, logger), m)
	meetingSvc := meeting.NewService(logger, meetings,
		meeting.Files{Index: recordings, Blobs: recordingBlobs},
		meeting.Files{Index: exports, Blobs: exportBlobs},
		zoomClient, zoomTokens, analysisSvc)
	recordingSvc := recording.NewService(logger, meetings, recordings, zoomClient, zoomTokens, recordingBlobs, m, cfg.Import)
	taskSvc := task.NewService(logger, meetings, tasks)
	exportSvc := export.NewService(logger, meetings, tasks, exports, exportBlobs, m)
	shareSvc := notification.NewService(logger, meetings, tasks, mailer, slack.NewClient(cfg.Slack, logger), m, cfg.Server.PublicURL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Meeting:   rest.NewMeetingHandler(meetingSvc, analysisSvc, cfg.Upload.MaxSize, logger),
		Recording: rest.NewRecordingHandler(recordingSvc, logger),
		Task:      rest.NewTaskHandler(taskSvc, logger),
		Export:    rest.NewExportHandler(exportSvc, shareSvc, logger),
		Metrics:   m.Handler(),
	}, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Observe(logger, m),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc),
	)(router)

	return &App{
		Config:   cfg,
		Log:      logger,
		Metrics:  m,
		Users:    users,
		Auth:     authSvc,
		Meetings: meetingSvc,
		pool:     pool,
		limiter:  limiter,
		handler:  handler,
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases the database pool and background workers.
func (a *App) Close() {
	a.limiter.Stop()
	a.pool.Close()
}

// Serve listens on the configured address until ctx is cancelled, then
// drains in-flight requests within the shutdown timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.Log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()
		a.Log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		a.cleanupTokens(gctx)
		return nil
	})
	return g.Wait()
}

func (a *App) cleanupTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := a.Auth.CleanupExpiredTokens(ctx)
			if err != nil {
				a.Log.WarnContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
				continue
			}
			a.Log.InfoContext(ctx, "expired refresh tokens removed", slog.Int("count", n))
		}
	}
}
