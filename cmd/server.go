package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	grpchealth "google.golang.org/grpc/health"

	_ "github.com/actuallyyun/cs50w-project2-commerce/docs"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/config"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/db"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/handlers"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/health"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/jwt"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/middlewares"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/repositories"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 15 * time.Second
)

// run initializes the logger, database, Redis, Kafka and the HTTP and gRPC
// servers, then blocks until a shutdown signal or ctx cancellation.
func run(ctx context.Context, cfg config.Config, migrateOnStart bool) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogEncoding); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel)

	// Migrate and connect to PostgreSQL
	if migrateOnStart {
		if err := db.MigrateUp(cfg.Postgres.DSN()); err != nil {
			return err
		}
	}
	conn, err := db.Open(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer conn.Close()
	logger.Log.Infow("connected to postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	// Kafka is optional; without brokers events are dropped.
	var eventWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		eventWriter = w
		logger.Log.Infow("publishing auction events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.JWT.Exp))

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn)
	listingReadRepo := repositories.NewListingReadRepository(conn, txGetter)
	listingWriteRepo := repositories.NewListingWriteRepository(conn, txGetter)
	bidRepo := repositories.NewBidRepository(conn, txGetter)
	commentRepo := repositories.NewCommentRepository(conn, txGetter)
	watchlistRepo := repositories.NewWatchlistRepository(conn, txGetter)
	denylistRepo := repositories.NewTokenDenylistRepository(rdb)

	// Initialize services
	events := services.NewKafkaEventPublisher(eventWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, denylistRepo)
	listingService := services.NewListingService(listingReadRepo, listingWriteRepo, bidRepo, commentRepo, watchlistRepo, userReadRepo, events)
	biddingService := services.NewBiddingService(listingReadRepo, listingWriteRepo, bidRepo, bidRepo, events)
	watchlistService := services.NewWatchlistService(listingReadRepo, watchlistRepo)
	commentService := services.NewCommentService(listingReadRepo, commentRepo)

	renderer, err := handlers.NewRenderer()
	if err != nil {
		return err
	}

	healthServer := grpchealth.NewServer()
	checker := health.NewChecker(healthServer,
		health.Check{Name: "postgres", Ping: conn.PingContext},
		health.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)

	router := newRouter(routerDeps{
		db:         conn,
		tokens:     tokens,
		denylist:   denylistRepo,
		auth:       authService,
		listings:   listingService,
		bidding:    biddingService,
		watchlist:  watchlistService,
		comments:   commentService,
		renderer:   renderer,
		health:     checker,
		cookie:     handlers.SessionCookie{Secure: cfg.App.CookieSecure, MaxAge: cfg.JWT.Exp},
		swaggerURL: fmt.Sprintf("http://%s/swagger/doc.json", net.JoinHostPort(cfg.App.Host, cfg.App.Port)),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", grpcAddr, err)
	}
	grpcSrv := health.NewGRPCServer(healthServer)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go checker.Watch(ctxShutdown, healthCheckInterval)

	go func() {
		logger.Log.Infow("gRPC health server listening", "addr", grpcAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Infow("shutdown signal received, stopping servers")
	case serveErr = <-errChan:
		logger.Log.Errorw("server stopped unexpectedly", "error", serveErr)
	}

	checker.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	logger.Log.Infow("servers stopped")
	return serveErr
}

// routerDeps carries everything the HTTP routes are built from.
type routerDeps struct {
	db         *sqlx.DB
	tokens     middlewares.Tokener
	denylist   middlewares.RevocationChecker
	auth       *services.AuthService
	listings   *services.ListingService
	bidding    *services.BiddingService
	watchlist  *services.WatchlistService
	comments   *services.CommentService
	renderer   *handlers.Renderer
	health     *health.Checker
	cookie     handlers.SessionCookie
	swaggerURL string
}

func newRouter(d routerDeps) http.Handler {
	rd := d.renderer

	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.SessionMiddleware(d.tokens, d.denylist))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rd.Error(w, r, http.StatusNotFound, "Page not found.")
	})

	// Public routes
	r.Get("/", handlers.NewIndexHandler(d.listings, rd))
	r.Get("/category/{category}", handlers.NewCategoryHandler(d.listings, rd))
	r.Get("/listing/{title}", handlers.NewListingHandler(d.listings, rd))
	r.Get("/register", handlers.NewRegisterPageHandler(rd))
	r.Post("/register", handlers.NewRegisterHandler(d.auth, rd, d.cookie))
	r.Get("/login", handlers.NewLoginPageHandler(rd))
	r.Post("/login", handlers.NewLoginHandler(d.auth, rd, d.cookie))
	r.Get("/logout", handlers.NewLogoutHandler(d.auth, d.cookie))
	r.Post("/logout", handlers.NewLogoutHandler(d.auth, d.cookie))

	r.Get("/healthz", d.health.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	// Routes that need a signed-in user
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth)

		r.Get("/home/{user_id}", handlers.NewHomeHandler(d.listings, rd))
		r.Get("/create_listing", handlers.NewCreateListingPageHandler(rd))
		r.Post("/create_listing", handlers.NewCreateListingHandler(d.listings, rd))

		// One transaction per auction action; the listing row lock taken by
		// bid and close is held until commit.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(d.db))

			r.Post("/bid/{title}", handlers.NewBidHandler(d.bidding, d.listings, rd))
			r.Post("/close/{title}", handlers.NewCloseHandler(d.bidding, rd))
			r.Post("/watchlist/{title}", handlers.NewWatchlistHandler(d.watchlist, d.listings, rd))
			r.Post("/comment/{title}", handlers.NewCommentHandler(d.comments, d.listings, rd))
		})
	})

	return r
}
