package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-videotube/internal/config"
	"github.com/sbilibin2017/gw-videotube/internal/handlers"
	"github.com/sbilibin2017/gw-videotube/internal/jwt"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/middlewares"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
	"github.com/sbilibin2017/gw-videotube/internal/services"
	"github.com/sbilibin2017/gw-videotube/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-videotube API
// @version 1.0.0
// @description Video sharing backend: users, videos, comments, likes, subscriptions, playlists and channel dashboards
// @host localhost:8000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// app holds everything the router needs.
type app struct {
	cfg       *config.Config
	tokens    *jwt.JWT
	users     *repositories.UserRepository
	auth      *services.AuthService
	account   *services.UserService
	videos    *services.VideoService
	comments  *services.CommentService
	likes     *services.LikeService
	subs      *services.SubscriptionService
	playlists *services.PlaylistService
	dashboard *services.DashboardService
}

// run wires the document store, cache, event stream and object store,
// serves HTTP and shuts down gracefully when ctx ends or a signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to MongoDB
	logger.Log.Infow("Connecting to MongoDB", "database", cfg.Mongo.Database)
	mongoClient, db, err := repositories.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("MongoDB index setup failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var writer services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	// Object storage
	store, err := newObjectStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	uploader, err := storage.NewUploader(
		storage.NewBreakerStorage(store, storage.DefaultBreakerSettings("object-store")),
		cfg.Upload.TempDir,
	)
	if err != nil {
		return err
	}

	tokens := jwt.New(
		jwt.WithAccessSecret(cfg.JWT.AccessSecret),
		jwt.WithAccessExpiration(cfg.JWT.AccessExpiry),
		jwt.WithRefreshSecret(cfg.JWT.RefreshSecret),
		jwt.WithRefreshExpiration(cfg.JWT.RefreshExpiry),
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	videoRepo := repositories.NewVideoRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)
	playlistRepo := repositories.NewPlaylistRepository(db)
	statsCache := repositories.NewChannelStatsCacheRepository(rdb, cfg.Redis.StatsTTL)

	// Initialize services
	events := services.NewEventPublisher(writer)
	a := &app{
		cfg:       cfg,
		tokens:    tokens,
		users:     userRepo,
		auth:      services.NewAuthService(userRepo, tokens, uploader, events),
		account:   services.NewUserService(userRepo, uploader),
		videos:    services.NewVideoService(videoRepo, userRepo, uploader, statsCache),
		comments:  services.NewCommentService(commentRepo, videoRepo, events),
		likes:     services.NewLikeService(likeRepo, videoRepo, commentRepo, statsCache, events),
		subs:      services.NewSubscriptionService(subRepo, userRepo, statsCache, events),
		playlists: services.NewPlaylistService(playlistRepo, videoRepo),
		dashboard: services.NewDashboardService(videoRepo, subRepo, likeRepo, statsCache),
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.ListenAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

func newObjectStore(ctx context.Context, cfg config.StorageConfig) (storage.ObjectStore, error) {
	switch cfg.Backend {
	case "minio":
		return storage.NewMinioStorage(ctx, cfg)
	default:
		return storage.NewS3Storage(ctx, cfg)
	}
}

// newRouter mounts every endpoint under /api/v1.
func newRouter(a *app) http.Handler {
	cookies := handlers.CookieOptions{
		Secure:        a.cfg.App.CookieSecure,
		AccessMaxAge:  a.cfg.JWT.AccessExpiry,
		RefreshMaxAge: a.cfg.JWT.RefreshExpiry,
	}
	maxBytes := a.cfg.Upload.MaxBytes

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cfg.App.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", a.cfg.ListenAddr())),
	))

	authGate := middlewares.AuthMiddleware(a.tokens, a.users)
	limiter := httprate.Limit(a.cfg.Limits.Requests, a.cfg.Limits.Window, httprate.WithKeyFuncs(httprate.KeyByIP))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", handlers.NewHealthcheckHandler())

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(limiter)
				r.Post("/register", handlers.NewRegisterHandler(a.auth, maxBytes))
				r.Post("/login", handlers.NewLoginHandler(a.auth, cookies))
				r.Post("/refresh-token", handlers.NewRefreshTokenHandler(a.auth, a.tokens, cookies))
			})

			r.Group(func(r chi.Router) {
				r.Use(authGate)
				r.Post("/logout", handlers.NewLogoutHandler(a.auth, cookies))
				r.Post("/change-password", handlers.NewChangePasswordHandler(a.auth))
				r.Get("/current-user", handlers.NewCurrentUserHandler())
				r.Patch("/update-account", handlers.NewUpdateAccountHandler(a.account))
				r.Patch("/update-avatar", handlers.NewUpdateAvatarHandler(a.account, maxBytes))
				r.Patch("/update-cover-image", handlers.NewUpdateCoverImageHandler(a.account, maxBytes))
				r.Get("/c/{userName}", handlers.NewChannelProfileHandler(a.account))
				r.Get("/watch-history", handlers.NewWatchHistoryHandler(a.account))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authGate)

			r.Route("/videos", func(r chi.Router) {
				r.Get("/", handlers.NewListVideosHandler(a.videos))
				r.Post("/", handlers.NewPublishVideoHandler(a.videos, maxBytes))
				r.Get("/{videoId}", handlers.NewGetVideoHandler(a.videos))
				r.Patch("/{videoId}", handlers.NewUpdateVideoHandler(a.videos))
				r.Delete("/{videoId}", handlers.NewDeleteVideoHandler(a.videos))
				r.Patch("/toggle/publish/{videoId}", handlers.NewTogglePublishHandler(a.videos))
			})

			r.Route("/comments", func(r chi.Router) {
				r.Get("/getVideoComments/{videoId}", handlers.NewVideoCommentsHandler(a.comments))
				r.Post("/addComment/{videoId}", handlers.NewAddCommentHandler(a.comments))
				r.Put("/updateComment/{commentId}", handlers.NewUpdateCommentHandler(a.comments))
				r.Delete("/deleteComment/{commentId}", handlers.NewDeleteCommentHandler(a.comments))
			})

			r.Route("/likes", func(r chi.Router) {
				r.Post("/toggleLike/v/{videoId}", handlers.NewToggleVideoLikeHandler(a.likes))
				r.Post("/toggleLike/c/{commentId}", handlers.NewToggleCommentLikeHandler(a.likes))
				r.Post("/toggleLike/t/{tweetId}", handlers.NewToggleTweetLikeHandler(a.likes))
				r.Get("/Liked/videos", handlers.NewLikedVideosHandler(a.likes))
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/toggleSubscription/{channelId}", handlers.NewToggleSubscriptionHandler(a.subs))
				r.Get("/getSubscriptions/{channelId}", handlers.NewSubscribersHandler(a.subs))
				r.Get("/subscribedChannels", handlers.NewSubscribedChannelsHandler(a.subs))
			})

			r.Route("/playlists", func(r chi.Router) {
				r.Post("/", handlers.NewCreatePlaylistHandler(a.playlists))
				r.Get("/user/{userId}", handlers.NewUserPlaylistsHandler(a.playlists))
				r.Get("/{playlistId}", handlers.NewGetPlaylistHandler(a.playlists))
				r.Patch("/{playlistId}", handlers.NewUpdatePlaylistHandler(a.playlists))
				r.Delete("/{playlistId}", handlers.NewDeletePlaylistHandler(a.playlists))
				r.Patch("/add/{videoId}/{playlistId}", handlers.NewAddToPlaylistHandler(a.playlists))
				r.Patch("/remove/{videoId}/{playlistId}", handlers.NewRemoveFromPlaylistHandler(a.playlists))
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats/{userId}", handlers.NewChannelStatsHandler(a.dashboard))
				r.Get("/channel-videos/{userId}", handlers.NewChannelVideosHandler(a.dashboard))
			})
		})
	})

	return r
}
