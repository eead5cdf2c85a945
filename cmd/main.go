package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc/health"

	grpcHealth "github.com/dtroode/socialfeed-server/internal/api/grpc/healthcheck"
	grpcRouter "github.com/dtroode/socialfeed-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/socialfeed-server/internal/api/grpc/server"
	httpcontext "github.com/dtroode/socialfeed-server/internal/api/http/context"
	"github.com/dtroode/socialfeed-server/internal/api/http/cookie"
	"github.com/dtroode/socialfeed-server/internal/api/http/middleware"
	httpRouter "github.com/dtroode/socialfeed-server/internal/api/http/router"
	httpServer "github.com/dtroode/socialfeed-server/internal/api/http/server"
	"github.com/dtroode/socialfeed-server/internal/config"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/metrics"
	"github.com/dtroode/socialfeed-server/internal/model"
	"github.com/dtroode/socialfeed-server/internal/password"
	"github.com/dtroode/socialfeed-server/internal/repository/postgres"
	"github.com/dtroode/socialfeed-server/internal/server"
	"github.com/dtroode/socialfeed-server/internal/service"
	"github.com/dtroode/socialfeed-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.ConnectionOptions{
		MaxConns:        cfg.Database.MaxConns,
		ConnectAttempts: cfg.Database.ConnectAttempts,
		ConnectBackoff:  cfg.Database.ConnectBackoff,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	userRepo := postgres.NewUserRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	postRepo := postgres.NewPostRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	hasher := password.NewBcrypt(cfg.Password.BcryptCost)

	authService := service.NewAuth(userRepo, hasher, tokenManager, collector, logger)
	userService := service.NewUser(userRepo, logger)
	followService := service.NewFollow(userRepo, followRepo, collector, logger)
	postService := service.NewPost(postRepo, collector, logger)
	feedService := service.NewFeed(followRepo, postRepo, logger)

	sameSite, err := cfg.Cookie.SameSiteMode()
	if err != nil {
		logger.Fatal("invalid cookie configuration", "error", err)
	}

	authLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Limit:           cfg.RateLimit.Limit,
		Window:          cfg.RateLimit.Window,
		CleanupInterval: cfg.RateLimit.Window,
	}, logger)
	defer authLimiter.Stop()

	router := httpRouter.New(
		httpRouter.Services{
			Auth:   authService,
			Tokens: authService,
			Users:  userService,
			Follow: followService,
			Posts:  postService,
			Feed:   feedService,
		},
		httpRouter.Options{
			CORSOrigins:          cfg.HTTP.CORSOrigins,
			MetricsHandler:       metrics.Handler(registry),
			ExposeInternalErrors: cfg.IsDevelopment(),
			TrustProxy:           cfg.HTTP.TrustProxy,
		},
		cookie.NewManager(cfg.Cookie.Name, cfg.Cookie.Secure, sameSite),
		httpcontext.NewManager(),
		db,
		collector,
		authLimiter,
		logger,
	)

	healthServer := health.NewServer()
	monitor := grpcHealth.NewMonitor(db, healthServer, cfg.Health.CheckInterval, logger)

	servers := []model.Server{
		httpServer.NewHTTPServer(
			router.Register(),
			fmt.Sprintf(":%s", cfg.HTTP.Port),
			cfg.HTTP.ReadTimeout,
			cfg.HTTP.WriteTimeout,
		),
		grpcServer.NewGRPCServer(
			grpcRouter.New(healthServer, logger).Register(),
			fmt.Sprintf(":%s", cfg.GRPC.Port),
		),
	}
	layers := map[string]model.SecurityLayer{
		"http": server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		"grpc": server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor.Run(ctx)
	}()

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "server", s.Name(), "address", s.Address())
			if err := s.Start(layers[s.Name()]); err != nil {
				logger.Error("failed to start server", "server", s.Name(), "error", err)
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "server", s.Name(), "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
