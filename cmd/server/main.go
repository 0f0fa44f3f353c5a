package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/codedjade003/photobook-server/internal/config"
	"github.com/codedjade003/photobook-server/internal/domain"
	"github.com/codedjade003/photobook-server/internal/logger"
	"github.com/codedjade003/photobook-server/internal/middleware"
	"github.com/codedjade003/photobook-server/internal/repository"
	"github.com/codedjade003/photobook-server/internal/service"
	"github.com/codedjade003/photobook-server/internal/token"
	"github.com/codedjade003/photobook-server/internal/utils"
	"github.com/codedjade003/photobook-server/internal/worker"
)

var (
	migrate  = flag.Bool("migrate", false, "Run schema auto-migration on startup (development only)")
	envReset = flag.Bool("reset-environment", false, "Wipe all data on startup; requires DEV_OVERRIDE_PASSWORD")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lgr, err := logger.Init(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = lgr.Sync() }()

	lgr.Info("starting credential service", zap.String("environment", cfg.Environment))

	db, err := utils.InitDB(cfg.DatabaseURL)
	if err != nil {
		lgr.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := utils.CloseDB(db); err != nil {
			lgr.Error("error closing database", zap.Error(err))
		}
	}()

	if *migrate {
		if err := domain.AutoMigrate(db); err != nil {
			lgr.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Email provider: real SMTP only in production, mock elsewhere
	var emailProvider worker.EmailProvider
	if cfg.Environment == "production" {
		emailProvider = worker.NewSMTPEmailProvider(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.EmailFrom,
		)
	} else {
		emailProvider = worker.NewMockEmailProvider()
	}

	emailPool := worker.NewEmailWorkerPool(
		cfg.EmailWorkerPoolSize,
		cfg.EmailTaskQueueSize,
		emailProvider,
	)
	defer emailPool.Stop()

	hasher := utils.NewPasswordHasher(cfg.BcryptCost)
	validator := utils.NewValidator()
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	devGuard := service.NewDevOverrideGuard(cfg.DevOverrideHash, hasher)

	authService := service.NewAuthService(
		accountRepo,
		profileRepo,
		maintenanceRepo,
		hasher,
		validator,
		issuer,
		devGuard,
		service.AuthServiceConfig{
			VerificationEnabled: cfg.VerificationEnabled,
			NotifierEnabled:     cfg.NotifierEnabled,
			EmailPool:           emailPool,
		},
	)
	if *envReset {
		resp, err := authService.ResetEnvironment(context.Background(), service.ResetEnvironmentRequest{
			DevSecret: os.Getenv("DEV_OVERRIDE_PASSWORD"),
		})
		if err != nil {
			lgr.Fatal("environment reset refused", zap.Error(err))
		}
		lgr.Info("environment reset complete", zap.Int("truncated_tables", resp.TruncatedTables))
	}

	// The auth API surface itself is registered by the transport layer that
	// embeds authService; this process serves health plus the interceptor
	// chain the transport mounts under.
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ChainUnaryInterceptors(
			middleware.LoggingInterceptor(lgr),
			middleware.RecoveryInterceptor(),
			middleware.ErrorInterceptor(),
		)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCHost, cfg.GRPCPort))
	if err != nil {
		lgr.Fatal("failed to listen", zap.String("host", cfg.GRPCHost), zap.String("port", cfg.GRPCPort), zap.Error(err))
	}

	go func() {
		lgr.Info("grpc server listening", zap.String("host", cfg.GRPCHost), zap.String("port", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			lgr.Fatal("grpc server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	lgr.Info("shutdown signal received, gracefully shutting down")

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	lgr.Info("grpc server stopped")
}
