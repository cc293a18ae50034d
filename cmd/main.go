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

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/crypto/bcrypt"

	httpcontext "github.com/mediatone/mediatone-server/internal/api/http/context"
	"github.com/mediatone/mediatone-server/internal/api/http/handler"
	"github.com/mediatone/mediatone-server/internal/api/http/router"
	httpserver "github.com/mediatone/mediatone-server/internal/api/http/server"
	"github.com/mediatone/mediatone-server/internal/config"
	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/repository/memory"
	"github.com/mediatone/mediatone-server/internal/repository/postgres"
	"github.com/mediatone/mediatone-server/internal/security"
	"github.com/mediatone/mediatone-server/internal/server"
	"github.com/mediatone/mediatone-server/internal/service"
	storage "github.com/mediatone/mediatone-server/internal/storage/minio"
	"github.com/mediatone/mediatone-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var userStore model.UserStore
	var videoStore model.VideoStore
	var pinger handler.Pinger

	switch cfg.Database.Backend {
	case "postgres":
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize database", "error", err)
		}
		defer db.Close()

		userStore = postgres.NewUserRepository(db)
		videoStore = postgres.NewVideoRepository(db)
		pinger = db
	case "memory":
		userStore = memory.NewUserStore()
		videoStore = memory.NewVideoStore()
	default:
		logger.Fatal("unknown database backend", "backend", cfg.Database.Backend)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.Endpoint, cfg.Storage.UseSSL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	hasher := security.NewHasher(bcrypt.DefaultCost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	ctxMgr := httpcontext.NewManager()

	limits := service.UploadLimits{
		MaxVideoBytes: cfg.Upload.MaxVideoBytes,
		MaxAudioBytes: cfg.Upload.MaxAudioBytes,
		MaxImageBytes: cfg.Upload.MaxImageBytes,
	}

	authService := service.NewAuth(userStore, hasher, tokenManager, logger)
	userService := service.NewUser(userStore, logger)
	videoService := service.NewVideo(videoStore, userStore, storageClient, limits, logger)

	r := router.New(authService, userService, videoService, pinger, ctxMgr, logger)
	httpServer := httpserver.NewHTTPServer(
		r.Register(),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		time.Duration(cfg.HTTP.ReadHeaderTimeout)*time.Second,
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
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
