package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/youtube-data-api/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository"
	"github.com/vfg2006/youtube-data-api/internal/api"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/scheduler"
	"github.com/vfg2006/youtube-data-api/internal/usecases/authenticating"
	"github.com/vfg2006/youtube-data-api/internal/usecases/ingesting"
	"github.com/vfg2006/youtube-data-api/internal/usecases/managing"
	"github.com/vfg2006/youtube-data-api/internal/usecases/quota"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	apiKeyRepo := repository.NewAPIKeyRepository(pgConn)
	usageRepo := repository.NewQuotaUsageRepository(pgConn)
	trackingRepo := repository.NewTrackingRepository(pgConn)
	channelRepo := repository.NewChannelRepository(pgConn)
	videoRepo := repository.NewVideoRepository(pgConn)

	ytClient, err := ytclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create youtube client")
	}
	youtubeIntegrator := youtube.New(ytClient)

	ledger := quota.NewService(cfg, usageRepo)

	ingestionService := ingesting.NewService(
		cfg,
		ledger,
		youtubeIntegrator,
		trackingRepo,
		channelRepo,
		videoRepo,
	)

	ingestionSyncService := scheduler.NewIngestionSyncService(ingestionService, cfg)
	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start the ingestion scheduler")
	} else {
		logrus.Info("ingestion scheduler started")
	}

	authenticator := authenticating.NewService(cfg)
	manager := managing.NewService(apiKeyRepo, usageRepo, trackingRepo)

	server, err := api.New(cfg, manager, authenticator, ingestionSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to postgres")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	logrus.Info("postgres connection established")
	return conn
}
