// Command script creates the ingestion schema and optionally seeds API keys.
package main

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("starting migration script")
}

func applySchema(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				logrus.WithError(err).WithField("statement", i).Error("failed to apply schema statement")
				return err
			}
		}
		return nil
	})
}

// seedAPIKeys registers keys, skipping those already stored.
func seedAPIKeys(ctx context.Context, repo repository.APIKeyRepository, keys []string) (inserted int, err error) {
	for i, key := range keys {
		if key == "" {
			continue
		}

		_, err := repo.Insert(ctx, key)
		if errors.Is(err, domain.ErrAPIKeyAlreadyExists) {
			logrus.WithField("position", i+1).Info("api key already registered, skipping")
			continue
		}
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

func main() {
	seedKeys := pflag.StringSlice("seed-keys", nil, "comma separated API keys to register")
	pflag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to postgres")
	}
	defer conn.Close()

	start := time.Now()
	if err := applySchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("schema migration failed")
	}
	logrus.WithField("elapsed", time.Since(start).String()).Infof("%d schema statements applied", len(schema))

	if len(*seedKeys) == 0 {
		return
	}

	inserted, err := seedAPIKeys(ctx, repository.NewAPIKeyRepository(conn), *seedKeys)
	if err != nil {
		logrus.WithError(err).Fatal("failed to seed api keys")
	}
	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"given":    len(*seedKeys),
	}).Info("api keys seeded")
}
