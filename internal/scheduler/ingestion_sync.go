package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/ingesting"
)

type IngestionSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	KeywordItemCap    int
	SyncEnabled       bool
}

// IngestionSyncService runs the ingestion on a cron schedule or on demand,
// never two runs at the same time.
type IngestionSyncService struct {
	scheduler *gocron.Scheduler
	config    IngestionSyncConfig
	ingester  ingesting.Ingester

	baseCtx context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RunReport
	lastError           string
}

func NewIngestionSyncService(ingester ingesting.Ingester, appConfig *config.Config) *IngestionSyncService {
	syncConfig := IngestionSyncConfig{
		CronSchedule:      appConfig.IngestionSync.CronSchedule,
		MaxConcurrentJobs: appConfig.IngestionSync.MaxConcurrentJobs,
		KeywordItemCap:    appConfig.IngestionSync.KeywordItemCap,
		SyncEnabled:       appConfig.IngestionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"keyword_item_cap":    syncConfig.KeywordItemCap,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("ingestion scheduler configuration loaded")

	return &IngestionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		ingester:  ingester,
		baseCtx:   context.Background(),
	}
}

// Start schedules the ingestion. Manual triggers work even when the cron is
// disabled.
func (s *IngestionSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("ingestion sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting ingestion sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sync()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule ingestion sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping ingestion sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *IngestionSyncService) sync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("ingestion sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	report, err := s.ingester.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("ingestion sync failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":  report.RunID,
		"done":    report.Count(domain.PagingDone),
		"stalled": report.Count(domain.PagingStalled),
	}).Info("ingestion sync completed")
}

// TriggerManualSync starts a run in the background and returns at once. It
// reports false when a run is already in progress.
func (s *IngestionSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("ingestion sync already running, ignoring manual request")
		return false
	}

	logrus.Info("starting manual ingestion sync")
	go s.sync()

	return true
}

func (s *IngestionSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

func (s *IngestionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"keyword_item_cap":       s.config.KeywordItemCap,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
		"last_report":            s.lastReport,
	}
}
