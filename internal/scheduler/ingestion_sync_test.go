package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(ingester *mocks.MockIngester) *IngestionSyncService {
	return NewIngestionSyncService(ingester, &config.Config{
		IngestionSync: config.IngestionSync{
			CronSchedule:      "0 2 * * *",
			MaxConcurrentJobs: 4,
			KeywordItemCap:    500,
		},
	})
}

func TestIngestionSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := mocks.NewMockIngester(ctrl)
	service := newTestSyncService(mockIngester)

	release := make(chan struct{})

	mockIngester.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.RunReport, error) {
			<-release
			return &domain.RunReport{RunID: "run-1"}, nil
		}).
		Times(1)

	assert.True(t, service.TriggerManualSync())

	require.Eventually(t, service.IsRunning, time.Second, 5*time.Millisecond)

	// a second trigger while the first run is in progress is ignored
	assert.False(t, service.TriggerManualSync())

	close(release)
	require.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 5*time.Millisecond)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_error"])
	report, ok := status["last_report"].(*domain.RunReport)
	require.True(t, ok)
	assert.Equal(t, "run-1", report.RunID)
}

func TestIngestionSyncService_RecordsRunFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := mocks.NewMockIngester(ctrl)
	service := newTestSyncService(mockIngester)

	mockIngester.EXPECT().Run(gomock.Any()).Return(&domain.RunReport{}, errors.New("list failed"))

	service.sync()

	status := service.GetStatus()
	assert.Equal(t, "list failed", status["last_error"])
	assert.False(t, service.IsRunning())
}

func TestIngestionSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(mocks.NewMockIngester(ctrl))

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
