package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository/mocks"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const today = "2026-10-18"

func newTestLedger(repo *mocks.MockQuotaUsageRepository) *Service {
	service := NewService(&config.Config{Quota: config.Quota{DefaultLimit: 10000, ReserveAttempts: 3}}, repo)
	service.now = func() time.Time { return time.Date(2026, 10, 18, 15, 0, 0, 0, time.Local) }
	return service
}

func TestService_Acquire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockQuotaUsageRepository(ctrl)
	ledger := newTestLedger(mockRepo)

	tests := []struct {
		name     string
		cost     int
		setup    func()
		validate func(t *testing.T, record *domain.QuotaRecord, err error)
	}{
		{
			name: "existing record with headroom is returned",
			cost: 40,
			setup: func() {
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), today, 40).
					Return(&domain.QuotaRecord{ID: 1, QuotaLimit: 10000, QuotaUsed: 9950}, nil)
			},
			validate: func(t *testing.T, record *domain.QuotaRecord, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)
				assert.Equal(t, int64(1), record.ID)
			},
		},
		{
			name: "provisions the next key when no record has headroom",
			cost: 100,
			setup: func() {
				mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(nil, nil)
				mockRepo.EXPECT().
					Provision(gomock.Any(), today, 10000).
					Return(&domain.QuotaRecord{ID: 2, APIKeyID: 5, APIKey: "oldest", QuotaLimit: 10000}, nil)
			},
			validate: func(t *testing.T, record *domain.QuotaRecord, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)
				assert.Equal(t, "oldest", record.APIKey)
				assert.Equal(t, 0, record.QuotaUsed)
			},
		},
		{
			name: "returns nil when every key is exhausted",
			cost: 100,
			setup: func() {
				mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(nil, nil)
				mockRepo.EXPECT().Provision(gomock.Any(), today, 10000).Return(nil, nil)
			},
			validate: func(t *testing.T, record *domain.QuotaRecord, err error) {
				require.NoError(t, err)
				assert.Nil(t, record)
			},
		},
		{
			name: "retries once after a provisioning conflict",
			cost: 100,
			setup: func() {
				gomock.InOrder(
					mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(nil, nil),
					mockRepo.EXPECT().Provision(gomock.Any(), today, 10000).Return(nil, domain.ErrProvisioningConflict),
					mockRepo.EXPECT().
						FindAvailable(gomock.Any(), today, 100).
						Return(&domain.QuotaRecord{ID: 3, QuotaLimit: 10000}, nil),
				)
			},
			validate: func(t *testing.T, record *domain.QuotaRecord, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)
				assert.Equal(t, int64(3), record.ID)
			},
		},
		{
			name: "a second conflict is surfaced",
			cost: 100,
			setup: func() {
				mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(nil, nil).Times(2)
				mockRepo.EXPECT().Provision(gomock.Any(), today, 10000).Return(nil, domain.ErrProvisioningConflict).Times(2)
			},
			validate: func(t *testing.T, record *domain.QuotaRecord, err error) {
				assert.ErrorIs(t, err, domain.ErrProvisioningConflict)
				assert.Nil(t, record)
			},
		},
		{
			name: "storage errors propagate",
			cost: 100,
			setup: func() {
				mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, record *domain.QuotaRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, record)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			record, err := ledger.Acquire(context.Background(), tt.cost)
			tt.validate(t, record, err)
		})
	}
}

func TestService_Reserve(t *testing.T) {
	t.Run("debits the acquired record and keeps its key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockQuotaUsageRepository(ctrl)
		ledger := newTestLedger(mockRepo)

		mockRepo.EXPECT().
			FindAvailable(gomock.Any(), today, 100).
			Return(&domain.QuotaRecord{ID: 1, APIKey: "key-a", QuotaLimit: 10000, QuotaUsed: 500}, nil)
		mockRepo.EXPECT().
			Reserve(gomock.Any(), int64(1), 100).
			Return(&domain.QuotaRecord{ID: 1, QuotaLimit: 10000, QuotaUsed: 600}, nil)

		record, err := ledger.Reserve(context.Background(), 100)

		require.NoError(t, err)
		assert.Equal(t, "key-a", record.APIKey)
		assert.Equal(t, 600, record.QuotaUsed)
	})

	t.Run("retries when a concurrent reservation took the headroom", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockQuotaUsageRepository(ctrl)
		ledger := newTestLedger(mockRepo)

		gomock.InOrder(
			mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(&domain.QuotaRecord{ID: 1, APIKey: "key-a"}, nil),
			mockRepo.EXPECT().Reserve(gomock.Any(), int64(1), 100).Return(nil, nil),
			mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(&domain.QuotaRecord{ID: 2, APIKey: "key-b"}, nil),
			mockRepo.EXPECT().Reserve(gomock.Any(), int64(2), 100).Return(&domain.QuotaRecord{ID: 2, QuotaUsed: 100}, nil),
		)

		record, err := ledger.Reserve(context.Background(), 100)

		require.NoError(t, err)
		assert.Equal(t, "key-b", record.APIKey)
	})

	t.Run("reports exhaustion when no key can afford the cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockQuotaUsageRepository(ctrl)
		ledger := newTestLedger(mockRepo)

		mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(nil, nil)
		mockRepo.EXPECT().Provision(gomock.Any(), today, 10000).Return(nil, nil)

		record, err := ledger.Reserve(context.Background(), 100)

		assert.ErrorIs(t, err, domain.ErrQuotaExhausted)
		assert.Nil(t, record)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockQuotaUsageRepository(ctrl)
		ledger := newTestLedger(mockRepo)

		mockRepo.EXPECT().FindAvailable(gomock.Any(), today, 100).Return(&domain.QuotaRecord{ID: 1}, nil).Times(3)
		mockRepo.EXPECT().Reserve(gomock.Any(), int64(1), 100).Return(nil, nil).Times(3)

		_, err := ledger.Reserve(context.Background(), 100)

		assert.ErrorIs(t, err, domain.ErrQuotaExhausted)
	})
}

func TestService_DebitAndMarkExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockQuotaUsageRepository(ctrl)
	ledger := newTestLedger(mockRepo)

	mockRepo.EXPECT().Debit(gomock.Any(), int64(4), 30).Return(nil)
	mockRepo.EXPECT().MarkExhausted(gomock.Any(), int64(4)).Return(errors.New("boom"))

	assert.NoError(t, ledger.Debit(context.Background(), 4, 30))
	assert.Error(t, ledger.MarkExhausted(context.Background(), 4))
}

func TestQuotaRecord_CanAfford(t *testing.T) {
	record := &domain.QuotaRecord{QuotaLimit: 10000, QuotaUsed: 9950}

	assert.False(t, record.CanAfford(100))
	assert.True(t, record.CanAfford(40))
	assert.False(t, record.CanAfford(50))
}
