package managing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository/mocks"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type repoMocks struct {
	apiKeys  *mocks.MockAPIKeyRepository
	usage    *mocks.MockQuotaUsageRepository
	tracking *mocks.MockTrackingRepository
}

func newTestService(t *testing.T) (Manager, repoMocks) {
	ctrl := gomock.NewController(t)
	m := repoMocks{
		apiKeys:  mocks.NewMockAPIKeyRepository(ctrl),
		usage:    mocks.NewMockQuotaUsageRepository(ctrl),
		tracking: mocks.NewMockTrackingRepository(ctrl),
	}
	return NewService(m.apiKeys, m.usage, m.tracking), m
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var managingErr *ManagingError
	require.True(t, errors.As(err, &managingErr), "expected ManagingError, got %v", err)
	assert.Equal(t, code, managingErr.Code)
}

func TestService_CreateAPIKey(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  *domain.CreateAPIKeyRequest
		setup    func(m repoMocks)
		wantCode string
	}{
		{
			name:    "trims and inserts",
			request: &domain.CreateAPIKeyRequest{APIKey: "  AIza-1  "},
			setup: func(m repoMocks) {
				m.apiKeys.EXPECT().Insert(ctx, "AIza-1").Return(&domain.APIKey{ID: 1, Key: "AIza-1", IsActive: true}, nil)
			},
		},
		{
			name:     "empty key",
			request:  &domain.CreateAPIKeyRequest{APIKey: "  "},
			setup:    func(m repoMocks) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "duplicate key",
			request: &domain.CreateAPIKeyRequest{APIKey: "AIza-1"},
			setup: func(m repoMocks) {
				m.apiKeys.EXPECT().Insert(ctx, "AIza-1").Return(nil, domain.ErrAPIKeyAlreadyExists)
			},
			wantCode: apiErrors.ErrAlreadyExists,
		},
		{
			name:    "database failure",
			request: &domain.CreateAPIKeyRequest{APIKey: "AIza-1"},
			setup: func(m repoMocks) {
				m.apiKeys.EXPECT().Insert(ctx, "AIza-1").Return(nil, errors.New("boom"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)

			key, err := svc.CreateAPIKey(ctx, tt.request)
			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "AIza-1", key.Key)
		})
	}
}

func TestService_UpdateAPIKeyStatus(t *testing.T) {
	ctx := context.Background()
	inactive := false

	t.Run("missing isActive", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.UpdateAPIKeyStatus(ctx, &domain.UpdateAPIKeyStatusRequest{APIKey: "AIza-1"})
		requireCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("unknown key", func(t *testing.T) {
		svc, m := newTestService(t)
		m.apiKeys.EXPECT().UpdateStatus(ctx, "AIza-9", false).Return(nil, domain.ErrAPIKeyNotFound)

		_, err := svc.UpdateAPIKeyStatus(ctx, &domain.UpdateAPIKeyStatusRequest{APIKey: "AIza-9", IsActive: &inactive})
		requireCode(t, err, apiErrors.ErrNotFound)
		assert.ErrorIs(t, err, domain.ErrAPIKeyNotFound)
	})

	t.Run("deactivates", func(t *testing.T) {
		svc, m := newTestService(t)
		m.apiKeys.EXPECT().UpdateStatus(ctx, "AIza-1", false).Return(&domain.APIKey{ID: 1, Key: "AIza-1"}, nil)

		key, err := svc.UpdateAPIKeyStatus(ctx, &domain.UpdateAPIKeyStatusRequest{APIKey: "AIza-1", IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, key.IsActive)
	})
}

func TestService_ListAPIUsage(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects inverted range", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ListAPIUsage(ctx, domain.QuotaUsageFilters{StartDate: &start, EndDate: &end})
		requireCode(t, err, apiErrors.ErrInvalidRequest)
	})

	t.Run("pages results", func(t *testing.T) {
		svc, m := newTestService(t)
		filters := domain.QuotaUsageFilters{APIKey: "AIza", Pagination: domain.Pagination{Page: 1, Limit: 2}}
		rows := []*domain.QuotaUsage{{APIKey: "AIza-1", UsageDate: "2024-05-10", QuotaLimit: 10000, QuotaUsed: 300}}
		m.usage.EXPECT().ListUsage(ctx, filters).Return(rows, 5, nil)

		resp, err := svc.ListAPIUsage(ctx, domain.QuotaUsageFilters{APIKey: " AIza ", Pagination: filters.Pagination})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 5, resp.TotalCount)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, rows, resp.Data)
	})
}

func TestService_Tracking(t *testing.T) {
	ctx := context.Background()

	t.Run("channel id required", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateChannel(ctx, &domain.CreateTrackedChannelRequest{ChannelName: "x"})
		requireCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("keyword required", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateKeyword(ctx, &domain.CreateTrackedKeywordRequest{})
		requireCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.UpdateChannelStatus(ctx, 1, &domain.UpdateTrackingStatusRequest{IsDeleted: 7})
		requireCode(t, err, apiErrors.ErrInvalidFormat)
	})

	t.Run("keyword not found", func(t *testing.T) {
		svc, m := newTestService(t)
		m.tracking.EXPECT().UpdateKeywordStatus(ctx, int64(3), domain.TrackingDeleted).Return(domain.ErrTrackingNotFound)

		err := svc.UpdateKeywordStatus(ctx, 3, &domain.UpdateTrackingStatusRequest{IsDeleted: domain.TrackingDeleted})
		requireCode(t, err, apiErrors.ErrNotFound)
	})

	t.Run("creates channel", func(t *testing.T) {
		svc, m := newTestService(t)
		m.tracking.EXPECT().
			InsertChannel(ctx, &domain.CreateTrackedChannelRequest{ChannelID: "UC1", ChannelName: "One"}).
			Return(&domain.TrackedChannel{ID: 1, ChannelID: "UC1", IsDeleted: domain.TrackingActive}, nil)

		channel, err := svc.CreateChannel(ctx, &domain.CreateTrackedChannelRequest{ChannelID: " UC1 ", ChannelName: "One"})
		require.NoError(t, err)
		assert.Equal(t, domain.TrackingActive, channel.IsDeleted)
	})

	t.Run("lists keywords", func(t *testing.T) {
		svc, m := newTestService(t)
		pagination := domain.Pagination{Page: 2, Limit: 10}
		m.tracking.EXPECT().ListKeywords(ctx, pagination).Return([]*domain.TrackedKeyword{{ID: 11, Keyword: "go"}}, 11, nil)

		resp, err := svc.ListKeywords(ctx, pagination)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalPages)
	})
}
