package managing

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/pkg/apiErrors"
)

// Manager backs the admin API: credentials, their daily usage and the
// channels and keywords the ingestion tracks.
type Manager interface {
	ListAPIKeys(ctx context.Context, filters domain.APIKeyFilters) (*domain.PagedResponse, error)
	CreateAPIKey(ctx context.Context, req *domain.CreateAPIKeyRequest) (*domain.APIKey, error)
	UpdateAPIKeyStatus(ctx context.Context, req *domain.UpdateAPIKeyStatusRequest) (*domain.APIKey, error)
	ListAPIUsage(ctx context.Context, filters domain.QuotaUsageFilters) (*domain.PagedResponse, error)

	ListChannels(ctx context.Context, pagination domain.Pagination) (*domain.PagedResponse, error)
	CreateChannel(ctx context.Context, req *domain.CreateTrackedChannelRequest) (*domain.TrackedChannel, error)
	UpdateChannelStatus(ctx context.Context, id int64, req *domain.UpdateTrackingStatusRequest) error

	ListKeywords(ctx context.Context, pagination domain.Pagination) (*domain.PagedResponse, error)
	CreateKeyword(ctx context.Context, req *domain.CreateTrackedKeywordRequest) (*domain.TrackedKeyword, error)
	UpdateKeywordStatus(ctx context.Context, id int64, req *domain.UpdateTrackingStatusRequest) error
}

type Service struct {
	apiKeyRepo   repository.APIKeyRepository
	usageRepo    repository.QuotaUsageRepository
	trackingRepo repository.TrackingRepository
}

func NewService(
	apiKeyRepo repository.APIKeyRepository,
	usageRepo repository.QuotaUsageRepository,
	trackingRepo repository.TrackingRepository,
) Manager {
	return &Service{
		apiKeyRepo:   apiKeyRepo,
		usageRepo:    usageRepo,
		trackingRepo: trackingRepo,
	}
}

func (s *Service) ListAPIKeys(ctx context.Context, filters domain.APIKeyFilters) (*domain.PagedResponse, error) {
	filters.APIKey = strings.TrimSpace(filters.APIKey)

	keys, total, err := s.apiKeyRepo.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("failed to list api keys")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list api keys")
	}

	return paged(keys, total, filters.Pagination), nil
}

func (s *Service) CreateAPIKey(ctx context.Context, req *domain.CreateAPIKeyRequest) (*domain.APIKey, error) {
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		return nil, NewManagingError(ErrAPIKeyRequired, apiErrors.ErrMissingRequiredData, "")
	}

	created, err := s.apiKeyRepo.Insert(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrAPIKeyAlreadyExists) {
			return nil, NewManagingError(err, apiErrors.ErrAlreadyExists, "")
		}
		logrus.WithError(err).Error("failed to insert api key")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to insert api key")
	}

	logrus.WithField("api_key_id", created.ID).Info("api key registered")
	return created, nil
}

func (s *Service) UpdateAPIKeyStatus(ctx context.Context, req *domain.UpdateAPIKeyStatusRequest) (*domain.APIKey, error) {
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		return nil, NewManagingError(ErrAPIKeyRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if req.IsActive == nil {
		return nil, NewManagingError(ErrIsActiveRequired, apiErrors.ErrMissingRequiredData, "")
	}

	updated, err := s.apiKeyRepo.UpdateStatus(ctx, key, *req.IsActive)
	if err != nil {
		if errors.Is(err, domain.ErrAPIKeyNotFound) {
			return nil, NewManagingError(err, apiErrors.ErrNotFound, "")
		}
		logrus.WithError(err).Error("failed to update api key status")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to update api key")
	}

	logrus.WithFields(logrus.Fields{
		"api_key_id": updated.ID,
		"is_active":  updated.IsActive,
	}).Info("api key status updated")
	return updated, nil
}

func (s *Service) ListAPIUsage(ctx context.Context, filters domain.QuotaUsageFilters) (*domain.PagedResponse, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, NewManagingError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "")
	}
	filters.APIKey = strings.TrimSpace(filters.APIKey)

	usage, total, err := s.usageRepo.ListUsage(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("failed to list api usage")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list api usage")
	}

	return paged(usage, total, filters.Pagination), nil
}

func (s *Service) ListChannels(ctx context.Context, pagination domain.Pagination) (*domain.PagedResponse, error) {
	channels, total, err := s.trackingRepo.ListChannels(ctx, pagination)
	if err != nil {
		logrus.WithError(err).Error("failed to list tracked channels")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list channels")
	}

	return paged(channels, total, pagination), nil
}

func (s *Service) CreateChannel(ctx context.Context, req *domain.CreateTrackedChannelRequest) (*domain.TrackedChannel, error) {
	req.ChannelID = strings.TrimSpace(req.ChannelID)
	req.ChannelName = strings.TrimSpace(req.ChannelName)
	if req.ChannelID == "" {
		return nil, NewManagingError(ErrChannelIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	channel, err := s.trackingRepo.InsertChannel(ctx, req)
	if err != nil {
		logrus.WithError(err).WithField("channel_id", req.ChannelID).Error("failed to insert tracked channel")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to insert channel")
	}

	return channel, nil
}

func (s *Service) UpdateChannelStatus(ctx context.Context, id int64, req *domain.UpdateTrackingStatusRequest) error {
	if !req.IsDeleted.Valid() {
		return NewManagingError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "")
	}

	return s.trackingError(s.trackingRepo.UpdateChannelStatus(ctx, id, req.IsDeleted), "channel", id)
}

func (s *Service) ListKeywords(ctx context.Context, pagination domain.Pagination) (*domain.PagedResponse, error) {
	keywords, total, err := s.trackingRepo.ListKeywords(ctx, pagination)
	if err != nil {
		logrus.WithError(err).Error("failed to list tracked keywords")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list keywords")
	}

	return paged(keywords, total, pagination), nil
}

func (s *Service) CreateKeyword(ctx context.Context, req *domain.CreateTrackedKeywordRequest) (*domain.TrackedKeyword, error) {
	req.Keyword = strings.TrimSpace(req.Keyword)
	if req.Keyword == "" {
		return nil, NewManagingError(ErrKeywordRequired, apiErrors.ErrMissingRequiredData, "")
	}

	keyword, err := s.trackingRepo.InsertKeyword(ctx, req)
	if err != nil {
		logrus.WithError(err).WithField("keyword", req.Keyword).Error("failed to insert tracked keyword")
		return nil, NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to insert keyword")
	}

	return keyword, nil
}

func (s *Service) UpdateKeywordStatus(ctx context.Context, id int64, req *domain.UpdateTrackingStatusRequest) error {
	if !req.IsDeleted.Valid() {
		return NewManagingError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "")
	}

	return s.trackingError(s.trackingRepo.UpdateKeywordStatus(ctx, id, req.IsDeleted), "keyword", id)
}

func (s *Service) trackingError(err error, kind string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrTrackingNotFound) {
		return NewManagingError(err, apiErrors.ErrNotFound, kind)
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"kind": kind,
		"id":   id,
	}).Error("failed to update tracking status")
	return NewManagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to update "+kind)
}

func paged(data any, total int, pagination domain.Pagination) *domain.PagedResponse {
	return &domain.PagedResponse{
		Success:    true,
		Data:       data,
		TotalCount: total,
		TotalPages: pagination.TotalPages(total),
	}
}
