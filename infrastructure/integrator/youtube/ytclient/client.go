package ytclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

var (
	searchParts  = []string{"snippet", "id"}
	videoParts   = []string{"snippet", "contentDetails", "statistics"}
	channelParts = []string{"snippet", "statistics"}
)

const (
	orderByDate      = "date"
	orderByViewCount = "viewCount"
	searchTypeVideo  = "video"
)

// SearchParams filters one search.list call. ChannelID takes precedence over
// Query when both are set.
type SearchParams struct {
	ChannelID string
	Query     string
	PageToken string
}

type Client interface {
	Search(ctx context.Context, apiKey string, params SearchParams) (*ytapi.SearchListResponse, error)
	ListVideos(ctx context.Context, apiKey string, ids []string) (*ytapi.VideoListResponse, error)
	ListChannels(ctx context.Context, apiKey string, ids []string) (*ytapi.ChannelListResponse, error)
}

type YouTubeClient struct {
	service    *ytapi.Service
	limiter    *rate.Limiter
	maxResults int64
}

// NewClient builds a keyless YouTube Data API client. The key is attached to
// every call, since it changes with each quota reservation.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	httpClient := &http.Client{
		Timeout: cfg.YouTube.RequestTimeout,
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.YouTube.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.YouTube.BaseURL))
	}

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create youtube service")
	}

	limit := rate.Inf
	if cfg.YouTube.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.YouTube.RequestsPerSecond)
	}

	maxResults := cfg.YouTube.MaxResults
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 50
	}

	return &YouTubeClient{
		service:    service,
		limiter:    rate.NewLimiter(limit, 1),
		maxResults: maxResults,
	}, nil
}

func (c *YouTubeClient) Search(ctx context.Context, apiKey string, params SearchParams) (*ytapi.SearchListResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "search: rate limiter")
	}

	call := c.service.Search.List(searchParts).
		Type(searchTypeVideo).
		MaxResults(c.maxResults)

	if params.ChannelID != "" {
		call = call.ChannelId(params.ChannelID).Order(orderByDate)
	} else {
		call = call.Q(params.Query).Order(orderByViewCount)
	}

	if params.PageToken != "" {
		call = call.PageToken(params.PageToken)
	}

	resp, err := call.Context(ctx).Do(keyParam(apiKey))
	if err != nil {
		return nil, classify("search", err)
	}

	return resp, nil
}

func (c *YouTubeClient) ListVideos(ctx context.Context, apiKey string, ids []string) (*ytapi.VideoListResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "videos: rate limiter")
	}

	resp, err := c.service.Videos.List(videoParts).
		Id(ids...).
		Context(ctx).
		Do(keyParam(apiKey))
	if err != nil {
		return nil, classify("videos", err)
	}

	return resp, nil
}

func (c *YouTubeClient) ListChannels(ctx context.Context, apiKey string, ids []string) (*ytapi.ChannelListResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "channels: rate limiter")
	}

	resp, err := c.service.Channels.List(channelParts).
		Id(ids...).
		Context(ctx).
		Do(keyParam(apiKey))
	if err != nil {
		return nil, classify("channels", err)
	}

	return resp, nil
}

func keyParam(apiKey string) googleapi.CallOption {
	return googleapi.QueryParameter("key", apiKey)
}
