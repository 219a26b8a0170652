package youtube

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

type YouTubeIntegrator interface {
	SearchVideos(ctx context.Context, apiKey string, params domain.SearchParams) (*domain.SearchPage, error)
	FetchVideoDetails(ctx context.Context, apiKey string, videoIDs []string) ([]*domain.VideoDetails, error)
	FetchChannelDetails(ctx context.Context, apiKey string, channelIDs []string) ([]*domain.ChannelDetails, error)
}

type YouTubeService struct {
	Client ytclient.Client
	now    func() time.Time
}

func New(client ytclient.Client) YouTubeIntegrator {
	return &YouTubeService{
		Client: client,
		now:    time.Now,
	}
}

// SearchVideos returns one page of videos for a channel or a keyword. A
// request with neither filter yields an empty page without calling YouTube.
func (s *YouTubeService) SearchVideos(ctx context.Context, apiKey string, params domain.SearchParams) (*domain.SearchPage, error) {
	if params.ChannelID == "" && params.Keyword == "" {
		return &domain.SearchPage{}, nil
	}

	resp, err := s.Client.Search(ctx, apiKey, ytclient.SearchParams{
		ChannelID: params.ChannelID,
		Query:     params.Keyword,
		PageToken: params.Cursor,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel_id": params.ChannelID,
			"keyword":    params.Keyword,
			"error":      err.Error(),
		}).Error("youtube: search failed")
		return nil, err
	}

	page := FactorySearchPage(resp)

	logrus.WithFields(logrus.Fields{
		"channel_id": params.ChannelID,
		"keyword":    params.Keyword,
		"items":      len(page.Items),
		"has_next":   page.NextCursor != "",
	}).Debug("youtube: search page received")

	return page, nil
}

// FetchVideoDetails loads snippet, content details and statistics for the
// given videos. No IDs means no call.
func (s *YouTubeService) FetchVideoDetails(ctx context.Context, apiKey string, videoIDs []string) ([]*domain.VideoDetails, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	resp, err := s.Client.ListVideos(ctx, apiKey, videoIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"videos": len(videoIDs),
			"error":  err.Error(),
		}).Error("youtube: videos lookup failed")
		return nil, err
	}

	return FactoryVideoDetails(resp, domain.UsageDate(s.now())), nil
}

// FetchChannelDetails loads snippet and statistics for the given channels.
func (s *YouTubeService) FetchChannelDetails(ctx context.Context, apiKey string, channelIDs []string) ([]*domain.ChannelDetails, error) {
	if len(channelIDs) == 0 {
		return nil, nil
	}

	resp, err := s.Client.ListChannels(ctx, apiKey, channelIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channels": len(channelIDs),
			"error":    err.Error(),
		}).Error("youtube: channels lookup failed")
		return nil, err
	}

	return FactoryChannelDetails(resp, domain.UsageDate(s.now())), nil
}
