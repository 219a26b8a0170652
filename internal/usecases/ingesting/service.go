package ingesting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/quota"
	"github.com/vfg2006/youtube-data-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// remoteQuotaRetries is how many times a call refused for quota is retried
// with another key before the entity stalls.
const remoteQuotaRetries = 1

type Service struct {
	ledger       quota.Ledger
	youtube      youtube.YouTubeIntegrator
	trackingRepo repository.TrackingRepository
	channelRepo  repository.ChannelRepository
	videoRepo    repository.VideoRepository

	searchCost         int
	videoCostPerItem   int
	channelCostPerItem int
	keywordCap         int
	maxConcurrentJobs  int
	channelBatchSize   int
	callTimeout        time.Duration
	runTimeout         time.Duration

	now func() time.Time
}

func NewService(
	cfg *config.Config,
	ledger quota.Ledger,
	youtubeService youtube.YouTubeIntegrator,
	trackingRepo repository.TrackingRepository,
	channelRepo repository.ChannelRepository,
	videoRepo repository.VideoRepository,
) *Service {
	maxJobs := cfg.IngestionSync.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}

	batchSize := cfg.IngestionSync.ChannelBatchSize
	if batchSize < 1 || batchSize > 50 {
		batchSize = 50
	}

	return &Service{
		ledger:             ledger,
		youtube:            youtubeService,
		trackingRepo:       trackingRepo,
		channelRepo:        channelRepo,
		videoRepo:          videoRepo,
		searchCost:         cfg.Quota.SearchCost,
		videoCostPerItem:   cfg.Quota.VideoCostPerItem,
		channelCostPerItem: cfg.Quota.ChannelCostPerItem,
		keywordCap:         cfg.IngestionSync.KeywordItemCap,
		maxConcurrentJobs:  maxJobs,
		channelBatchSize:   batchSize,
		callTimeout:        cfg.IngestionSync.CallTimeout,
		runTimeout:         cfg.IngestionSync.RunTimeout,
		now:                time.Now,
	}
}

func (s *Service) Run(ctx context.Context) (*domain.RunReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", s.now().UnixNano())
	}

	report := &domain.RunReport{
		RunID:     runID,
		StartedAt: s.now(),
	}
	log := logrus.WithField("run_id", runID)

	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	channelIDs, err := s.trackingRepo.ListActiveChannelIDs(ctx)
	if err != nil {
		log.WithError(err).Error("ingestion: failed to list tracked channels")
		return report, fmt.Errorf("%w: %w", ErrListTrackedEntities, err)
	}

	keywords, err := s.trackingRepo.ListActiveKeywords(ctx)
	if err != nil {
		log.WithError(err).Error("ingestion: failed to list tracked keywords")
		return report, fmt.Errorf("%w: %w", ErrListTrackedEntities, err)
	}

	log.WithFields(logrus.Fields{
		"channels": len(channelIDs),
		"keywords": len(keywords),
	}).Info("ingestion: run started")

	report.ChannelsRefreshed = s.refreshChannels(ctx, log, channelIDs, report)

	entities := make([]domain.TrackedEntity, 0, len(channelIDs)+len(keywords))
	for _, channelID := range channelIDs {
		entities = append(entities, domain.ChannelEntity(channelID))
	}
	for _, keyword := range keywords {
		entities = append(entities, domain.KeywordEntity(keyword.ID, keyword.Keyword))
	}

	outcomes := make([]domain.EntityOutcome, len(entities))

	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrentJobs)

	for i, entity := range entities {
		i, entity := i, entity
		g.Go(func() error {
			outcomes[i] = s.runEntity(ctx, log, entity)
			return nil
		})
	}

	_ = g.Wait()

	for _, outcome := range outcomes {
		report.AddOutcome(outcome)
	}
	report.CompletedAt = s.now()

	log.WithFields(logrus.Fields{
		"done":     report.Count(domain.PagingDone),
		"stalled":  report.Count(domain.PagingStalled),
		"errors":   len(report.Errors),
		"duration": report.CompletedAt.Sub(report.StartedAt).String(),
	}).Info("ingestion: run finished")

	return report, nil
}

// runEntity drives one entity from START to DONE or STALLED. Nothing raised
// here reaches the other loops.
func (s *Service) runEntity(ctx context.Context, runLog *logrus.Entry, entity domain.TrackedEntity) (outcome domain.EntityOutcome) {
	p := newPager(entity)
	log := runLog.WithFields(logrus.Fields{
		"kind":   entity.Kind,
		"entity": entity.Name(),
	})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("ingestion: entity loop panicked")
			outcome = p.outcome()
			outcome.State = domain.PagingStalled
			outcome.Err = NewIngestError(ErrEntityPanic, KindPersistence, entity.Name(), fmt.Sprint(r))
		}
	}()

	p.fire(triggerBegin)

	for {
		switch p.state() {
		case domain.PagingSearching:
			if p.exhausted(s.keywordCap) {
				p.fire(triggerFinish)
				continue
			}

			if err := ctx.Err(); err != nil {
				p.stall(NewIngestError(err, KindTimeout, entity.Name(), "run deadline reached"))
				continue
			}

			page, err := s.search(ctx, p)
			if err != nil {
				p.stall(err)
				continue
			}
			p.receive(page)

		case domain.PagingFetchingDetails:
			if err := s.storePage(ctx, p); err != nil {
				p.stall(err)
				continue
			}
			p.advance()

		default:
			outcome = p.outcome()
			entry := log.WithFields(logrus.Fields{
				"state":         outcome.State,
				"pages":         outcome.Pages,
				"items_fetched": outcome.ItemsFetched,
				"quota_spent":   outcome.QuotaSpent,
			})
			if outcome.Err != nil {
				entry.WithError(outcome.Err).Warn("ingestion: entity stalled")
			} else {
				entry.Info("ingestion: entity done")
			}
			return outcome
		}
	}
}

func (s *Service) search(ctx context.Context, p *pager) (*domain.SearchPage, error) {
	params := domain.SearchParams{Cursor: p.cursor}
	if p.entity.Kind == domain.EntityKindKeyword {
		params.Keyword = p.entity.Keyword
	} else {
		params.ChannelID = p.entity.ChannelID
	}

	var page *domain.SearchPage
	err := s.callWithQuota(ctx, p.entity.Name(), s.searchCost, &p.quotaSpent, "search", func(callCtx context.Context, apiKey string) error {
		var err error
		page, err = s.youtube.SearchVideos(callCtx, apiKey, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	if page == nil {
		page = &domain.SearchPage{}
	}
	return page, nil
}

// storePage fetches the details of the current page and upserts them. The
// quota spent on the details call is kept even when persisting fails.
func (s *Service) storePage(ctx context.Context, p *pager) error {
	videoIDs := p.page.VideoIDs()
	if len(videoIDs) == 0 {
		return nil
	}

	var details []*domain.VideoDetails
	cost := len(videoIDs) * s.videoCostPerItem
	err := s.callWithQuota(ctx, p.entity.Name(), cost, &p.quotaSpent, "videos", func(callCtx context.Context, apiKey string) error {
		var err error
		details, err = s.youtube.FetchVideoDetails(callCtx, apiKey, videoIDs)
		return err
	})
	if err != nil {
		return err
	}

	videos := make([]*domain.Video, 0, len(details))
	stats := make([]*domain.VideoStatistics, 0, len(details))
	links := make([]domain.KeywordVideo, 0, len(details))
	for _, d := range details {
		videos = append(videos, d.Video)
		stats = append(stats, d.Statistics)
		if p.entity.Kind == domain.EntityKindKeyword {
			links = append(links, domain.KeywordVideo{KeywordID: p.entity.ID, VideoID: d.Video.VideoID})
		}
	}

	return s.persist(ctx, p.entity.Name(), func(callCtx context.Context) error {
		if err := s.videoRepo.UpsertVideos(callCtx, videos); err != nil {
			return fmt.Errorf("upsert videos: %w", err)
		}
		if err := s.videoRepo.UpsertVideoStatistics(callCtx, stats); err != nil {
			return fmt.Errorf("upsert video statistics: %w", err)
		}
		if err := s.videoRepo.UpsertKeywordVideoLinks(callCtx, links); err != nil {
			return fmt.Errorf("upsert keyword links: %w", err)
		}
		return nil
	})
}

// refreshChannels stores the current details and statistics of the tracked
// channels in batches. A failed batch is reported and skipped.
func (s *Service) refreshChannels(ctx context.Context, log *logrus.Entry, channelIDs []string, report *domain.RunReport) int {
	refreshed := 0

	for start := 0; start < len(channelIDs); start += s.channelBatchSize {
		end := min(start+s.channelBatchSize, len(channelIDs))
		batch := channelIDs[start:end]
		name := fmt.Sprintf("channels[%d:%d]", start, end)

		var (
			details []*domain.ChannelDetails
			spent   int
		)
		err := s.callWithQuota(ctx, name, len(batch)*s.channelCostPerItem, &spent, "channels", func(callCtx context.Context, apiKey string) error {
			var err error
			details, err = s.youtube.FetchChannelDetails(callCtx, apiKey, batch)
			return err
		})
		if err != nil {
			log.WithError(err).Warn("ingestion: channel refresh failed")
			report.AddError(err)
			if kind, _ := KindOf(err); kind == KindQuotaExhausted || kind == KindTimeout {
				return refreshed
			}
			continue
		}

		channels := make([]*domain.Channel, 0, len(details))
		stats := make([]*domain.ChannelStatistics, 0, len(details))
		for _, d := range details {
			channels = append(channels, d.Channel)
			stats = append(stats, d.Statistics)
		}

		err = s.persist(ctx, name, func(callCtx context.Context) error {
			if err := s.channelRepo.UpsertChannels(callCtx, channels); err != nil {
				return fmt.Errorf("upsert channels: %w", err)
			}
			if err := s.channelRepo.UpsertChannelStatistics(callCtx, stats); err != nil {
				return fmt.Errorf("upsert channel statistics: %w", err)
			}
			return nil
		})
		if err != nil {
			log.WithError(err).Warn("ingestion: channel refresh not stored")
			report.AddError(err)
			continue
		}

		refreshed += len(channels)
	}

	return refreshed
}

// callWithQuota reserves cost on a key, then runs call with that key under
// the per-call timeout. When YouTube reports the key out of quota the record
// is marked exhausted and the call is retried on another key.
func (s *Service) callWithQuota(
	ctx context.Context,
	entity string,
	cost int,
	spent *int,
	op string,
	call func(ctx context.Context, apiKey string) error,
) error {
	for attempt := 0; ; attempt++ {
		record, err := s.ledger.Reserve(ctx, cost)
		if err != nil {
			return quotaError(ctx, err, entity)
		}
		*spent += cost

		callCtx, cancel := s.callContext(ctx)
		err = call(callCtx, record.APIKey)
		timedOut := err != nil && isTimeout(callCtx, err)
		cancel()

		if err == nil {
			return nil
		}

		if timedOut {
			return NewIngestError(err, KindTimeout, entity, op)
		}

		if errors.Is(err, domain.ErrRemoteQuotaExceeded) {
			if markErr := s.ledger.MarkExhausted(ctx, record.ID); markErr != nil {
				logrus.WithError(markErr).WithField("record_id", record.ID).Error("ingestion: failed to mark quota record exhausted")
			}
			if attempt < remoteQuotaRetries {
				continue
			}
		}

		return NewIngestError(err, KindRemoteCall, entity, op)
	}
}

func (s *Service) persist(ctx context.Context, entity string, fn func(ctx context.Context) error) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	if err := fn(callCtx); err != nil {
		if isTimeout(callCtx, err) {
			return NewIngestError(err, KindTimeout, entity, "persisting")
		}
		return NewIngestError(err, KindPersistence, entity, "")
	}
	return nil
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.callTimeout)
}
