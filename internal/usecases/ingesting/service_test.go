package ingesting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytmocks "github.com/vfg2006/youtube-data-api/infrastructure/integrator/youtube/mocks"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository/mocks"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	quotamocks "github.com/vfg2006/youtube-data-api/internal/usecases/quota/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ledger   *quotamocks.MockLedger
	youtube  *ytmocks.MockYouTubeIntegrator
	tracking *mocks.MockTrackingRepository
	channels *mocks.MockChannelRepository
	videos   *mocks.MockVideoRepository
	service  *Service
}

func newFixture(t *testing.T, maxJobs int) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		ledger:   quotamocks.NewMockLedger(ctrl),
		youtube:  ytmocks.NewMockYouTubeIntegrator(ctrl),
		tracking: mocks.NewMockTrackingRepository(ctrl),
		channels: mocks.NewMockChannelRepository(ctrl),
		videos:   mocks.NewMockVideoRepository(ctrl),
	}

	cfg := &config.Config{
		Quota: config.Quota{
			SearchCost:         100,
			VideoCostPerItem:   1,
			ChannelCostPerItem: 1,
		},
		IngestionSync: config.IngestionSync{
			KeywordItemCap:    500,
			MaxConcurrentJobs: maxJobs,
			ChannelBatchSize:  50,
			CallTimeout:       time.Second,
			RunTimeout:        time.Minute,
		},
	}

	f.service = NewService(cfg, f.ledger, f.youtube, f.tracking, f.channels, f.videos)
	return f
}

func (f *fixture) track(channelIDs []string, keywords []*domain.TrackedKeyword) {
	f.tracking.EXPECT().ListActiveChannelIDs(gomock.Any()).Return(channelIDs, nil)
	f.tracking.EXPECT().ListActiveKeywords(gomock.Any()).Return(keywords, nil)
}

func (f *fixture) storeAnything() {
	f.videos.EXPECT().UpsertVideos(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.videos.EXPECT().UpsertVideoStatistics(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.videos.EXPECT().UpsertKeywordVideoLinks(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) detailsForAnyIDs() {
	f.youtube.EXPECT().
		FetchVideoDetails(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ids []string) ([]*domain.VideoDetails, error) {
			return detailsFor(ids), nil
		}).
		AnyTimes()
}

func record(id int64, key string) *domain.QuotaRecord {
	return &domain.QuotaRecord{ID: id, APIKey: key, QuotaLimit: 10000}
}

func searchPage(prefix string, n int, next string) *domain.SearchPage {
	page := &domain.SearchPage{NextCursor: next}
	for i := 0; i < n; i++ {
		page.Items = append(page.Items, domain.SearchItem{VideoID: fmt.Sprintf("%s-%d", prefix, i)})
	}
	return page
}

func detailsFor(ids []string) []*domain.VideoDetails {
	details := make([]*domain.VideoDetails, 0, len(ids))
	for _, id := range ids {
		details = append(details, &domain.VideoDetails{
			Video:      &domain.Video{VideoID: id, ChannelID: "UC1"},
			Statistics: &domain.VideoStatistics{VideoID: id, ChannelID: "UC1", SnapshotDate: "2026-10-18"},
		})
	}
	return details
}

func outcomeFor(t *testing.T, report *domain.RunReport, name string) domain.EntityOutcome {
	t.Helper()
	for _, o := range report.Outcomes {
		if o.Name == name {
			return o
		}
	}
	t.Fatalf("no outcome for %s", name)
	return domain.EntityOutcome{}
}

func TestService_Run_KeywordStopsAtItemCap(t *testing.T) {
	f := newFixture(t, 1)
	f.track([]string{}, []*domain.TrackedKeyword{{ID: 7, Keyword: "golang"}})
	f.storeAnything()
	f.detailsForAnyIDs()

	f.ledger.EXPECT().Reserve(gomock.Any(), 100).Return(record(1, "key-a"), nil).Times(10)
	f.ledger.EXPECT().Reserve(gomock.Any(), 50).Return(record(1, "key-a"), nil).Times(10)

	calls := 0
	f.youtube.EXPECT().
		SearchVideos(gomock.Any(), "key-a", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params domain.SearchParams) (*domain.SearchPage, error) {
			assert.Equal(t, "golang", params.Keyword)
			assert.Empty(t, params.ChannelID)
			calls++
			return searchPage(fmt.Sprintf("p%d", calls), 50, fmt.Sprintf("cursor-%d", calls)), nil
		}).
		Times(10)

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)

	outcome := report.Outcomes[0]
	assert.Equal(t, domain.PagingDone, outcome.State)
	assert.Equal(t, 10, outcome.Pages)
	assert.Equal(t, 500, outcome.ItemsFetched)
	assert.Equal(t, 10*100+10*50, outcome.QuotaSpent)
	assert.NoError(t, report.Err())
}

func TestService_Run_ChannelPagesUntilNoCursor(t *testing.T) {
	f := newFixture(t, 1)
	f.track([]string{"UC1"}, nil)
	f.detailsForAnyIDs()

	// channel details refresh
	f.ledger.EXPECT().Reserve(gomock.Any(), 1).Return(record(1, "key-a"), nil)
	f.youtube.EXPECT().
		FetchChannelDetails(gomock.Any(), "key-a", []string{"UC1"}).
		Return([]*domain.ChannelDetails{{
			Channel:    &domain.Channel{ChannelID: "UC1"},
			Statistics: &domain.ChannelStatistics{ChannelID: "UC1", SnapshotDate: "2026-10-18"},
		}}, nil)
	f.channels.EXPECT().UpsertChannels(gomock.Any(), gomock.Len(1)).Return(nil)
	f.channels.EXPECT().UpsertChannelStatistics(gomock.Any(), gomock.Len(1)).Return(nil)

	f.ledger.EXPECT().Reserve(gomock.Any(), 100).Return(record(1, "key-a"), nil).Times(3)
	f.ledger.EXPECT().Reserve(gomock.Any(), 2).Return(record(1, "key-a"), nil).Times(3)

	gomock.InOrder(
		f.youtube.EXPECT().
			SearchVideos(gomock.Any(), "key-a", domain.SearchParams{ChannelID: "UC1"}).
			Return(searchPage("a", 2, "C2"), nil),
		f.youtube.EXPECT().
			SearchVideos(gomock.Any(), "key-a", domain.SearchParams{ChannelID: "UC1", Cursor: "C2"}).
			Return(searchPage("b", 2, "C3"), nil),
		f.youtube.EXPECT().
			SearchVideos(gomock.Any(), "key-a", domain.SearchParams{ChannelID: "UC1", Cursor: "C3"}).
			Return(searchPage("c", 2, ""), nil),
	)

	f.videos.EXPECT().UpsertVideos(gomock.Any(), gomock.Len(2)).Return(nil).Times(3)
	f.videos.EXPECT().UpsertVideoStatistics(gomock.Any(), gomock.Len(2)).Return(nil).Times(3)
	f.videos.EXPECT().UpsertKeywordVideoLinks(gomock.Any(), gomock.Len(0)).Return(nil).Times(3)

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.ChannelsRefreshed)

	outcome := outcomeFor(t, report, "UC1")
	assert.Equal(t, domain.PagingDone, outcome.State)
	assert.Equal(t, 3, outcome.Pages)
	assert.Equal(t, 6, outcome.ItemsFetched)
}

func TestService_Run_ExhaustedQuotaStallsWithoutRemoteCalls(t *testing.T) {
	f := newFixture(t, 1)
	f.track([]string{"UC1"}, []*domain.TrackedKeyword{{ID: 1, Keyword: "golang"}})

	f.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, domain.ErrQuotaExhausted).AnyTimes()

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.ChannelsRefreshed)
	require.Len(t, report.Outcomes, 2)

	for _, outcome := range report.Outcomes {
		assert.Equal(t, domain.PagingStalled, outcome.State)
		assert.Equal(t, 0, outcome.Pages)
		assert.Equal(t, 0, outcome.QuotaSpent)

		kind, ok := KindOf(outcome.Err)
		assert.True(t, ok)
		assert.Equal(t, KindQuotaExhausted, kind)
	}
	assert.Error(t, report.Err())
}

func TestService_Run_OneEntityFailureDoesNotBlockOthers(t *testing.T) {
	f := newFixture(t, 2)
	f.track(nil, []*domain.TrackedKeyword{{ID: 1, Keyword: "broken"}, {ID: 2, Keyword: "works"}})
	f.storeAnything()
	f.detailsForAnyIDs()

	f.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(record(1, "key-a"), nil).AnyTimes()

	f.youtube.EXPECT().
		SearchVideos(gomock.Any(), "key-a", domain.SearchParams{Keyword: "broken"}).
		Return(nil, errors.New("youtube search: status 500"))
	f.youtube.EXPECT().
		SearchVideos(gomock.Any(), "key-a", domain.SearchParams{Keyword: "works"}).
		Return(searchPage("w", 3, ""), nil)

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)

	broken := outcomeFor(t, report, "broken")
	assert.Equal(t, domain.PagingStalled, broken.State)
	kind, _ := KindOf(broken.Err)
	assert.Equal(t, KindRemoteCall, kind)

	works := outcomeFor(t, report, "works")
	assert.Equal(t, domain.PagingDone, works.State)
	assert.Equal(t, 3, works.ItemsFetched)

	assert.Equal(t, 1, report.Count(domain.PagingDone))
	assert.Equal(t, 1, report.Count(domain.PagingStalled))
	assert.Len(t, report.Errors, 1)
}

func TestService_Run_PersistenceFailureKeepsDebit(t *testing.T) {
	f := newFixture(t, 1)
	f.track(nil, []*domain.TrackedKeyword{{ID: 3, Keyword: "golang"}})
	f.detailsForAnyIDs()

	f.ledger.EXPECT().Reserve(gomock.Any(), 100).Return(record(1, "key-a"), nil)
	f.ledger.EXPECT().Reserve(gomock.Any(), 4).Return(record(1, "key-a"), nil)
	f.youtube.EXPECT().SearchVideos(gomock.Any(), "key-a", gomock.Any()).Return(searchPage("v", 4, "C2"), nil)
	f.videos.EXPECT().UpsertVideos(gomock.Any(), gomock.Any()).Return(errors.New("database is down"))

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)

	outcome := outcomeFor(t, report, "golang")
	assert.Equal(t, domain.PagingStalled, outcome.State)
	assert.Equal(t, 104, outcome.QuotaSpent)
	assert.Equal(t, 0, outcome.Pages)

	kind, _ := KindOf(outcome.Err)
	assert.Equal(t, KindPersistence, kind)
}

func TestService_Run_CallTimeoutIsReportedAsTimeout(t *testing.T) {
	f := newFixture(t, 1)
	f.service.callTimeout = 20 * time.Millisecond
	f.track(nil, []*domain.TrackedKeyword{{ID: 3, Keyword: "slow"}})

	f.ledger.EXPECT().Reserve(gomock.Any(), 100).Return(record(1, "key-a"), nil)
	f.youtube.EXPECT().
		SearchVideos(gomock.Any(), "key-a", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.SearchParams) (*domain.SearchPage, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)

	outcome := outcomeFor(t, report, "slow")
	assert.Equal(t, domain.PagingStalled, outcome.State)
	kind, _ := KindOf(outcome.Err)
	assert.Equal(t, KindTimeout, kind)
	assert.NotEqual(t, KindQuotaExhausted, kind)
}

func TestService_Run_RemoteQuotaExceededRotatesKey(t *testing.T) {
	f := newFixture(t, 1)
	f.track(nil, []*domain.TrackedKeyword{{ID: 3, Keyword: "golang"}})
	f.storeAnything()

	gomock.InOrder(
		f.ledger.EXPECT().Reserve(gomock.Any(), 100).Return(record(1, "key-a"), nil),
		f.ledger.EXPECT().MarkExhausted(gomock.Any(), int64(1)).Return(nil),
		f.ledger.EXPECT().Reserve(gomock.Any(), 100).Return(record(2, "key-b"), nil),
	)
	f.youtube.EXPECT().
		SearchVideos(gomock.Any(), "key-a", gomock.Any()).
		Return(nil, fmt.Errorf("youtube search: %w", domain.ErrRemoteQuotaExceeded))
	f.youtube.EXPECT().
		SearchVideos(gomock.Any(), "key-b", gomock.Any()).
		Return(&domain.SearchPage{}, nil)

	report, err := f.service.Run(context.Background())

	require.NoError(t, err)

	outcome := outcomeFor(t, report, "golang")
	assert.Equal(t, domain.PagingDone, outcome.State)
	assert.Equal(t, 1, outcome.Pages)
	assert.Equal(t, 200, outcome.QuotaSpent)
}

func TestService_Run_ListFailureAbortsRun(t *testing.T) {
	f := newFixture(t, 1)
	f.tracking.EXPECT().ListActiveChannelIDs(gomock.Any()).Return(nil, errors.New("connection refused"))

	report, err := f.service.Run(context.Background())

	assert.ErrorIs(t, err, ErrListTrackedEntities)
	require.NotNil(t, report)
	assert.Empty(t, report.Outcomes)
}

func TestPager_Exhausted(t *testing.T) {
	tests := []struct {
		name     string
		entity   domain.TrackedEntity
		pages    int
		items    int
		cursor   string
		expected bool
	}{
		{name: "first search always runs", entity: domain.ChannelEntity("UC1"), expected: false},
		{name: "channel without cursor is done", entity: domain.ChannelEntity("UC1"), pages: 2, items: 100, expected: true},
		{name: "channel with cursor has no cap", entity: domain.ChannelEntity("UC1"), pages: 40, items: 2000, cursor: "C", expected: false},
		{name: "keyword below cap continues", entity: domain.KeywordEntity(1, "go"), pages: 9, items: 450, cursor: "C", expected: false},
		{name: "keyword at cap is done", entity: domain.KeywordEntity(1, "go"), pages: 10, items: 500, cursor: "C", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPager(tt.entity)
			p.pages = tt.pages
			p.itemsFetched = tt.items
			p.cursor = tt.cursor

			assert.Equal(t, tt.expected, p.exhausted(500))
		})
	}
}

func TestPager_AdvanceStopsOnRepeatedCursor(t *testing.T) {
	p := newPager(domain.ChannelEntity("UC1"))
	p.fire(triggerBegin)

	for _, next := range []string{"A", "B"} {
		p.receive(&domain.SearchPage{Items: []domain.SearchItem{{VideoID: "v"}}, NextCursor: next})
		p.advance()
		require.False(t, p.exhausted(0))
	}

	// B points back to A
	p.receive(&domain.SearchPage{Items: []domain.SearchItem{{VideoID: "v"}}, NextCursor: "A"})
	p.advance()

	assert.Equal(t, "", p.cursor)
	assert.True(t, p.exhausted(0))
	assert.Equal(t, 3, p.pages)
	assert.Equal(t, domain.PagingSearching, p.state())
}
