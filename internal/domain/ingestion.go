package domain

import (
	"time"

	"github.com/hashicorp/go-multierror"
)

type EntityKind string

const (
	EntityKindChannel EntityKind = "channel"
	EntityKindKeyword EntityKind = "keyword"
)

// TrackedEntity drives one paging loop. Exactly one of ChannelID and Keyword
// is set, according to Kind.
type TrackedEntity struct {
	Kind      EntityKind
	ID        int64
	ChannelID string
	Keyword   string
}

func ChannelEntity(channelID string) TrackedEntity {
	return TrackedEntity{Kind: EntityKindChannel, ChannelID: channelID}
}

func KeywordEntity(id int64, keyword string) TrackedEntity {
	return TrackedEntity{Kind: EntityKindKeyword, ID: id, Keyword: keyword}
}

func (e TrackedEntity) Name() string {
	if e.Kind == EntityKindKeyword {
		return e.Keyword
	}
	return e.ChannelID
}

// PagingState is the state of one entity's paging loop within a run.
type PagingState string

const (
	PagingStart           PagingState = "START"
	PagingSearching       PagingState = "SEARCHING"
	PagingFetchingDetails PagingState = "FETCHING_DETAILS"
	PagingDone            PagingState = "DONE"
	PagingStalled         PagingState = "STALLED"
)

// SearchParams selects what search.list pages through. Exactly one of
// ChannelID and Keyword must be set.
type SearchParams struct {
	Cursor    string
	ChannelID string
	Keyword   string
}

type SearchItem struct {
	VideoID   string
	ChannelID string
}

// SearchPage is one page of search results. An empty NextCursor is terminal.
type SearchPage struct {
	Items      []SearchItem
	NextCursor string
}

func (p *SearchPage) VideoIDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if item.VideoID != "" {
			ids = append(ids, item.VideoID)
		}
	}
	return ids
}

// EntityOutcome is how one entity's loop ended.
type EntityOutcome struct {
	Entity       TrackedEntity `json:"-"`
	Kind         EntityKind    `json:"kind"`
	Name         string        `json:"name"`
	State        PagingState   `json:"state"`
	Pages        int           `json:"pages"`
	ItemsFetched int           `json:"items_fetched"`
	QuotaSpent   int           `json:"quota_spent"`
	Err          error         `json:"-"`
	Error        string        `json:"error,omitempty"`
}

// RunReport aggregates the outcomes of one ingestion run.
type RunReport struct {
	RunID             string          `json:"run_id"`
	StartedAt         time.Time       `json:"started_at"`
	CompletedAt       time.Time       `json:"completed_at"`
	ChannelsRefreshed int             `json:"channels_refreshed"`
	Outcomes          []EntityOutcome `json:"outcomes"`
	Errors            []string        `json:"errors,omitempty"`

	errs *multierror.Error
}

func (r *RunReport) AddOutcome(outcome EntityOutcome) {
	if outcome.Err != nil {
		outcome.Error = outcome.Err.Error()
		r.AddError(outcome.Err)
	}
	r.Outcomes = append(r.Outcomes, outcome)
}

func (r *RunReport) AddError(err error) {
	if err == nil {
		return
	}
	r.errs = multierror.Append(r.errs, err)
	r.Errors = append(r.Errors, err.Error())
}

// Err returns every error collected during the run, or nil.
func (r *RunReport) Err() error {
	return r.errs.ErrorOrNil()
}

// Count returns how many entities ended in state.
func (r *RunReport) Count(state PagingState) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == state {
			n++
		}
	}
	return n
}
