package ingesting

import (
	"github.com/qmuntal/stateless"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

const (
	triggerBegin         = "begin"
	triggerPageReceived  = "pageReceived"
	triggerDetailsStored = "detailsStored"
	triggerFinish        = "finish"
	triggerStall         = "stall"
)

// pager tracks one entity's paging loop within a run.
type pager struct {
	entity  domain.TrackedEntity
	machine *stateless.StateMachine

	cursor       string
	seen         map[string]struct{}
	page         *domain.SearchPage
	pages        int
	itemsFetched int
	quotaSpent   int
	err          error
}

func newPager(entity domain.TrackedEntity) *pager {
	machine := stateless.NewStateMachine(domain.PagingStart)

	machine.Configure(domain.PagingStart).
		Permit(triggerBegin, domain.PagingSearching).
		Permit(triggerStall, domain.PagingStalled)

	machine.Configure(domain.PagingSearching).
		Permit(triggerPageReceived, domain.PagingFetchingDetails).
		Permit(triggerFinish, domain.PagingDone).
		Permit(triggerStall, domain.PagingStalled)

	machine.Configure(domain.PagingFetchingDetails).
		Permit(triggerDetailsStored, domain.PagingSearching).
		Permit(triggerStall, domain.PagingStalled)

	machine.Configure(domain.PagingDone)
	machine.Configure(domain.PagingStalled)

	return &pager{
		entity:  entity,
		machine: machine,
		seen:    make(map[string]struct{}),
	}
}

func (p *pager) state() domain.PagingState {
	return p.machine.MustState().(domain.PagingState)
}

func (p *pager) fire(trigger string) {
	// every trigger fired by the driver is permitted in the state it is fired from
	if err := p.machine.Fire(trigger); err != nil {
		panic(err)
	}
}

// exhausted reports whether SEARCHING must end the loop instead of fetching
// another page. The first search always runs.
func (p *pager) exhausted(keywordCap int) bool {
	if p.pages == 0 {
		return false
	}
	if p.cursor == "" {
		return true
	}
	return p.entity.Kind == domain.EntityKindKeyword && keywordCap > 0 && p.itemsFetched >= keywordCap
}

func (p *pager) receive(page *domain.SearchPage) {
	p.page = page
	p.fire(triggerPageReceived)
}

// advance moves past the stored page. A cursor already requested by this
// entity is treated as the last page.
func (p *pager) advance() {
	p.pages++
	p.itemsFetched += len(p.page.Items)
	if p.cursor != "" {
		p.seen[p.cursor] = struct{}{}
	}
	if _, repeated := p.seen[p.page.NextCursor]; repeated {
		p.cursor = ""
	} else {
		p.cursor = p.page.NextCursor
	}
	p.page = nil
	p.fire(triggerDetailsStored)
}

func (p *pager) stall(err error) {
	p.err = err
	p.fire(triggerStall)
}

func (p *pager) outcome() domain.EntityOutcome {
	return domain.EntityOutcome{
		Entity:       p.entity,
		Kind:         p.entity.Kind,
		Name:         p.entity.Name(),
		State:        p.state(),
		Pages:        p.pages,
		ItemsFetched: p.itemsFetched,
		QuotaSpent:   p.quotaSpent,
		Err:          p.err,
	}
}
