package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit into usable values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Pagination) Offset() uint64 {
	n := p.Normalize()
	return uint64((n.Page - 1) * n.Limit)
}

func (p Pagination) TotalPages(totalCount int) int {
	n := p.Normalize()
	if totalCount == 0 {
		return 0
	}
	return (totalCount + n.Limit - 1) / n.Limit
}

// PagedResponse is the envelope returned by the admin list endpoints.
type PagedResponse struct {
	Success    bool `json:"success"`
	Data       any  `json:"data"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
}
