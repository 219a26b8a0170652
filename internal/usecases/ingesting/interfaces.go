package ingesting

import (
	"context"

	"github.com/vfg2006/youtube-data-api/internal/domain"
)

// Ingester runs one pass over every tracked channel and keyword.
type Ingester interface {
	// Run blocks until every entity loop reached DONE or STALLED, or the run
	// deadline expired. The error is only set when the run could not start.
	Run(ctx context.Context) (*domain.RunReport, error)
}
