package ingesting

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/youtube-data-api/internal/domain"
)

type ErrorKind string

const (
	KindQuotaExhausted       ErrorKind = "QUOTA_EXHAUSTED"
	KindProvisioningConflict ErrorKind = "PROVISIONING_CONFLICT"
	KindRemoteCall           ErrorKind = "REMOTE_CALL"
	KindPersistence          ErrorKind = "PERSISTENCE"
	KindTimeout              ErrorKind = "TIMEOUT"
)

var (
	ErrListTrackedEntities = errors.New("error listing tracked channels and keywords")
	ErrEntityPanic         = errors.New("entity loop panicked")
)

// IngestError is an error raised inside one entity loop. It never escapes the
// loop: it ends up in the entity outcome and the run report.
type IngestError struct {
	Err     error
	Kind    ErrorKind
	Entity  string
	Details string
}

func (e *IngestError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Err.Error())
	if e.Entity != "" {
		msg = fmt.Sprintf("[%s] %s: %s", e.Kind, e.Entity, e.Err.Error())
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

func NewIngestError(err error, kind ErrorKind, entity string, details string) *IngestError {
	return &IngestError{
		Err:     err,
		Kind:    kind,
		Entity:  entity,
		Details: details,
	}
}

// KindOf returns the kind of an IngestError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ingestErr *IngestError
	if errors.As(err, &ingestErr) {
		return ingestErr.Kind, true
	}
	return "", false
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// quotaError classifies a failed reservation.
func quotaError(ctx context.Context, err error, entity string) *IngestError {
	switch {
	case errors.Is(err, domain.ErrQuotaExhausted):
		return NewIngestError(err, KindQuotaExhausted, entity, "")
	case errors.Is(err, domain.ErrProvisioningConflict):
		return NewIngestError(err, KindProvisioningConflict, entity, "")
	case isTimeout(ctx, err):
		return NewIngestError(err, KindTimeout, entity, "reserving quota")
	default:
		return NewIngestError(err, KindPersistence, entity, "reserving quota")
	}
}
