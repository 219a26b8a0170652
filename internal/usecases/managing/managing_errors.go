package managing

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyRequired    = errors.New("api key is required")
	ErrIsActiveRequired  = errors.New("isActive is required")
	ErrChannelIDRequired = errors.New("channel id is required")
	ErrKeywordRequired   = errors.New("keyword is required")
	ErrInvalidStatus     = errors.New("invalid tracking status")
	ErrInvalidDateRange  = errors.New("start date is after end date")

	ErrDatabaseOperation = errors.New("database operation error")
)

// ManagingError pairs an admin operation failure with the API error code
// the handlers answer with.
type ManagingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ManagingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ManagingError) Unwrap() error {
	return e.Err
}

func NewManagingError(err error, code string, details string) *ManagingError {
	return &ManagingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
