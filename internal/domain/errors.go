package domain

import "errors"

var (
	// ErrQuotaExhausted means no active key has enough headroom today.
	ErrQuotaExhausted = errors.New("no api key with enough quota available today")
	// ErrProvisioningConflict means another caller created the same key-day
	// record first; the transaction was rolled back.
	ErrProvisioningConflict = errors.New("quota record provisioning conflict")
	// ErrRemoteQuotaExceeded is YouTube refusing a call because the key ran out
	// of quota on its side.
	ErrRemoteQuotaExceeded = errors.New("youtube quota exceeded for api key")
	ErrMalformedResponse   = errors.New("malformed youtube response")

	ErrAPIKeyAlreadyExists = errors.New("api key already exists")
	ErrAPIKeyNotFound      = errors.New("api key not found")
	ErrTrackingNotFound    = errors.New("tracked entity not found")
)
