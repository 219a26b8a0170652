package ytclient

import (
	stderrors "errors"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"google.golang.org/api/googleapi"
)

// reasons YouTube reports when the key itself is out of daily quota
var quotaReasons = map[string]struct{}{
	"quotaExceeded":      {},
	"dailyLimitExceeded": {},
}

func classify(op string, err error) error {
	var gapiErr *googleapi.Error
	if !stderrors.As(err, &gapiErr) {
		return errors.Wrapf(err, "youtube %s", op)
	}

	if IsQuotaExceeded(gapiErr) {
		return errors.Wrapf(domain.ErrRemoteQuotaExceeded, "youtube %s: %s", op, gapiErr.Message)
	}

	return errors.Wrapf(err, "youtube %s: status %d", op, gapiErr.Code)
}

// IsQuotaExceeded reports whether YouTube refused the call because the key
// has no quota left.
func IsQuotaExceeded(err *googleapi.Error) bool {
	if err == nil || err.Code != http.StatusForbidden {
		return false
	}

	for _, item := range err.Errors {
		if _, ok := quotaReasons[item.Reason]; ok {
			return true
		}
	}

	return false
}
