package domain

import "time"

const usageDateLayout = "2006-01-02"

// QuotaRecord is the usage of one API key for one calendar day.
// There is at most one record per (APIKeyID, UsageDate).
type QuotaRecord struct {
	ID         int64     `json:"id"`
	APIKeyID   int64     `json:"google_api_key_id"`
	APIKey     string    `json:"-"`
	UsageDate  string    `json:"usage_date"`
	QuotaLimit int       `json:"quota_limit"`
	QuotaUsed  int       `json:"quota_used"`
	LastUsedAt time.Time `json:"last_used_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Remaining returns the headroom left on the record.
func (q *QuotaRecord) Remaining() int {
	return q.QuotaLimit - q.QuotaUsed
}

// CanAfford reports whether the record has strictly more headroom than cost,
// the same predicate the ledger queries use.
func (q *QuotaRecord) CanAfford(cost int) bool {
	return q.Remaining() > cost
}

// UsageDate formats t as the server-local calendar day used to bucket quota.
func UsageDate(t time.Time) string {
	return t.Local().Format(usageDateLayout)
}

// QuotaUsage is a usage row joined with its key, as listed by the admin API.
type QuotaUsage struct {
	APIKey     string    `json:"api_key"`
	UsageDate  string    `json:"usage_date"`
	QuotaLimit int       `json:"quota_limit"`
	QuotaUsed  int       `json:"quota_used"`
	LastUsedAt time.Time `json:"last_used_at"`
}

type QuotaUsageFilters struct {
	APIKey     string
	StartDate  *time.Time
	EndDate    *time.Time
	Pagination Pagination
}
