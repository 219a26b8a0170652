package domain

import "time"

// APIKey is a YouTube Data API credential. Keys are created by an operator
// and only their active flag changes afterwards.
type APIKey struct {
	ID        int64     `json:"id"`
	Key       string    `json:"api_key"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type APIKeyFilters struct {
	APIKey     string
	Pagination Pagination
}

type CreateAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type UpdateAPIKeyStatusRequest struct {
	APIKey   string `json:"apiKey"`
	IsActive *bool  `json:"isActive"`
}
