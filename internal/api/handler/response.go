package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/managing"
	"github.com/vfg2006/youtube-data-api/pkg/apiErrors"
	"github.com/vfg2006/youtube-data-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}

// writeServiceError answers with the code carried by a ManagingError, or a
// generic 500 with fallback as message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var managingErr *managing.ManagingError
	if errors.As(err, &managingErr) {
		apiErrors.WriteError(w, managingErr.Code, managingErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// paginationFromQuery reads page and limit. Missing values fall back to the
// defaults, malformed ones are rejected.
func paginationFromQuery(r *http.Request) (domain.Pagination, error) {
	query := r.URL.Query()
	pagination := domain.Pagination{}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, err
		}
		pagination.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, err
		}
		pagination.Limit = limit
	}

	return pagination.Normalize(), nil
}
