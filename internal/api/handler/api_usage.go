package handler

import (
	"net/http"

	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/managing"
	"github.com/vfg2006/youtube-data-api/pkg/apiErrors"
	"github.com/vfg2006/youtube-data-api/pkg/utils"
)

// ListAPIUsage lists daily quota usage per key, newest day first.
func ListAPIUsage(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		pagination, err := paginationFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page and limit must be integers", nil)
			return
		}

		startDate, err := utils.ParseDate(query.Get("startDate"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "startDate must be YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("endDate"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "endDate must be YYYY-MM-DD", nil)
			return
		}

		resp, err := service.ListAPIUsage(r.Context(), domain.QuotaUsageFilters{
			APIKey:     query.Get("apiKey"),
			StartDate:  startDate,
			EndDate:    endDate,
			Pagination: pagination,
		})
		if err != nil {
			writeServiceError(w, r, err, "failed to list api usage")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
