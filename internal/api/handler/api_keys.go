package handler

import (
	"net/http"

	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/managing"
	"github.com/vfg2006/youtube-data-api/pkg/apiErrors"
)

func ListAPIKeys(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagination, err := paginationFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page and limit must be integers", nil)
			return
		}

		resp, err := service.ListAPIKeys(r.Context(), domain.APIKeyFilters{
			APIKey:     r.URL.Query().Get("apiKey"),
			Pagination: pagination,
		})
		if err != nil {
			writeServiceError(w, r, err, "failed to list api keys")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func CreateAPIKey(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateAPIKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		key, err := service.CreateAPIKey(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "failed to create api key")
			return
		}

		writeJSON(w, r, http.StatusCreated, key)
	})
}

func UpdateAPIKeyStatus(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateAPIKeyStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		key, err := service.UpdateAPIKeyStatus(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "failed to update api key")
			return
		}

		writeJSON(w, r, http.StatusOK, key)
	})
}
