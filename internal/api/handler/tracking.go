package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/managing"
	"github.com/vfg2006/youtube-data-api/pkg/apiErrors"
)

func ListTrackedChannels(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagination, err := paginationFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page and limit must be integers", nil)
			return
		}

		resp, err := service.ListChannels(r.Context(), pagination)
		if err != nil {
			writeServiceError(w, r, err, "failed to list channels")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func CreateTrackedChannel(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateTrackedChannelRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		channel, err := service.CreateChannel(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "failed to create channel")
			return
		}

		writeJSON(w, r, http.StatusCreated, channel)
	})
}

func UpdateTrackedChannel(service managing.Manager) http.Handler {
	return updateTracking(func(r *http.Request, id int64, req *domain.UpdateTrackingStatusRequest) error {
		return service.UpdateChannelStatus(r.Context(), id, req)
	})
}

func ListTrackedKeywords(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagination, err := paginationFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page and limit must be integers", nil)
			return
		}

		resp, err := service.ListKeywords(r.Context(), pagination)
		if err != nil {
			writeServiceError(w, r, err, "failed to list keywords")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func CreateTrackedKeyword(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateTrackedKeywordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		keyword, err := service.CreateKeyword(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "failed to create keyword")
			return
		}

		writeJSON(w, r, http.StatusCreated, keyword)
	})
}

func UpdateTrackedKeyword(service managing.Manager) http.Handler {
	return updateTracking(func(r *http.Request, id int64, req *domain.UpdateTrackingStatusRequest) error {
		return service.UpdateKeywordStatus(r.Context(), id, req)
	})
}

type trackingUpdater func(r *http.Request, id int64, req *domain.UpdateTrackingStatusRequest) error

func updateTracking(update trackingUpdater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "id must be a positive integer", nil)
			return
		}

		var request domain.UpdateTrackingStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		if err := update(r, id, &request); err != nil {
			writeServiceError(w, r, err, "failed to update tracking status")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
	})
}
