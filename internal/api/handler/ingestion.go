package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/pkg/middleware"
)

// IngestionScheduler is the part of the scheduler the HTTP layer drives.
type IngestionScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunIngestion starts a run in the background and answers right away. A
// trigger while a run is in progress is dropped.
func RunIngestion(scheduler IngestionScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields := logrus.Fields{}
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			fields["subject"] = claims.Subject
		}

		started := scheduler.TriggerManualSync()
		logrus.WithFields(fields).WithField("started", started).Info("manual ingestion requested")

		writeJSON(w, r, http.StatusOK, struct{}{})
	})
}

func IngestionStatus(scheduler IngestionScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, scheduler.GetStatus())
	})
}
