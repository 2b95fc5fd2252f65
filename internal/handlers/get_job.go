package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/services"
)

// JobGetter defines the interface that the service must implement.
type JobGetter interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.JobWithPoster, error)
}

// NewGetJobHandler returns an HTTP handler fetching one job by id.
// A malformed identifier is indistinguishable from an absent job.
// @Summary Get job by ID
// @Description Returns one job with its poster resolved to name and email
// @Tags jobs
// @Produce json
// @Param jobId path string true "ID of the job"
// @Success 200 {object} handlers.JobWithPosterResponse "Job details"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Router /api/jobs/{jobId} [get]
func NewGetJobHandler(svc JobGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		jobID, err := uuid.Parse(chi.URLParam(r, "jobId"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Job not found"})
			return
		}

		job, err := svc.GetByID(r.Context(), jobID)
		if err != nil {
			if errors.Is(err, services.ErrJobNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Job not found"})
				return
			}
			logger.Log.Errorw("failed to get job", "jobID", jobID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newJobWithPosterResponse(*job))
	}
}
