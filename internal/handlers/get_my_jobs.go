package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/middlewares"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// MyJobsLister defines the interface that the service must implement.
type MyJobsLister interface {
	ListByPoster(ctx context.Context, postedBy uuid.UUID) ([]models.JobDB, error)
}

// NewGetMyJobsHandler returns an HTTP handler listing the authenticated
// employer's own jobs.
// @Summary List own jobs
// @Description Returns jobs posted by the authenticated employer, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} handlers.JobResponse "List of jobs posted by the employer"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not an employer"
// @Router /api/jobs/my-jobs [get]
// @Security BearerAuth
func NewGetMyJobsHandler(svc MyJobsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		jobs, err := svc.ListByPoster(ctx, user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list jobs", "userID", user.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			return
		}

		resp := make([]JobResponse, 0, len(jobs))
		for _, job := range jobs {
			resp = append(resp, newJobResponse(job))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
