package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// JobLister defines the interface that the service must implement.
type JobLister interface {
	List(ctx context.Context, skills []string) ([]models.JobWithPoster, error)
}

// PosterRef is a job poster resolved to public fields
// swagger:model PosterRef
type PosterRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// JobWithPosterResponse is a job with its poster resolved
// swagger:model JobWithPosterResponse
type JobWithPosterResponse struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Budget         float64          `json:"budget"`
	Duration       int              `json:"duration"`
	SkillsRequired models.SkillList `json:"skillsRequired"`
	PostedBy       PosterRef        `json:"postedBy"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func newJobWithPosterResponse(job models.JobWithPoster) JobWithPosterResponse {
	return JobWithPosterResponse{
		ID:             job.JobID,
		Title:          job.Title,
		Description:    job.Description,
		Budget:         job.Budget,
		Duration:       job.Duration,
		SkillsRequired: job.SkillsRequired,
		PostedBy: PosterRef{
			ID:    job.PostedBy,
			Name:  job.PosterName,
			Email: job.PosterEmail,
		},
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

// NewGetJobsHandler returns an HTTP handler listing all jobs.
// @Summary List jobs
// @Description Returns all jobs, optionally narrowed to those whose skill list intersects the comma-separated skills parameter
// @Tags jobs
// @Produce json
// @Param skills query string false "Filter jobs by skills (comma-separated)"
// @Success 200 {array} handlers.JobWithPosterResponse "List of jobs"
// @Router /api/jobs [get]
func NewGetJobsHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		skills := models.SplitSkills(r.URL.Query().Get("skills"))

		jobs, err := svc.List(r.Context(), skills)
		if err != nil {
			logger.Log.Errorw("failed to list jobs", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			return
		}

		resp := make([]JobWithPosterResponse, 0, len(jobs))
		for _, job := range jobs {
			resp = append(resp, newJobWithPosterResponse(job))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
