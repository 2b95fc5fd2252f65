package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/middlewares"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// JobCreator defines the interface that the service must implement.
type JobCreator interface {
	Create(ctx context.Context, postedBy uuid.UUID, title, description string, budget float64, duration int, skills models.SkillList) (*models.JobDB, error)
}

// CreateJobRequest represents the JSON body for job creation.
// skillsRequired is canonically a JSON array of strings; tags are trimmed
// and empty entries dropped.
// swagger:model CreateJobRequest
type CreateJobRequest struct {
	// Job title
	// required: true
	// default: Full Stack Developer
	Title string `json:"title"`

	// Job description
	// required: true
	// default: Need a developer to build a Go application
	Description string `json:"description"`

	// Job budget
	// required: true
	// default: 1000
	Budget float64 `json:"budget"`

	// Job duration in days
	// required: true
	// default: 30
	Duration int `json:"duration"`

	// Skills required for the job
	// required: true
	// default: ["Go","PostgreSQL"]
	SkillsRequired []string `json:"skillsRequired"`
}

// JobResponse represents a job record in responses
// swagger:model JobResponse
type JobResponse struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Budget         float64          `json:"budget"`
	Duration       int              `json:"duration"`
	SkillsRequired models.SkillList `json:"skillsRequired"`
	PostedBy       uuid.UUID        `json:"postedBy"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func newJobResponse(job models.JobDB) JobResponse {
	return JobResponse{
		ID:             job.JobID,
		Title:          job.Title,
		Description:    job.Description,
		Budget:         job.Budget,
		Duration:       job.Duration,
		SkillsRequired: job.SkillsRequired,
		PostedBy:       job.PostedBy,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}

// NewCreateJobHandler returns an HTTP handler for job creation.
// @Summary Create a new job
// @Description Persists a job posted by the authenticated employer
// @Tags jobs
// @Accept json
// @Produce json
// @Param createJobRequest body handlers.CreateJobRequest true "Job creation request"
// @Success 201 {object} handlers.JobResponse "Job created"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not an employer"
// @Router /api/jobs/create [post]
// @Security BearerAuth
func NewCreateJobHandler(svc JobCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		var req CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request body"})
			return
		}

		skills := models.NormalizeSkills(req.SkillsRequired)
		if req.Title == "" || req.Description == "" || req.Budget == 0 || req.Duration == 0 || len(skills) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please provide all required fields"})
			return
		}

		job, err := svc.Create(ctx, user.UserID, req.Title, req.Description, req.Budget, req.Duration, skills)
		if err != nil {
			logger.Log.Errorw("failed to create job", "userID", user.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newJobResponse(*job))
	}
}
