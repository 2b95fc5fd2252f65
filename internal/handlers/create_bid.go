package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/middlewares"
	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/services"
)

// BidCreator defines the interface that the service must implement.
type BidCreator interface {
	Create(ctx context.Context, jobID, freelancerID uuid.UUID, bidAmount float64, timeline int, message string) (*models.BidDetail, error)
}

// CreateBidRequest represents the JSON body for placing a bid
// swagger:model CreateBidRequest
type CreateBidRequest struct {
	// Bid amount
	// required: true
	// default: 900
	BidAmount float64 `json:"bidAmount"`

	// Proposed timeline in days
	// required: true
	// default: 25
	Timeline int `json:"timeline"`

	// Message to employer
	// required: true
	// default: I can complete this project within the timeline and budget
	Message string `json:"message"`
}

// BidderRef is a bid's freelancer resolved to public fields
// swagger:model BidderRef
type BidderRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CreatedBidJobRef is the job reference embedded in a creation response
// swagger:model CreatedBidJobRef
type CreatedBidJobRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// CreateBidResponse represents a successfully placed bid
// swagger:model CreateBidResponse
type CreateBidResponse struct {
	ID         uuid.UUID        `json:"id"`
	Job        CreatedBidJobRef `json:"job"`
	Freelancer BidderRef        `json:"freelancer"`
	BidAmount  float64          `json:"bidAmount"`
	Timeline   int              `json:"timeline"`
	Message    string           `json:"message"`
	Status     models.BidStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// NewCreateBidHandler returns an HTTP handler for placing a bid on a job.
// @Summary Create a new bid for a job
// @Description Places a Pending bid by the authenticated freelancer. A freelancer may bid once per job.
// @Tags bids
// @Accept json
// @Produce json
// @Param jobId path string true "ID of the job"
// @Param createBidRequest body handlers.CreateBidRequest true "Bid creation request"
// @Success 201 {object} handlers.CreateBidResponse "Bid created"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or already bid on this job"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not a freelancer"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Router /api/bids/{jobId} [post]
// @Security BearerAuth
func NewCreateBidHandler(svc BidCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		jobID, err := uuid.Parse(chi.URLParam(r, "jobId"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Job not found"})
			return
		}

		var req CreateBidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request body"})
			return
		}

		if req.BidAmount == 0 || req.Timeline == 0 || req.Message == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please provide all required fields"})
			return
		}

		bid, err := svc.Create(ctx, jobID, user.UserID, req.BidAmount, req.Timeline, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Job not found"})
			case errors.Is(err, services.ErrDuplicateBid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "You have already placed a bid on this job"})
			default:
				logger.Log.Errorw("failed to create bid", "jobID", jobID, "userID", user.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBidResponse{
			ID: bid.BidID,
			Job: CreatedBidJobRef{
				ID:    bid.JobID,
				Title: bid.JobTitle,
			},
			Freelancer: BidderRef{
				ID:    bid.FreelancerID,
				Name:  bid.FreelancerName,
				Email: bid.FreelancerEmail,
			},
			BidAmount: bid.BidAmount,
			Timeline:  bid.Timeline,
			Message:   bid.Message,
			Status:    bid.Status,
			CreatedAt: bid.CreatedAt,
			UpdatedAt: bid.UpdatedAt,
		})
	}
}
