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
	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/services"
)

// BidsByJobLister defines the interface that the service must implement.
type BidsByJobLister interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.BidDetail, error)
}

// JobBidJobRef is the job reference embedded in a list-by-job response
// swagger:model JobBidJobRef
type JobBidJobRef struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	PostedBy uuid.UUID `json:"postedBy"`
}

// JobBidResponse is one bid in a list-by-job response
// swagger:model JobBidResponse
type JobBidResponse struct {
	ID         uuid.UUID        `json:"id"`
	Job        JobBidJobRef     `json:"job"`
	Freelancer BidderRef        `json:"freelancer"`
	BidAmount  float64          `json:"bidAmount"`
	Timeline   int              `json:"timeline"`
	Message    string           `json:"message"`
	Status     models.BidStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// NewGetBidsHandler returns an HTTP handler listing all bids on a job.
// @Summary Get all bids for a job
// @Description Returns bids with freelancer and job resolved
// @Tags bids
// @Produce json
// @Param jobId path string true "ID of the job"
// @Success 200 {array} handlers.JobBidResponse "List of bids for the job"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Router /api/bids/{jobId} [get]
func NewGetBidsHandler(svc BidsByJobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		jobID, err := uuid.Parse(chi.URLParam(r, "jobId"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Job not found"})
			return
		}

		bids, err := svc.ListByJob(r.Context(), jobID)
		if err != nil {
			if errors.Is(err, services.ErrJobNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Job not found"})
				return
			}
			logger.Log.Errorw("failed to list bids", "jobID", jobID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			return
		}

		resp := make([]JobBidResponse, 0, len(bids))
		for _, bid := range bids {
			resp = append(resp, JobBidResponse{
				ID: bid.BidID,
				Job: JobBidJobRef{
					ID:       bid.JobID,
					Title:    bid.JobTitle,
					PostedBy: bid.JobPostedBy,
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
