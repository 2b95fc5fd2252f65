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

// MyBidsLister defines the interface that the service must implement.
type MyBidsLister interface {
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.BidDetail, error)
}

// MyBidJobRef is the job reference embedded in a my-bids response
// swagger:model MyBidJobRef
type MyBidJobRef struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Budget         float64          `json:"budget"`
	Duration       int              `json:"duration"`
	SkillsRequired models.SkillList `json:"skillsRequired"`
}

// MyBidResponse is one bid in a my-bids response
// swagger:model MyBidResponse
type MyBidResponse struct {
	ID         uuid.UUID        `json:"id"`
	Job        MyBidJobRef      `json:"job"`
	Freelancer uuid.UUID        `json:"freelancer"`
	BidAmount  float64          `json:"bidAmount"`
	Timeline   int              `json:"timeline"`
	Message    string           `json:"message"`
	Status     models.BidStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// NewGetMyBidsHandler returns an HTTP handler listing the authenticated
// freelancer's bids, newest first.
// @Summary List own bids
// @Description Returns bids placed by the authenticated freelancer with job details resolved
// @Tags bids
// @Produce json
// @Success 200 {array} handlers.MyBidResponse "List of bids by the freelancer"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not a freelancer"
// @Router /api/bids/my-bids [get]
// @Security BearerAuth
func NewGetMyBidsHandler(svc MyBidsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		bids, err := svc.ListByFreelancer(ctx, user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list bids", "userID", user.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			return
		}

		resp := make([]MyBidResponse, 0, len(bids))
		for _, bid := range bids {
			resp = append(resp, MyBidResponse{
				ID: bid.BidID,
				Job: MyBidJobRef{
					ID:             bid.JobID,
					Title:          bid.JobTitle,
					Budget:         bid.JobBudget,
					Duration:       bid.JobDuration,
					SkillsRequired: bid.JobSkills,
				},
				Freelancer: bid.FreelancerID,
				BidAmount:  bid.BidAmount,
				Timeline:   bid.Timeline,
				Message:    bid.Message,
				Status:     bid.Status,
				CreatedAt:  bid.CreatedAt,
				UpdatedAt:  bid.UpdatedAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
