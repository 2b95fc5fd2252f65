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

// BidAcceptor defines the interface that the service must implement.
type BidAcceptor interface {
	Accept(ctx context.Context, bidID, actorID uuid.UUID) (*models.BidDB, error)
}

// BidResponse represents a bid record in responses
// swagger:model BidResponse
type BidResponse struct {
	ID         uuid.UUID        `json:"id"`
	Job        uuid.UUID        `json:"job"`
	Freelancer uuid.UUID        `json:"freelancer"`
	BidAmount  float64          `json:"bidAmount"`
	Timeline   int              `json:"timeline"`
	Message    string           `json:"message"`
	Status     models.BidStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func newBidResponse(bid models.BidDB) BidResponse {
	return BidResponse{
		ID:         bid.BidID,
		Job:        bid.JobID,
		Freelancer: bid.FreelancerID,
		BidAmount:  bid.BidAmount,
		Timeline:   bid.Timeline,
		Message:    bid.Message,
		Status:     bid.Status,
		CreatedAt:  bid.CreatedAt,
		UpdatedAt:  bid.UpdatedAt,
	}
}

// NewAcceptBidHandler returns an HTTP handler for accepting a bid.
// Accepting marks every sibling bid on the same job Rejected.
// @Summary Accept a bid (job owner only)
// @Description Marks the bid Accepted and rejects all other bids on the same job in one transaction
// @Tags bids
// @Produce json
// @Param bidId path string true "ID of the bid"
// @Success 200 {object} handlers.BidResponse "Accepted bid"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Acting user does not own the job"
// @Failure 404 {object} handlers.ErrorResponse "Bid not found"
// @Router /api/bids/{bidId}/accept [patch]
// @Security BearerAuth
func NewAcceptBidHandler(svc BidAcceptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		bidID, err := uuid.Parse(chi.URLParam(r, "bidId"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Bid not found"})
			return
		}

		bid, err := svc.Accept(ctx, bidID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBidNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Bid not found"})
			case errors.Is(err, services.ErrNotJobOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized to accept this bid"})
			default:
				logger.Log.Errorw("failed to accept bid", "bidID", bidID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newBidResponse(*bid))
	}
}
