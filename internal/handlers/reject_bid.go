package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/middlewares"
	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/services"
)

// BidRejector defines the interface that the service must implement.
type BidRejector interface {
	Reject(ctx context.Context, bidID, actorID uuid.UUID) (*models.BidDB, error)
}

// NewRejectBidHandler returns an HTTP handler for rejecting a bid.
// Sibling bids are untouched.
// @Summary Reject a bid (job owner only)
// @Description Marks the bid Rejected
// @Tags bids
// @Produce json
// @Param bidId path string true "ID of the bid"
// @Success 200 {object} handlers.BidResponse "Rejected bid"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Acting user does not own the job"
// @Failure 404 {object} handlers.ErrorResponse "Bid not found"
// @Router /api/bids/{bidId}/reject [patch]
// @Security BearerAuth
func NewRejectBidHandler(svc BidRejector) http.HandlerFunc {
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

		bid, err := svc.Reject(ctx, bidID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBidNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Bid not found"})
			case errors.Is(err, services.ErrNotJobOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Not authorized to reject this bid"})
			default:
				logger.Log.Errorw("failed to reject bid", "bidID", bidID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server Error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newBidResponse(*bid))
	}
}
