package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/repositories"
)

// Error variables
var (
	ErrBidNotFound  = errors.New("bid not found")
	ErrDuplicateBid = errors.New("bid already placed on this job")
	ErrNotJobOwner  = errors.New("acting user does not own the job")
)

// BidReader defines read-only operations for bids.
type BidReader interface {
	GetByID(ctx context.Context, bidID uuid.UUID) (*models.BidDetail, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.BidDetail, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.BidDetail, error)
}

// BidWriter defines write operations for bids.
type BidWriter interface {
	Save(ctx context.Context, jobID, freelancerID uuid.UUID, bidAmount float64, timeline int, message string) (*models.BidDB, error)
	Accept(ctx context.Context, bidID, jobID uuid.UUID) (*models.BidDB, error)
	Reject(ctx context.Context, bidID uuid.UUID) (*models.BidDB, error)
}

// BidJobReader resolves jobs referenced by bids.
type BidJobReader interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.JobWithPoster, error)
}

// BidService handles the bid lifecycle.
type BidService struct {
	reader BidReader
	writer BidWriter
	jobs   BidJobReader
}

// NewBidService creates a new BidService instance.
func NewBidService(reader BidReader, writer BidWriter, jobs BidJobReader) *BidService {
	return &BidService{
		reader: reader,
		writer: writer,
		jobs:   jobs,
	}
}

// Create places a Pending bid on a job. The store's unique constraint
// rejects a second bid by the same freelancer.
func (svc *BidService) Create(ctx context.Context, jobID, freelancerID uuid.UUID, bidAmount float64, timeline int, message string) (*models.BidDetail, error) {
	job, err := svc.jobs.GetByID(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to check job exists", "jobID", jobID, "err", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	bid, err := svc.writer.Save(ctx, jobID, freelancerID, bidAmount, timeline, message)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrDuplicateBid
		}
		logger.Log.Errorw("failed to save bid", "jobID", jobID, "err", err)
		return nil, err
	}

	detail, err := svc.reader.GetByID(ctx, bid.BidID)
	if err != nil {
		logger.Log.Errorw("failed to load created bid", "bidID", bid.BidID, "err", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrBidNotFound
	}
	return detail, nil
}

// ListByJob returns the bids placed on an existing job.
func (svc *BidService) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.BidDetail, error) {
	job, err := svc.jobs.GetByID(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to check job exists", "jobID", jobID, "err", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	bids, err := svc.reader.ListByJob(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to list bids", "jobID", jobID, "err", err)
		return nil, err
	}
	return bids, nil
}

// Accept marks a bid Accepted and rejects its siblings. Only the owner
// of the referenced job may accept. Idempotent for an accepted bid.
func (svc *BidService) Accept(ctx context.Context, bidID, actorID uuid.UUID) (*models.BidDB, error) {
	detail, err := svc.reader.GetByID(ctx, bidID)
	if err != nil {
		logger.Log.Errorw("failed to get bid", "bidID", bidID, "err", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrBidNotFound
	}
	if detail.JobPostedBy != actorID {
		return nil, ErrNotJobOwner
	}

	bid, err := svc.writer.Accept(ctx, bidID, detail.JobID)
	if err != nil {
		logger.Log.Errorw("failed to accept bid", "bidID", bidID, "err", err)
		return nil, err
	}
	return bid, nil
}

// Reject marks one bid Rejected without touching its siblings.
func (svc *BidService) Reject(ctx context.Context, bidID, actorID uuid.UUID) (*models.BidDB, error) {
	detail, err := svc.reader.GetByID(ctx, bidID)
	if err != nil {
		logger.Log.Errorw("failed to get bid", "bidID", bidID, "err", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrBidNotFound
	}
	if detail.JobPostedBy != actorID {
		return nil, ErrNotJobOwner
	}

	bid, err := svc.writer.Reject(ctx, bidID)
	if err != nil {
		logger.Log.Errorw("failed to reject bid", "bidID", bidID, "err", err)
		return nil, err
	}
	return bid, nil
}

// ListByFreelancer returns the bids placed by one freelancer, newest first.
func (svc *BidService) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.BidDetail, error) {
	bids, err := svc.reader.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		logger.Log.Errorw("failed to list bids by freelancer", "freelancerID", freelancerID, "err", err)
		return nil, err
	}
	return bids, nil
}
