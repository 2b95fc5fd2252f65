package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// ErrUniqueViolation is returned when an insert hits a unique constraint,
// e.g. a second bid by the same freelancer on the same job.
var ErrUniqueViolation = errors.New("unique constraint violation")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const bidDetailColumns = `
	SELECT b.bid_id, b.job_id, b.freelancer_id, b.bid_amount, b.timeline,
	       b.message, b.status, b.created_at, b.updated_at,
	       u.name AS freelancer_name, u.email AS freelancer_email,
	       j.title AS job_title, j.budget AS job_budget, j.duration AS job_duration,
	       j.skills_required AS job_skills, j.posted_by AS job_posted_by
	FROM bids b
	JOIN users u ON u.user_id = b.freelancer_id
	JOIN jobs j ON j.job_id = b.job_id
`

// BidReadRepository handles bid read operations.
type BidReadRepository struct {
	db *sqlx.DB
}

func NewBidReadRepository(db *sqlx.DB) *BidReadRepository {
	return &BidReadRepository{db: db}
}

// GetByID returns a bid with freelancer and job resolved, or nil when absent.
func (r *BidReadRepository) GetByID(ctx context.Context, bidID uuid.UUID) (*models.BidDetail, error) {
	query := bidDetailColumns + `WHERE b.bid_id = $1`

	var bid models.BidDetail
	err := r.db.GetContext(ctx, &bid, query, bidID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{bidID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bid, nil
}

// ListByJob returns all bids placed on a job.
func (r *BidReadRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.BidDetail, error) {
	query := bidDetailColumns + `WHERE b.job_id = $1 ORDER BY b.created_at`

	bids := []models.BidDetail{}
	err := r.db.SelectContext(ctx, &bids, query, jobID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{jobID},
		"result", len(bids),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return bids, nil
}

// ListByFreelancer returns all bids placed by one freelancer, newest first.
func (r *BidReadRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.BidDetail, error) {
	query := bidDetailColumns + `WHERE b.freelancer_id = $1 ORDER BY b.created_at DESC`

	bids := []models.BidDetail{}
	err := r.db.SelectContext(ctx, &bids, query, freelancerID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{freelancerID},
		"result", len(bids),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return bids, nil
}

// BidWriteRepository handles bid write operations.
type BidWriteRepository struct {
	db *sqlx.DB
}

func NewBidWriteRepository(db *sqlx.DB) *BidWriteRepository {
	return &BidWriteRepository{db: db}
}

// Save inserts a new Pending bid. The UNIQUE (job_id, freelancer_id)
// constraint turns a duplicate bid into ErrUniqueViolation.
func (r *BidWriteRepository) Save(ctx context.Context, jobID, freelancerID uuid.UUID, bidAmount float64, timeline int, message string) (*models.BidDB, error) {
	const query = `
		INSERT INTO bids (bid_id, job_id, freelancer_id, bid_amount, timeline, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING bid_id, job_id, freelancer_id, bid_amount, timeline, message, status, created_at, updated_at
	`
	args := []any{uuid.New(), jobID, freelancerID, bidAmount, timeline, message, models.BidPending}

	var bid models.BidDB
	err := r.db.GetContext(ctx, &bid, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{jobID, freelancerID, bidAmount},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// Accept marks one bid Accepted and every sibling bid on the same job
// Rejected, inside a single transaction.
func (r *BidWriteRepository) Accept(ctx context.Context, bidID, jobID uuid.UUID) (*models.BidDB, error) {
	const acceptQuery = `
		UPDATE bids
		SET status = $2, updated_at = NOW()
		WHERE bid_id = $1
		RETURNING bid_id, job_id, freelancer_id, bid_amount, timeline, message, status, created_at, updated_at
	`
	const rejectSiblingsQuery = `
		UPDATE bids
		SET status = $3, updated_at = NOW()
		WHERE job_id = $2 AND bid_id <> $1 AND status <> $3
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return nil, err
	}
	defer tx.Rollback()

	var bid models.BidDB
	if err := tx.GetContext(ctx, &bid, acceptQuery, bidID, models.BidAccepted); err != nil {
		logger.Log.Infow("query",
			"sql", strings.Join(strings.Fields(acceptQuery), " "),
			"args", []any{bidID},
			"error", err,
		)
		return nil, err
	}

	res, err := tx.ExecContext(ctx, rejectSiblingsQuery, bidID, jobID, models.BidRejected)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(rejectSiblingsQuery), " "),
		"args", []any{bidID, jobID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return nil, err
	}
	return &bid, nil
}

// Reject marks one bid Rejected; sibling bids are untouched.
func (r *BidWriteRepository) Reject(ctx context.Context, bidID uuid.UUID) (*models.BidDB, error) {
	const query = `
		UPDATE bids
		SET status = $2, updated_at = NOW()
		WHERE bid_id = $1
		RETURNING bid_id, job_id, freelancer_id, bid_amount, timeline, message, status, created_at, updated_at
	`

	var bid models.BidDB
	err := r.db.GetContext(ctx, &bid, query, bidID, models.BidRejected)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{bidID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &bid, nil
}
