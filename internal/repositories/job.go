package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
)

const jobWithPosterColumns = `
	SELECT j.job_id, j.title, j.description, j.budget, j.duration,
	       j.skills_required, j.posted_by, j.created_at, j.updated_at,
	       u.name AS poster_name, u.email AS poster_email
	FROM jobs j
	JOIN users u ON u.user_id = j.posted_by
`

// JobReadRepository handles job read operations.
type JobReadRepository struct {
	db *sqlx.DB
}

func NewJobReadRepository(db *sqlx.DB) *JobReadRepository {
	return &JobReadRepository{db: db}
}

// GetByID returns a job with its poster resolved, or nil when absent.
func (r *JobReadRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*models.JobWithPoster, error) {
	query := jobWithPosterColumns + `WHERE j.job_id = $1`

	var job models.JobWithPoster
	err := r.db.GetContext(ctx, &job, query, jobID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{jobID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &job, nil
}

// List returns all jobs, newest first. A non-empty skills set narrows the
// result to jobs whose skill list intersects it.
func (r *JobReadRepository) List(ctx context.Context, skills []string) ([]models.JobWithPoster, error) {
	query := jobWithPosterColumns
	args := []any{}

	if len(skills) > 0 {
		query += `
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(j.skills_required) AS s(skill)
			WHERE s.skill = ANY($1)
		)`
		args = append(args, skills)
	}
	query += ` ORDER BY j.created_at DESC`

	jobs := []models.JobWithPoster{}
	err := r.db.SelectContext(ctx, &jobs, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(jobs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByPoster returns the jobs posted by one employer, newest first.
func (r *JobReadRepository) ListByPoster(ctx context.Context, postedBy uuid.UUID) ([]models.JobDB, error) {
	const query = `
		SELECT job_id, title, description, budget, duration,
		       skills_required, posted_by, created_at, updated_at
		FROM jobs
		WHERE posted_by = $1
		ORDER BY created_at DESC
	`

	jobs := []models.JobDB{}
	err := r.db.SelectContext(ctx, &jobs, query, postedBy)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{postedBy},
		"result", len(jobs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobWriteRepository handles job write operations.
type JobWriteRepository struct {
	db *sqlx.DB
}

func NewJobWriteRepository(db *sqlx.DB) *JobWriteRepository {
	return &JobWriteRepository{db: db}
}

// Save inserts a new job and returns the stored record.
func (r *JobWriteRepository) Save(ctx context.Context, title, description string, budget float64, duration int, skills models.SkillList, postedBy uuid.UUID) (*models.JobDB, error) {
	const query = `
		INSERT INTO jobs (job_id, title, description, budget, duration, skills_required, posted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING job_id, title, description, budget, duration, skills_required, posted_by, created_at, updated_at
	`
	args := []any{uuid.New(), title, description, budget, duration, skills, postedBy}

	var job models.JobDB
	err := r.db.GetContext(ctx, &job, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{title, postedBy},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &job, nil
}
