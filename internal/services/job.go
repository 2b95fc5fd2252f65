package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// ErrJobNotFound is returned when the referenced job does not exist.
var ErrJobNotFound = errors.New("job not found")

// JobReader defines read-only operations for jobs.
type JobReader interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.JobWithPoster, error)
	List(ctx context.Context, skills []string) ([]models.JobWithPoster, error)
	ListByPoster(ctx context.Context, postedBy uuid.UUID) ([]models.JobDB, error)
}

// JobWriter defines write operations for jobs.
type JobWriter interface {
	Save(ctx context.Context, title, description string, budget float64, duration int, skills models.SkillList, postedBy uuid.UUID) (*models.JobDB, error)
}

// JobService handles job posting and lookup.
type JobService struct {
	reader JobReader
	writer JobWriter
}

// NewJobService creates a new JobService instance.
func NewJobService(reader JobReader, writer JobWriter) *JobService {
	return &JobService{
		reader: reader,
		writer: writer,
	}
}

// Create persists a new job posted by the given employer.
func (svc *JobService) Create(ctx context.Context, postedBy uuid.UUID, title, description string, budget float64, duration int, skills models.SkillList) (*models.JobDB, error) {
	job, err := svc.writer.Save(ctx, title, description, budget, duration, skills, postedBy)
	if err != nil {
		logger.Log.Errorw("failed to save job", "err", err)
		return nil, err
	}
	return job, nil
}

// List returns jobs with posters resolved, optionally narrowed to those
// whose skill list intersects the given set.
func (svc *JobService) List(ctx context.Context, skills []string) ([]models.JobWithPoster, error) {
	jobs, err := svc.reader.List(ctx, skills)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "err", err)
		return nil, err
	}
	return jobs, nil
}

// GetByID returns one job with its poster resolved.
func (svc *JobService) GetByID(ctx context.Context, jobID uuid.UUID) (*models.JobWithPoster, error) {
	job, err := svc.reader.GetByID(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", jobID, "err", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// ListByPoster returns the jobs owned by one employer.
func (svc *JobService) ListByPoster(ctx context.Context, postedBy uuid.UUID) ([]models.JobDB, error) {
	jobs, err := svc.reader.ListByPoster(ctx, postedBy)
	if err != nil {
		logger.Log.Errorw("failed to list jobs by poster", "postedBy", postedBy, "err", err)
		return nil, err
	}
	return jobs, nil
}
