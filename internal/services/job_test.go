package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/job-portal/internal/models"
)

func TestJobService_Create(t *testing.T) {
	postedBy := uuid.New()
	skills := models.SkillList{"go", "sql"}
	saved := &models.JobDB{
		JobID:    uuid.New(),
		Title:    "Build an API",
		PostedBy: postedBy,
	}

	tests := []struct {
		name        string
		mockSetup   func(writer *MockJobWriter)
		expected    *models.JobDB
		expectedErr error
	}{
		{
			name: "Success",
			mockSetup: func(writer *MockJobWriter) {
				writer.EXPECT().
					Save(gomock.Any(), "Build an API", "REST backend", 500.0, 14, skills, postedBy).
					Return(saved, nil)
			},
			expected: saved,
		},
		{
			name: "WriterError",
			mockSetup: func(writer *MockJobWriter) {
				writer.EXPECT().
					Save(gomock.Any(), "Build an API", "REST backend", 500.0, 14, skills, postedBy).
					Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockJobReader(ctrl)
			writer := NewMockJobWriter(ctrl)
			tt.mockSetup(writer)

			svc := NewJobService(reader, writer)

			job, err := svc.Create(context.Background(), postedBy, "Build an API", "REST backend", 500.0, 14, skills)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, job)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, job)
			}
		})
	}
}

func TestJobService_GetByID(t *testing.T) {
	jobID := uuid.New()

	tests := []struct {
		name        string
		mockSetup   func(reader *MockJobReader)
		expectedErr error
	}{
		{
			name: "Success",
			mockSetup: func(reader *MockJobReader) {
				reader.EXPECT().GetByID(gomock.Any(), jobID).
					Return(&models.JobWithPoster{JobDB: models.JobDB{JobID: jobID}}, nil)
			},
		},
		{
			name: "NotFound",
			mockSetup: func(reader *MockJobReader) {
				reader.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, nil)
			},
			expectedErr: ErrJobNotFound,
		},
		{
			name: "ReaderError",
			mockSetup: func(reader *MockJobReader) {
				reader.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockJobReader(ctrl)
			writer := NewMockJobWriter(ctrl)
			tt.mockSetup(reader)

			svc := NewJobService(reader, writer)

			job, err := svc.GetByID(context.Background(), jobID)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, job)
			} else {
				require.NoError(t, err)
				assert.Equal(t, jobID, job.JobID)
			}
		})
	}
}

func TestJobService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockJobReader(ctrl)
	writer := NewMockJobWriter(ctrl)

	jobs := []models.JobWithPoster{
		{JobDB: models.JobDB{JobID: uuid.New(), Title: "First"}},
		{JobDB: models.JobDB{JobID: uuid.New(), Title: "Second"}},
	}
	reader.EXPECT().List(gomock.Any(), []string{"go"}).Return(jobs, nil)

	svc := NewJobService(reader, writer)

	got, err := svc.List(context.Background(), []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}

func TestJobService_ListByPoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockJobReader(ctrl)
	writer := NewMockJobWriter(ctrl)

	postedBy := uuid.New()
	jobs := []models.JobDB{{JobID: uuid.New(), PostedBy: postedBy}}
	reader.EXPECT().ListByPoster(gomock.Any(), postedBy).Return(jobs, nil)

	svc := NewJobService(reader, writer)

	got, err := svc.ListByPoster(context.Background(), postedBy)
	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}
