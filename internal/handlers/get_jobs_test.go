package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/job-portal/internal/models"
)

func TestGetJobsHandler(t *testing.T) {
	jobID := uuid.New()
	posterID := uuid.New()

	jobs := []models.JobWithPoster{
		{
			JobDB: models.JobDB{
				JobID:          jobID,
				Title:          "Full Stack Developer",
				Budget:         1000,
				Duration:       30,
				SkillsRequired: models.SkillList{"Go"},
				PostedBy:       posterID,
			},
			PosterName:  "John Doe",
			PosterEmail: "john@example.com",
		},
	}

	tests := []struct {
		name           string
		target         string
		mockSetup      func(m *MockJobLister)
		expectedStatus int
		expectedLen    int
	}{
		{
			name:   "AllJobs",
			target: "/api/jobs",
			mockSetup: func(m *MockJobLister) {
				m.EXPECT().List(gomock.Any(), []string(nil)).Return(jobs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:   "FilteredBySkills",
			target: "/api/jobs?skills=Go,%20SQL",
			mockSetup: func(m *MockJobLister) {
				m.EXPECT().List(gomock.Any(), []string{"Go", "SQL"}).Return(jobs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:   "NoMatches",
			target: "/api/jobs?skills=COBOL",
			mockSetup: func(m *MockJobLister) {
				m.EXPECT().List(gomock.Any(), []string{"COBOL"}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:   "InternalError",
			target: "/api/jobs",
			mockSetup: func(m *MockJobLister) {
				m.EXPECT().List(gomock.Any(), []string(nil)).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockJobLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetJobsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.JSONEq(t, `{"message":"Server Error"}`, rr.Body.String())
				return
			}

			var resp []JobWithPosterResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, jobID, resp[0].ID)
				assert.Equal(t, "John Doe", resp[0].PostedBy.Name)
				assert.Equal(t, "john@example.com", resp[0].PostedBy.Email)
			}
		})
	}
}
