package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/services"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetJobHandler(t *testing.T) {
	jobID := uuid.New()
	posterID := uuid.New()

	tests := []struct {
		name           string
		jobParam       string
		mockSetup      func(m *MockJobGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			jobParam: jobID.String(),
			mockSetup: func(m *MockJobGetter) {
				m.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.JobWithPoster{
					JobDB: models.JobDB{
						JobID:    jobID,
						Title:    "Full Stack Developer",
						PostedBy: posterID,
					},
					PosterName:  "John Doe",
					PosterEmail: "john@example.com",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "MalformedID",
			jobParam:       "not-a-uuid",
			mockSetup:      func(m *MockJobGetter) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Job not found"}`,
		},
		{
			name:     "NotFound",
			jobParam: jobID.String(),
			mockSetup: func(m *MockJobGetter) {
				m.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, services.ErrJobNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Job not found"}`,
		},
		{
			name:     "InternalError",
			jobParam: jobID.String(),
			mockSetup: func(m *MockJobGetter) {
				m.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockJobGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetJobHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+tt.jobParam, nil)
			req = withURLParam(req, "jobId", tt.jobParam)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				return
			}

			var resp JobWithPosterResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, jobID, resp.ID)
			assert.Equal(t, "John Doe", resp.PostedBy.Name)
		})
	}
}
