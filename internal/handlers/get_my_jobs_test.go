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

	"github.com/sbilibin2017/job-portal/internal/middlewares"
	"github.com/sbilibin2017/job-portal/internal/models"
)

func TestGetMyJobsHandler(t *testing.T) {
	employerID := uuid.New()
	employer := &models.AuthUser{UserID: employerID, Role: models.RoleEmployer}

	tests := []struct {
		name           string
		user           *models.AuthUser
		mockSetup      func(m *MockMyJobsLister)
		expectedStatus int
		expectedLen    int
		expectedBody   string
	}{
		{
			name: "Success",
			user: employer,
			mockSetup: func(m *MockMyJobsLister) {
				m.EXPECT().ListByPoster(gomock.Any(), employerID).Return([]models.JobDB{
					{JobID: uuid.New(), Title: "First", PostedBy: employerID},
					{JobID: uuid.New(), Title: "Second", PostedBy: employerID},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "Empty",
			user: employer,
			mockSetup: func(m *MockMyJobsLister) {
				m.EXPECT().ListByPoster(gomock.Any(), employerID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "NoUser",
			user:           nil,
			mockSetup:      func(m *MockMyJobsLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, no token"}`,
		},
		{
			name: "InternalError",
			user: employer,
			mockSetup: func(m *MockMyJobsLister) {
				m.EXPECT().ListByPoster(gomock.Any(), employerID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockMyJobsLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetMyJobsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/jobs/my-jobs", nil)
			if tt.user != nil {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), tt.user))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				return
			}

			var resp []JobResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp, tt.expectedLen)
		})
	}
}
