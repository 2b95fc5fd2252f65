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

func TestGetMyBidsHandler(t *testing.T) {
	freelancerID := uuid.New()
	jobID := uuid.New()
	freelancer := &models.AuthUser{UserID: freelancerID, Role: models.RoleFreelancer}

	bids := []models.BidDetail{
		{
			BidDB: models.BidDB{
				BidID:        uuid.New(),
				JobID:        jobID,
				FreelancerID: freelancerID,
				BidAmount:    900,
				Status:       models.BidPending,
			},
			JobTitle:    "Full Stack Developer",
			JobBudget:   1000,
			JobDuration: 30,
			JobSkills:   models.SkillList{"Go"},
		},
	}

	tests := []struct {
		name           string
		user           *models.AuthUser
		mockSetup      func(m *MockMyBidsLister)
		expectedStatus int
		expectedLen    int
		expectedBody   string
	}{
		{
			name: "Success",
			user: freelancer,
			mockSetup: func(m *MockMyBidsLister) {
				m.EXPECT().ListByFreelancer(gomock.Any(), freelancerID).Return(bids, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name: "Empty",
			user: freelancer,
			mockSetup: func(m *MockMyBidsLister) {
				m.EXPECT().ListByFreelancer(gomock.Any(), freelancerID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "NoUser",
			user:           nil,
			mockSetup:      func(m *MockMyBidsLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, no token"}`,
		},
		{
			name: "InternalError",
			user: freelancer,
			mockSetup: func(m *MockMyBidsLister) {
				m.EXPECT().ListByFreelancer(gomock.Any(), freelancerID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockMyBidsLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetMyBidsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/bids/my-bids", nil)
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

			var resp []MyBidResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, jobID, resp[0].Job.ID)
				assert.Equal(t, "Full Stack Developer", resp[0].Job.Title)
				assert.Equal(t, freelancerID, resp[0].Freelancer)
			}
		})
	}
}
