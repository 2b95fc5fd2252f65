package handlers

import (
	"bytes"
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
	"github.com/sbilibin2017/job-portal/internal/services"
)

func TestCreateBidHandler(t *testing.T) {
	jobID := uuid.New()
	bidID := uuid.New()
	freelancerID := uuid.New()
	freelancer := &models.AuthUser{UserID: freelancerID, Role: models.RoleFreelancer}

	detail := &models.BidDetail{
		BidDB: models.BidDB{
			BidID:        bidID,
			JobID:        jobID,
			FreelancerID: freelancerID,
			BidAmount:    900,
			Timeline:     25,
			Message:      "I can do this",
			Status:       models.BidPending,
		},
		FreelancerName:  "Bob",
		FreelancerEmail: "bob@example.com",
		JobTitle:        "Full Stack Developer",
	}

	tests := []struct {
		name           string
		user           *models.AuthUser
		jobParam       string
		body           string
		mockSetup      func(m *MockBidCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			user:     freelancer,
			jobParam: jobID.String(),
			body:     `{"bidAmount":900,"timeline":25,"message":"I can do this"}`,
			mockSetup: func(m *MockBidCreator) {
				m.EXPECT().
					Create(gomock.Any(), jobID, freelancerID, 900.0, 25, "I can do this").
					Return(detail, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "NoUser",
			user:           nil,
			jobParam:       jobID.String(),
			body:           `{"bidAmount":900,"timeline":25,"message":"x"}`,
			mockSetup:      func(m *MockBidCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, no token"}`,
		},
		{
			name:           "MalformedJobID",
			user:           freelancer,
			jobParam:       "not-a-uuid",
			body:           `{"bidAmount":900,"timeline":25,"message":"x"}`,
			mockSetup:      func(m *MockBidCreator) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Job not found"}`,
		},
		{
			name:           "MissingFields",
			user:           freelancer,
			jobParam:       jobID.String(),
			body:           `{"bidAmount":900}`,
			mockSetup:      func(m *MockBidCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Please provide all required fields"}`,
		},
		{
			name:     "JobNotFound",
			user:     freelancer,
			jobParam: jobID.String(),
			body:     `{"bidAmount":900,"timeline":25,"message":"I can do this"}`,
			mockSetup: func(m *MockBidCreator) {
				m.EXPECT().
					Create(gomock.Any(), jobID, freelancerID, 900.0, 25, "I can do this").
					Return(nil, services.ErrJobNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Job not found"}`,
		},
		{
			name:     "DuplicateBid",
			user:     freelancer,
			jobParam: jobID.String(),
			body:     `{"bidAmount":900,"timeline":25,"message":"I can do this"}`,
			mockSetup: func(m *MockBidCreator) {
				m.EXPECT().
					Create(gomock.Any(), jobID, freelancerID, 900.0, 25, "I can do this").
					Return(nil, services.ErrDuplicateBid)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"You have already placed a bid on this job"}`,
		},
		{
			name:     "InternalError",
			user:     freelancer,
			jobParam: jobID.String(),
			body:     `{"bidAmount":900,"timeline":25,"message":"I can do this"}`,
			mockSetup: func(m *MockBidCreator) {
				m.EXPECT().
					Create(gomock.Any(), jobID, freelancerID, 900.0, 25, "I can do this").
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBidCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCreateBidHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/bids/"+tt.jobParam, bytes.NewBufferString(tt.body))
			req = withURLParam(req, "jobId", tt.jobParam)
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

			var resp CreateBidResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, bidID, resp.ID)
			assert.Equal(t, jobID, resp.Job.ID)
			assert.Equal(t, "Full Stack Developer", resp.Job.Title)
			assert.Equal(t, "Bob", resp.Freelancer.Name)
			assert.Equal(t, models.BidPending, resp.Status)
		})
	}
}
