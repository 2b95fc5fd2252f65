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
	"github.com/sbilibin2017/job-portal/internal/services"
)

func TestRejectBidHandler(t *testing.T) {
	bidID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	employer := &models.AuthUser{UserID: employerID, Role: models.RoleEmployer}

	rejected := &models.BidDB{
		BidID:        bidID,
		JobID:        jobID,
		FreelancerID: uuid.New(),
		BidAmount:    900,
		Status:       models.BidRejected,
	}

	tests := []struct {
		name           string
		user           *models.AuthUser
		bidParam       string
		mockSetup      func(m *MockBidRejector)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			user:     employer,
			bidParam: bidID.String(),
			mockSetup: func(m *MockBidRejector) {
				m.EXPECT().Reject(gomock.Any(), bidID, employerID).Return(rejected, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NoUser",
			user:           nil,
			bidParam:       bidID.String(),
			mockSetup:      func(m *MockBidRejector) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, no token"}`,
		},
		{
			name:           "MalformedBidID",
			user:           employer,
			bidParam:       "not-a-uuid",
			mockSetup:      func(m *MockBidRejector) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Bid not found"}`,
		},
		{
			name:     "BidNotFound",
			user:     employer,
			bidParam: bidID.String(),
			mockSetup: func(m *MockBidRejector) {
				m.EXPECT().Reject(gomock.Any(), bidID, employerID).Return(nil, services.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Bid not found"}`,
		},
		{
			name:     "NotJobOwner",
			user:     employer,
			bidParam: bidID.String(),
			mockSetup: func(m *MockBidRejector) {
				m.EXPECT().Reject(gomock.Any(), bidID, employerID).Return(nil, services.ErrNotJobOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Not authorized to reject this bid"}`,
		},
		{
			name:     "InternalError",
			user:     employer,
			bidParam: bidID.String(),
			mockSetup: func(m *MockBidRejector) {
				m.EXPECT().Reject(gomock.Any(), bidID, employerID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBidRejector(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRejectBidHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPatch, "/api/bids/"+tt.bidParam+"/reject", nil)
			req = withURLParam(req, "bidId", tt.bidParam)
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

			var resp BidResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, bidID, resp.ID)
			assert.Equal(t, models.BidRejected, resp.Status)
		})
	}
}
