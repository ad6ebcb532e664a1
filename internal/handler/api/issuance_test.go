//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/handler/api"
	resdto "flash-coupon/internal/handler/dto/response"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/tests/common/httptest"
	commandsmock "flash-coupon/tests/mock/commands"
	queriesmock "flash-coupon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IssuanceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIssuanceCommands
	mockStats    *queriesmock.MockStatsQueries
}

func (s *IssuanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIssuanceCommands(s.mockCtrl)
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	h := api.NewIssuanceHandler(s.mockCommands, s.mockStats)

	s.router.POST("/api/coupons/:id/issue", h.Issue)
	s.router.GET("/api/coupons/:id/issued/:userId", h.HasIssued)
}

func (s *IssuanceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIssuanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(IssuanceHandlerTestSuite))
}

// ================================================================================
// TestIssue
// ================================================================================

func (s *IssuanceHandlerTestSuite) TestIssue() {
	couponID := uuid.New()
	userID := uuid.New()
	url := "/api/coupons/" + couponID.String() + "/issue"
	body := map[string]any{"userId": userID.String()}

	s.Run("success: every allocation outcome is a 200", func() {
		remaining := int64(41)
		cases := []struct {
			name   string
			result *commands.IssueResult
		}{
			{name: "SUCCESS carries remaining", result: &commands.IssueResult{Status: issuance.AllocationSuccess, Remaining: &remaining}},
			{name: "DUPLICATED", result: &commands.IssueResult{Status: issuance.AllocationDuplicated}},
			{name: "SOLD_OUT", result: &commands.IssueResult{Status: issuance.AllocationSoldOut}},
			{name: "NOT_STARTED", result: &commands.IssueResult{Status: issuance.AllocationNotStarted}},
			{name: "EXPIRED", result: &commands.IssueResult{Status: issuance.AllocationExpired}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Issue(gomock.Any(), couponID, userID).Return(tc.result, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

				var response resdto.IssueResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.Equal(tc.result.Status.String(), response.Status)
				s.Equal(couponID.String(), response.CouponID)
				s.Equal(userID.String(), response.UserID)
				s.Equal(tc.result.Remaining, response.Remaining)
			})
		}
	})

	s.Run("success: remaining is null unless SUCCESS", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), couponID, userID).
			Return(&commands.IssueResult{Status: issuance.AllocationSoldOut}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"remaining":null`)
	})

	s.Run("error: 400 Bad Request for invalid coupon id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/coupons/invalid-uuid/issue", body, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: 400 Bad Request on invalid body", func() {
		cases := []struct {
			name string
			body any
		}{
			{name: "missing userId", body: map[string]any{}},
			{name: "malformed userId", body: map[string]any{"userId": "not-a-uuid"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "unknown coupon",
				commandsError:  commands.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "NOT_FOUND",
			},
			{
				name:           "unknown user",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "NOT_FOUND",
			},
			{
				name:           "allocation store unavailable",
				commandsError:  errs.Mark(errors.New("dial tcp: connection refused"), errs.ErrAllocationStoreUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedCode:   "SERVICE_UNAVAILABLE",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "INTERNAL_ERROR",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Issue(gomock.Any(), couponID, userID).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestHasIssued
// ================================================================================

func (s *IssuanceHandlerTestSuite) TestHasIssued() {
	couponID := uuid.New()
	userID := uuid.New()
	url := "/api/coupons/" + couponID.String() + "/issued/" + userID.String()

	for _, issued := range []bool{true, false} {
		s.Run("success: reports the marker", func() {
			s.mockStats.EXPECT().HasIssued(gomock.Any(), couponID, userID).Return(issued, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

			var response resdto.IssuedStatusResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(issued, response.Issued)
		})
	}

	s.Run("error: 400 Bad Request for invalid user id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/"+couponID.String()+"/issued/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})

	s.Run("error: 503 when the allocation store is down", func() {
		s.mockStats.EXPECT().HasIssued(gomock.Any(), couponID, userID).
			Return(false, errs.Mark(errors.New("i/o timeout"), errs.ErrAllocationStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE")
	})
}
