//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/handler/api"
	resdto "flash-coupon/internal/handler/dto/response"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"
	"flash-coupon/tests/common/builder"
	"flash-coupon/tests/common/httptest"
	commandsmock "flash-coupon/tests/mock/commands"
	queriesmock "flash-coupon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserCouponHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLedger  *commandsmock.MockLedgerCommands
	mockQueries *queriesmock.MockIssuedCouponQueries
}

func (s *UserCouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = commandsmock.NewMockLedgerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockIssuedCouponQueries(s.mockCtrl)
	h := api.NewUserCouponHandler(s.mockLedger, s.mockQueries)

	s.router.GET("/api/user/coupons/my-coupons", h.MyCoupons)
	s.router.POST("/api/user/coupons/:issuedCouponId/use", h.Use)
}

func (s *UserCouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserCouponHandlerTestSuite))
}

// ================================================================================
// TestMyCoupons
// ================================================================================

func (s *UserCouponHandlerTestSuite) TestMyCoupons() {
	userID := uuid.New()
	base := "/api/user/coupons/my-coupons?userId=" + userID.String()

	expired := builder.NewIssuedCouponBuilder().WithUser(userID).BuildView()
	expired.IsExpired = true
	page := &queries.IssuedCouponPage{
		Items: []queries.IssuedCouponView{builder.NewIssuedCouponBuilder().WithUser(userID).BuildView(), expired},
		Meta:  queries.PageMeta{Total: 2, Page: 1, Limit: 10, TotalPages: 1},
	}

	s.Run("success: defaults are left to the query layer", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), userID, (*issuance.Status)(nil), 0, 0).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")

		var response resdto.MyCouponsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Data, 2)
		s.False(response.Data[0].IsExpired)
		s.True(response.Data[1].IsExpired)
		s.Equal(page.Meta, response.Meta)
	})

	s.Run("success: status, page and limit are forwarded", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), userID, gomock.Any(), 2, 5).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, status *issuance.Status, _, _ int) (*queries.IssuedCouponPage, error) {
				s.Require().NotNil(status)
				s.Equal(issuance.StatusUsed, *status)
				return &queries.IssuedCouponPage{Items: []queries.IssuedCouponView{}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&status=USED&page=2&limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		cases := []struct {
			name string
			url  string
		}{
			{name: "missing userId", url: "/api/user/coupons/my-coupons"},
			{name: "malformed userId", url: "/api/user/coupons/my-coupons?userId=abc"},
			{name: "unknown status", url: base + "&status=PENDING"},
			{name: "negative page", url: base + "&page=-1&limit=5"},
			{name: "limit above 100", url: base + "&limit=101"},
			{name: "non-numeric page", url: base + "&page=two"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: 500 when the ledger read fails", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	})
}

// ================================================================================
// TestUse
// ================================================================================

func (s *UserCouponHandlerTestSuite) TestUse() {
	userID := uuid.New()
	issuedID := uuid.New()
	url := "/api/user/coupons/" + issuedID.String() + "/use"
	body := map[string]any{"userId": userID.String()}

	s.Run("success: returns the used coupon", func() {
		usedAt := builder.Now()
		used := builder.NewIssuedCouponBuilder().With(func(b *builder.IssuedCouponBuilder) {
			b.ID = issuedID
			b.UserID = userID
		}).Used(usedAt).BuildDomain()
		s.mockLedger.EXPECT().Use(gomock.Any(), issuedID, userID).Return(used, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.UseCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(issuedID.String(), response.Data.ID)
		s.Equal("USED", response.Data.Status)
		s.Require().NotNil(response.Data.UsedAt)
		s.True(usedAt.Equal(*response.Data.UsedAt))
	})

	s.Run("error: 400 Bad Request for invalid issued coupon id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/user/coupons/xyz/use", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid issued coupon id")
	})

	s.Run("error: 400 Bad Request without userId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "issued coupon not found",
				commandsError:  commands.ErrIssuedCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "NOT_FOUND",
			},
			{
				name:           "another user's coupon",
				commandsError:  issuance.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedCode:   "FORBIDDEN",
			},
			{
				name:           "already used",
				commandsError:  issuance.ErrAlreadyUsed,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "ALREADY_USED",
			},
			{
				name:           "expired",
				commandsError:  issuance.ErrExpired,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "RECORD_EXPIRED",
			},
			{
				name:           "database failure",
				commandsError:  errs.Mark(errors.New("conn closed"), errs.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "INTERNAL_ERROR",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockLedger.EXPECT().Use(gomock.Any(), issuedID, userID).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: expiry reported at use time carries its own code", func() {
		s.mockLedger.EXPECT().Use(gomock.Any(), issuedID, userID).Return(nil, issuance.ErrExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Coupon expired")
	})
}
