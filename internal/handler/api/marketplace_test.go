//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ecotrack/internal/handler/api"
	reqdto "ecotrack/internal/handler/dto/request"
	resdto "ecotrack/internal/handler/dto/response"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/queries"
	"ecotrack/tests/common/builder"
	"ecotrack/tests/common/httptest"
	commandsmock "ecotrack/tests/mock/commands"
	queriesmock "ecotrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MarketplaceHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockRedemptions *commandsmock.MockRedemptionCommands
	mockContent     *commandsmock.MockContentCommands
	mockQueries     *queriesmock.MockMarketplaceQueries
	handler         *api.MarketplaceHandler
	userID          uuid.UUID
}

func (s *MarketplaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRedemptions = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockContent = commandsmock.NewMockContentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMarketplaceQueries(s.mockCtrl)
	s.handler = api.NewMarketplaceHandler(s.mockRedemptions, s.mockContent, s.mockQueries)

	// Mock middleware behavior: a bearer token authenticates as s.userID
	withOptionalAuth := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}

	s.router.GET("/vouchers", withOptionalAuth(s.handler.ListVouchers))
	s.router.POST("/vouchers", s.handler.CreateVoucher)
	s.router.POST("/redeem", withOptionalAuth(s.handler.Redeem))
	s.router.GET("/redemptions", withOptionalAuth(s.handler.ListRedemptions))
}

func (s *MarketplaceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMarketplaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceHandlerTestSuite))
}

func (s *MarketplaceHandlerTestSuite) TestListVouchers() {
	url := "/vouchers"
	view := &queries.MarketplaceView{
		Vouchers: []*queries.VoucherView{builder.NewVoucherBuilder().BuildReadModel()},
	}

	s.Run("success: anonymous request gets vouchers without points", func() {
		s.mockQueries.EXPECT().ListVouchers(gomock.Any(), nil).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.MarketplaceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Vouchers, 1)
		s.Nil(response.Points)
	})

	s.Run("success: authenticated request includes points", func() {
		points := 120
		authedView := &queries.MarketplaceView{Vouchers: view.Vouchers, Points: &points}
		s.mockQueries.EXPECT().ListVouchers(gomock.Any(), gomock.Not(gomock.Nil())).
			Return(authedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.MarketplaceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Points)
		s.Equal(120, *response.Points)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListVouchers(gomock.Any(), nil).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *MarketplaceHandlerTestSuite) TestRedeem() {
	url := "/redeem"
	voucherID := uuid.New()
	reqBody := reqdto.RedeemRequest{VoucherID: voucherID}

	receipt := &commands.RedeemReceipt{
		RedemptionID:   uuid.New(),
		UpdatedPoints:  70,
		VoucherID:      voucherID,
		VoucherTitle:   "Free Coffee",
		PointsRequired: 50,
	}

	s.Run("success: returns receipt with updated points", func() {
		s.mockRedemptions.EXPECT().Redeem(gomock.Any(), s.userID, voucherID).
			Return(receipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(70, response.UpdatedPoints)
		s.Equal(voucherID, response.Voucher.ID)
		s.Equal("Free Coffee", response.Voucher.Title)
		s.Equal(50, response.Voucher.PointsRequired)
	})

	s.Run("error: 400 on missing voucher_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "voucher not found",
				commandsError:  commands.ErrRedeemVoucherNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Voucher not found",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrRedeemUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "out of stock",
				commandsError:  commands.ErrVoucherOutOfStock,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Voucher out of stock",
			},
			{
				name:           "already redeemed",
				commandsError:  commands.ErrAlreadyRedeemed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Voucher already redeemed",
			},
			{
				name:           "expired",
				commandsError:  commands.ErrVoucherExpired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Voucher expired",
			},
			{
				name:           "insufficient points",
				commandsError:  commands.ErrInsufficientPoints,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Insufficient points",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRedemptions.EXPECT().Redeem(gomock.Any(), s.userID, voucherID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *MarketplaceHandlerTestSuite) TestCreateVoucher() {
	url := "/vouchers"
	reqBody := reqdto.CreateVoucherRequest{
		Title:          "Tote Bag",
		PointsRequired: 80,
		Stock:          5,
	}

	s.Run("success: returns 201 with new ID", func() {
		newID := uuid.New()
		s.mockContent.EXPECT().CreateVoucher(gomock.Any(), reqBody).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 400 on invalid voucher", func() {
		s.mockContent.EXPECT().CreateVoucher(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrInvalidVoucher).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid voucher details")
	})

	s.Run("error: 400 on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"title": "x"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *MarketplaceHandlerTestSuite) TestListRedemptions() {
	url := "/redemptions"

	s.Run("success: returns redemption history", func() {
		views := []*queries.RedemptionView{
			{ID: uuid.New(), VoucherID: uuid.New(), VoucherTitle: "Free Coffee", PointsRequired: 50},
		}
		s.mockQueries.EXPECT().ListRedemptions(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*queries.RedemptionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Free Coffee", response[0].VoucherTitle)
	})
}
