//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ecotrack/internal/handler/api"
	resdto "ecotrack/internal/handler/dto/response"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/queries"
	"ecotrack/tests/common/builder"
	"ecotrack/tests/common/httptest"
	"ecotrack/tests/common/testutil"
	commandsmock "ecotrack/tests/mock/commands"
	queriesmock "ecotrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecyclingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRecyclingCommands
	mockQueries  *queriesmock.MockRecyclingQueries
	handler      *api.RecyclingHandler
	userID       uuid.UUID
}

func (s *RecyclingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRecyclingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRecyclingQueries(s.mockCtrl)
	s.handler = api.NewRecyclingHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: a bearer token authenticates as s.userID
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}

	s.router.POST("/recycling-logs", authed(s.handler.CreateLog))
	s.router.GET("/recycling-logs", authed(s.handler.ListLogs))
	s.router.GET("/progress", authed(s.handler.GetProgress))
}

func (s *RecyclingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecyclingHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecyclingHandlerTestSuite))
}

func (s *RecyclingHandlerTestSuite) TestCreateLog() {
	url := "/recycling-logs"
	reqBody := builder.NewRecyclingLogBuilder().BuildDTO()

	result := &commands.LogActivityResult{
		LogID:         uuid.New(),
		PointsAwarded: 35,
		UpdatedPoints: 135,
	}

	s.Run("success: returns 201 with awarded and updated points", func() {
		s.mockCommands.EXPECT().LogActivity(gomock.Any(), s.userID, reqBody).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LogActivityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(35, response.PointsAwarded)
		s.Equal(135, response.UpdatedPoints)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing material_type", mutate: testutil.Field("material_type", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
			{name: "negative weight", mutate: testutil.Field("weight_kg", -0.5)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid material",
				commandsError:  commands.ErrInvalidMaterial,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid material type",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrActivityUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
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
				s.mockCommands.EXPECT().LogActivity(gomock.Any(), s.userID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RecyclingHandlerTestSuite) TestListLogs() {
	url := "/recycling-logs"

	s.Run("success: returns history", func() {
		views := []*queries.RecyclingLogView{
			{ID: uuid.New(), MaterialType: "Plastic", Quantity: 4, WeightKg: 1.5, PointsAwarded: 35},
		}
		s.mockQueries.EXPECT().ListLogs(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*queries.RecyclingLogView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Plastic", response[0].MaterialType)
	})
}

func (s *RecyclingHandlerTestSuite) TestGetProgress() {
	url := "/progress"

	s.Run("success: returns lifetime totals and current balance", func() {
		view := &queries.ProgressView{
			TotalQuantity: 12,
			TotalWeightKg: 4.5,
			TotalPoints:   105,
			CurrentPoints: 55,
		}
		s.mockQueries.EXPECT().GetProgress(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.ProgressView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(12, response.TotalQuantity)
		s.Equal(55, response.CurrentPoints)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetProgress(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
