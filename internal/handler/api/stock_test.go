//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/handler/api"
	resdto "stock-ledger/internal/handler/dto/response"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/commands"
	"stock-ledger/internal/usecase/queries"
	"stock-ledger/internal/usecase/shared"
	"stock-ledger/tests/common/builder"
	"stock-ledger/tests/common/httptest"
	"stock-ledger/tests/common/testutil"
	commandsmock "stock-ledger/tests/mock/commands"
	queriesmock "stock-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubAuth treats the bearer token as the caller's role.
func stubAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("subject", "tester")
	c.Set("user_role", user.Role(token))
	c.Next()
}

func actorWithRole(role user.Role) shared.Actor {
	return shared.Actor{ID: "tester", Role: role}
}

func stockView() *queries.StockView {
	return &queries.StockView{
		ProductID:  "sku-001",
		LocationID: "default",
		OnHand:     10,
		Reserved:   4,
		Available:  6,
		UpdatedAt:  time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

type StockHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.StockHandler
}

func (s *StockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewStockHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/stock", stubAuth, s.handler.InitializeStock)
	s.router.POST("/stock/bulk-adjust", stubAuth, s.handler.BulkAdjust)
	s.router.GET("/stock/:productId", stubAuth, s.handler.GetStock)
	s.router.DELETE("/stock/:productId", stubAuth, s.handler.RemoveStock)
	s.router.POST("/stock/:productId/adjustments", stubAuth, s.handler.AdjustOnHand)
	s.router.GET("/stock/:productId/adjustments", stubAuth, s.handler.ListAdjustments)
}

func (s *StockHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStockHandlerSuite(t *testing.T) {
	suite.Run(t, new(StockHandlerTestSuite))
}

// ================================================================================
// TestGetStock
// ================================================================================

func (s *StockHandlerTestSuite) TestGetStock() {
	s.Run("success: returns 200 OK with StockResponse", func() {
		s.mockQueries.EXPECT().GetStockStatus(gomock.Any(), "sku-001", "east").
			Return(stockView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stock/sku-001?locationId=east", nil, "viewer")

		var response resdto.StockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.StockResponse{
			ProductID:  "sku-001",
			LocationID: "default",
			OnHand:     10,
			Reserved:   4,
			Available:  6,
			UpdatedAt:  time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC).Unix(),
		}, response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stock/sku-001", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"stock not found", errs.Wrap(errs.ErrNotFound, "stock sku-001@default"), http.StatusNotFound, "Not found"},
			{"invalid product id", errs.Wrap(errs.ErrValidation, "product id is required"), http.StatusBadRequest, "Invalid request"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetStockStatus(gomock.Any(), "sku-001", "").
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stock/sku-001", nil, "viewer")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestInitializeStock
// ================================================================================

func (s *StockHandlerTestSuite) TestInitializeStock() {
	url := "/stock"
	reqBody := builder.NewStockBuilder().BuildInitializeDTO()

	validation := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "on_hand boundary OK (0)", mutate: testutil.Field("on_hand", 0), expectCode: http.StatusCreated},
		{name: "on_hand invalid (-1)", mutate: testutil.Field("on_hand", -1), expectCode: http.StatusBadRequest},
		{name: "missing field: product_id (required)", mutate: testutil.Field("product_id", nil), expectCode: http.StatusBadRequest},
		{name: "product_id too long", mutate: testutil.Field("product_id", strings.Repeat("a", 129)), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().InitializeStock(gomock.Any(), actorWithRole(user.RoleOperator), reqBody.ToInput()).
			Return(stockView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "operator")

		var response resdto.StockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("sku-001", response.ProductID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().InitializeStock(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(stockView(), nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "operator")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
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
			{"viewer forbidden", errs.Wrap(errs.ErrForbidden, "operator required"), http.StatusForbidden, "Insufficient permissions"},
			{"already exists", errs.Wrap(errs.ErrInvalidState, "stock record exists"), http.StatusConflict, "Operation not allowed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().InitializeStock(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "viewer")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRemoveStock
// ================================================================================

func (s *StockHandlerTestSuite) TestRemoveStock() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().RemoveStock(gomock.Any(), actorWithRole(user.RoleAdmin), "sku-001", "east").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/stock/sku-001?locationId=east", nil, "admin")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict while holds are outstanding", func() {
		s.mockCommands.EXPECT().RemoveStock(gomock.Any(), gomock.Any(), "sku-001", "").
			Return(errs.Wrap(errs.ErrInvalidState, "4 units still reserved")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/stock/sku-001", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Operation not allowed")
	})
}

// ================================================================================
// TestAdjustOnHand
// ================================================================================

func (s *StockHandlerTestSuite) TestAdjustOnHand() {
	url := "/stock/sku-001/adjustments"
	reqBody := map[string]any{"delta": -3, "reason": "correction"}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().AdjustOnHand(gomock.Any(), actorWithRole(user.RoleOperator), commands.AdjustInput{
			ProductID: "sku-001",
			Delta:     -3,
			Reason:    "correction",
		}).Return(stockView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "operator")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"zero delta", testutil.Field("delta", 0)},
			{"unknown reason", testutil.Field("reason", "gift")},
			{"missing reason", testutil.Field("reason", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "operator")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 422 when on-hand would drop below reserved", func() {
		s.mockCommands.EXPECT().AdjustOnHand(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrInvalidAdjustment, "on hand 1 below reserved 4")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "below reserved")
	})
}

// ================================================================================
// TestListAdjustments
// ================================================================================

func (s *StockHandlerTestSuite) TestListAdjustments() {
	s.Run("success: passes limit through", func() {
		views := []*queries.AdjustmentView{
			{ID: 2, ProductID: "sku-001", LocationID: "default", Delta: -3, Reason: "correction", Actor: "ops", OccurredAt: time.Unix(1700000100, 0)},
			{ID: 1, ProductID: "sku-001", LocationID: "default", Delta: 10, Reason: "restock", Actor: "ops", OccurredAt: time.Unix(1700000000, 0)},
		}
		s.mockQueries.EXPECT().ListAdjustments(gomock.Any(), actorWithRole(user.RoleOperator), "sku-001", "", 2).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stock/sku-001/adjustments?limit=2", nil, "operator")

		var response resdto.AdjustmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Adjustments, 2)
		s.Equal(int64(1700000100), response.Adjustments[0].OccurredAt)
		s.Nil(response.Adjustments[0].ReservationID)
	})

	s.Run("error: 400 for malformed limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stock/sku-001/adjustments?limit=abc", nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestBulkAdjust
// ================================================================================

func (s *StockHandlerTestSuite) TestBulkAdjust() {
	url := "/stock/bulk-adjust"

	s.Run("success: per-item results and counts", func() {
		results := []commands.BulkAdjustResult{
			{Index: 0, ProductID: "sku-001", LocationID: "default", OK: true, Stock: stockView()},
			{Index: 1, ProductID: "sku-002", LocationID: "default", ErrorCode: "NOT_FOUND", Error: "stock not found"},
		}
		s.mockCommands.EXPECT().BulkAdjust(gomock.Any(), actorWithRole(user.RoleOperator), gomock.Len(2)).
			Return(results, nil).Times(1)

		body := map[string]any{"items": []map[string]any{
			{"product_id": "sku-001", "on_hand": 10},
			{"product_id": "sku-002", "reserved": 0},
		}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "operator")

		var response resdto.BulkAdjustResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Succeeded)
		s.Equal(1, response.Failed)
		s.Equal("NOT_FOUND", response.Results[1].ErrorCode)
		s.Nil(response.Results[1].Stock)
		s.Equal(6, response.Results[0].Stock.Available)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{"empty items", map[string]any{"items": []any{}}},
			{"negative on_hand", map[string]any{"items": []map[string]any{{"product_id": "sku-001", "on_hand": -1}}}},
			{"missing product_id", map[string]any{"items": []map[string]any{{"on_hand": 1}}}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "operator")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}
