//go:build e2e

package reservation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/handler/dto/request"
	"stock-ledger/internal/handler/dto/response"
	"stock-ledger/tests/common/authtest"
	"stock-ledger/tests/common/dbtest"
	"stock-ledger/tests/common/httptest"
	"stock-ledger/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	batchURL        = "/api/reservations/batch"
	reservationURL  = "/api/reservations/%s"
	eventsURL       = "/api/reservations/%s/events"
	confirmURL      = "/api/reservations/%s/confirm"
	cancelURL       = "/api/reservations/%s/cancel"
	stockURL        = "/api/stock/%s"

	location = "default"
)

type ReservationSuite struct {
	e2e.SharedSuite
	tokens map[user.Role]string
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewJWTHelper(s.Config.JWT).RoleTokens(s.T())
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) reserve(t *testing.T, productID string, qty int, holder string) *httptestResult {
	t.Helper()
	body := request.ReserveRequest{ProductID: productID, Quantity: qty, HolderRef: holder}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.tokens[user.RoleViewer])
	return &httptestResult{code: w.Code, body: w.Body.Bytes()}
}

func (s *ReservationSuite) mustReserve(t *testing.T, productID string, qty int, holder string) response.ReservationResponse {
	t.Helper()
	res := s.reserve(t, productID, qty, holder)
	require.Equal(t, http.StatusCreated, res.code, string(res.body))

	var out response.ReservationResponse
	require.NoError(t, json.Unmarshal(res.body, &out))
	return out
}

func (s *ReservationSuite) stock(t *testing.T, productID string) response.StockResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(stockURL, productID), nil, s.tokens[user.RoleViewer])
	var out response.StockResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
	return out
}

func (s *ReservationSuite) transition(t *testing.T, urlFmt, id string) (int, response.ReservationResponse) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(urlFmt, id), nil, s.tokens[user.RoleOperator])
	var out response.ReservationResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

type httptestResult struct {
	code int
	body []byte
}

// =============================================================================
// チェックアウトの一連の流れ
// =============================================================================

func (s *ReservationSuite) TestCheckoutScenario() {
	s.Run("正常系: 予約・確定・取消で在庫数が期待通りに遷移する", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "P", location, 10)

		a := s.mustReserve(t, "P", 4, "A")
		assert.Equal(t, 6, s.stock(t, "P").Available)

		b := s.mustReserve(t, "P", 6, "B")
		assert.Equal(t, 0, s.stock(t, "P").Available)

		c := s.reserve(t, "P", 1, "C")
		assert.Equal(t, http.StatusConflict, c.code)
		assert.Contains(t, string(c.body), "item no longer available in requested quantity")

		code, confirmed := s.transition(t, confirmURL, a.ID)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "confirmed", confirmed.State)
		assert.Nil(t, confirmed.ExpiresAt)

		expected := response.StockResponse{ProductID: "P", LocationID: location, OnHand: 6, Reserved: 6, Available: 0}
		opts := cmpopts.IgnoreFields(response.StockResponse{}, "UpdatedAt")
		if diff := cmp.Diff(expected, s.stock(t, "P"), opts); diff != "" {
			t.Errorf("stock after confirm mismatch (-want +got):\n%s", diff)
		}

		code, _ = s.transition(t, cancelURL, b.ID)
		require.Equal(t, http.StatusOK, code)

		expected = response.StockResponse{ProductID: "P", LocationID: location, OnHand: 6, Reserved: 0, Available: 6}
		if diff := cmp.Diff(expected, s.stock(t, "P"), opts); diff != "" {
			t.Errorf("stock after cancel mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 0, dbtest.SumHeld(t, s.DB, "P", location))
	})
}

// =============================================================================
// 同時予約でも売り越さない
// =============================================================================

func (s *ReservationSuite) TestConcurrentReserve() {
	s.Run("正常系: 同時予約の成功数が在庫数を超えない", func() {
		t := s.T()
		const (
			onHand  = 5
			callers = 20
		)
		dbtest.CreateTestStock(t, s.DB, "hot-item", location, onHand)

		codes := make([]int, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res := s.reserve(t, "hot-item", 1, fmt.Sprintf("cart-%d", i))
				codes[i] = res.code
			}()
		}
		wg.Wait()

		var created, conflicted int
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		assert.Equal(t, onHand, created)
		assert.Equal(t, callers-onHand, conflicted)

		row := dbtest.GetStock(t, s.DB, "hot-item", location)
		assert.Equal(t, onHand, row.Reserved)
		assert.Equal(t, row.Reserved, dbtest.SumHeld(t, s.DB, "hot-item", location))
	})
}

// =============================================================================
// 確定の冪等性と状態遷移
// =============================================================================

func (s *ReservationSuite) TestConfirm() {
	s.Run("正常系: 二重確定しても在庫は一度だけ減る", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "sku-1", location, 10)
		res := s.mustReserve(t, "sku-1", 3, "order-1")

		for range 2 {
			code, out := s.transition(t, confirmURL, res.ID)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, "confirmed", out.State)
		}

		row := dbtest.GetStock(t, s.DB, "sku-1", location)
		assert.Equal(t, dbtest.StockRow{OnHand: 7, Reserved: 0}, row)
		assert.Equal(t, 1, dbtest.CountReservationEvents(t, s.DB, "confirmed"))
	})

	s.Run("異常系: 取消済みの予約は確定できない", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "sku-1", location, 10)
		res := s.mustReserve(t, "sku-1", 3, "order-1")

		code, _ := s.transition(t, cancelURL, res.ID)
		require.Equal(t, http.StatusOK, code)

		code, _ = s.transition(t, confirmURL, res.ID)
		assert.Equal(t, http.StatusConflict, code)

		code, _ = s.transition(t, cancelURL, res.ID)
		assert.Equal(t, http.StatusConflict, code)
	})

	s.Run("異常系: viewerは確定できない", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "sku-1", location, 10)
		res := s.mustReserve(t, "sku-1", 3, "order-1")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, res.ID), nil, s.tokens[user.RoleViewer])
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
		assert.Equal(t, 3, dbtest.GetStock(t, s.DB, "sku-1", location).Reserved)
	})

	s.Run("異常系: 存在しない予約は404", func() {
		t := s.T()
		code, _ := s.transition(t, confirmURL, "4f7c1f0e-3d1a-4a53-9a55-1f3a3c5b2d10")
		assert.Equal(t, http.StatusNotFound, code)
	})
}

// =============================================================================
// 期限切れの回収
// =============================================================================

func (s *ReservationSuite) TestExpiry() {
	s.Run("正常系: 期限切れの予約は参照時に一度だけ回収される", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "sku-2", location, 8)
		res := s.mustReserve(t, "sku-2", 5, "cart-9")
		dbtest.ExpireNow(t, s.DB, res.ID)

		first := s.stock(t, "sku-2")
		assert.Equal(t, 0, first.Reserved)
		assert.Equal(t, 8, first.Available)

		second := s.stock(t, "sku-2")
		assert.Equal(t, 0, second.Reserved)
		assert.Equal(t, 1, dbtest.CountReservationEvents(t, s.DB, "expired"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, res.ID), nil, s.tokens[user.RoleViewer])
		var got response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "expired", got.State)
		assert.Nil(t, got.ExpiresAt)

		code, _ := s.transition(t, confirmURL, res.ID)
		assert.Equal(t, http.StatusConflict, code)
	})

	s.Run("正常系: 期限前の予約は回収されない", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "sku-2", location, 8)
		s.mustReserve(t, "sku-2", 5, "cart-9")

		assert.Equal(t, 5, s.stock(t, "sku-2").Reserved)
		assert.Equal(t, 0, dbtest.CountReservationEvents(t, s.DB, "expired"))
	})
}

// =============================================================================
// 複数商品の一括予約
// =============================================================================

func (s *ReservationSuite) TestReserveBatch() {
	s.Run("正常系: カート内の全商品を予約できる", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "shirt", location, 3)
		dbtest.CreateTestStock(t, s.DB, "socks", location, 10)

		body := request.ReserveBatchRequest{
			HolderRef: "cart-1",
			Items: []request.ReserveBatchItemRequest{
				{ProductID: "shirt", Quantity: 1},
				{ProductID: "socks", Quantity: 4},
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, batchURL, body, s.tokens[user.RoleViewer])
		var out response.ReservationBatchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &out)
		require.Len(t, out.Reservations, 2)

		assert.Equal(t, 1, dbtest.SumHeld(t, s.DB, "shirt", location))
		assert.Equal(t, 4, dbtest.SumHeld(t, s.DB, "socks", location))
	})

	s.Run("異常系: 途中の商品が不足すると確保済みの商品は取り消される", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "shirt", location, 3)
		dbtest.CreateTestStock(t, s.DB, "socks", location, 10)
		dbtest.CreateTestStock(t, s.DB, "hat", location, 1)

		body := request.ReserveBatchRequest{
			HolderRef: "cart-2",
			Items: []request.ReserveBatchItemRequest{
				{ProductID: "shirt", Quantity: 2},
				{ProductID: "socks", Quantity: 4},
				{ProductID: "hat", Quantity: 2},
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, batchURL, body, s.tokens[user.RoleViewer])
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var errBody struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
			Detail struct {
				FailedIndex int `json:"failed_index"`
			} `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Error.Code)
		assert.Equal(t, 2, errBody.Detail.FailedIndex)

		for _, p := range []string{"shirt", "socks", "hat"} {
			row := dbtest.GetStock(t, s.DB, p, location)
			assert.Zero(t, row.Reserved, p)
			assert.Zero(t, dbtest.SumHeld(t, s.DB, p, location), p)
		}
		assert.Equal(t, 2, dbtest.CountReservationEvents(t, s.DB, "cancelled"))
	})
}

// =============================================================================
// 予約イベント履歴
// =============================================================================

func (s *ReservationSuite) TestListEvents() {
	s.Run("正常系: 作成と取消のイベントが時系列で返る", func() {
		t := s.T()
		dbtest.CreateTestStock(t, s.DB, "sku-3", location, 4)
		res := s.mustReserve(t, "sku-3", 2, "cart-3")
		code, _ := s.transition(t, cancelURL, res.ID)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(eventsURL, res.ID), nil, s.tokens[user.RoleViewer])
		var out response.ReservationEventListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)

		types := make([]string, 0, len(out.Events))
		for _, e := range out.Events {
			types = append(types, e.Type)
			assert.Equal(t, res.ID, e.ReservationID)
			assert.Equal(t, 2, e.Quantity)
		}
		assert.Equal(t, []string{"created", "cancelled"}, types)
		assert.Equal(t, "payments-webhook", out.Events[1].Actor)
	})
}
