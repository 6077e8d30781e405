package api

import (
	"net/http"
	"strconv"

	reqdto "stock-ledger/internal/handler/dto/request"
	resdto "stock-ledger/internal/handler/dto/response"
	"stock-ledger/internal/handler/httperr"
	"stock-ledger/internal/handler/middleware"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/commands"
	"stock-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewStockHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *StockHandler {
	return &StockHandler{cmds: cmds, q: q}
}

// @Summary Get stock status
// @Description On-hand, reserved and available quantities for a product at a location
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param locationId query string false "Location ID (defaults to the configured location)"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stock/{productId} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	view, err := h.q.GetStockStatus(c.Request.Context(), c.Param("productId"), c.Query("locationId"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockView(view))
}

// @Summary Initialize stock
// @Description Create the stock record for a product at a location
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitializeStockRequest true "Initialize stock request"
// @Success 201 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stock [post]
func (h *StockHandler) InitializeStock(c *gin.Context) {
	var req reqdto.InitializeStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	view, err := h.cmds.InitializeStock(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStockView(view))
}

// @Summary Remove stock
// @Description Soft-remove a stock record with no outstanding holds
// @Tags stock
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param locationId query string false "Location ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stock/{productId} [delete]
func (h *StockHandler) RemoveStock(c *gin.Context) {
	err := h.cmds.RemoveStock(c.Request.Context(), middleware.GetActor(c), c.Param("productId"), c.Query("locationId"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust on-hand
// @Description Apply a signed on-hand delta (restock, correction, sale, return)
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.AdjustStockRequest true "Adjustment request"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /stock/{productId}/adjustments [post]
func (h *StockHandler) AdjustOnHand(c *gin.Context) {
	var req reqdto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	view, err := h.cmds.AdjustOnHand(c.Request.Context(), middleware.GetActor(c), req.ToInput(c.Param("productId")))
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockView(view))
}

// @Summary List adjustments
// @Description Adjustment audit trail for a product at a location, newest first
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param locationId query string false "Location ID"
// @Param limit query int false "Max entries (default 50, max 500)"
// @Success 200 {object} resdto.AdjustmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stock/{productId}/adjustments [get]
func (h *StockHandler) ListAdjustments(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.AbortWithDomainError(c, errs.Wrapf(errs.ErrValidation, "invalid limit %q", raw), nil)
			return
		}
		limit = n
	}
	views, err := h.q.ListAdjustments(c.Request.Context(), middleware.GetActor(c), c.Param("productId"), c.Query("locationId"), limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdjustmentViews(views))
}

// @Summary Bulk adjust
// @Description Administrative overrides of on-hand and reserved; per-item results
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkAdjustRequest true "Bulk adjust request"
// @Success 200 {object} resdto.BulkAdjustResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /stock/bulk-adjust [post]
func (h *StockHandler) BulkAdjust(c *gin.Context) {
	var req reqdto.BulkAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	results, err := h.cmds.BulkAdjust(c.Request.Context(), middleware.GetActor(c), req.ToItems())
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkAdjustResults(results))
}

func abortBind(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request", err.Error())
}
