package api

import (
	"errors"
	"net/http"

	reqdto "stock-ledger/internal/handler/dto/request"
	resdto "stock-ledger/internal/handler/dto/response"
	"stock-ledger/internal/handler/httperr"
	"stock-ledger/internal/handler/middleware"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/commands"
	"stock-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewReservationHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve stock
// @Description Place a time-limited hold on stock for a cart or checkout
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Reserve request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	view, err := h.cmds.Reserve(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Reserve a cart
// @Description Reserve every item or none; on failure already held items are cancelled
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveBatchRequest true "Batch reserve request"
// @Success 201 {object} resdto.ReservationBatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/batch [post]
func (h *ReservationHandler) ReserveBatch(c *gin.Context) {
	var req reqdto.ReserveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	views, err := h.cmds.ReserveBatch(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		var itemErr *commands.BatchItemError
		if errors.As(err, &itemErr) {
			httperr.AbortWithDomainError(c, err, gin.H{
				"failed_index": itemErr.Index,
				"reason":       itemErr.Err.Error(),
			})
			return
		}
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := h.q.GetReservation(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservation events
// @Description Append-only lifecycle events of a reservation, oldest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationEventListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/events [get]
func (h *ReservationHandler) ListEvents(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	views, err := h.q.ListReservationEvents(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationEventViews(views))
}

// @Summary Confirm reservation
// @Description Commit a held reservation as a sale; repeating the call is a no-op
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Confirm(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Release a held reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, errs.Wrapf(errs.ErrValidation, "invalid reservation id %q", c.Param("id")), nil)
		return uuid.Nil, false
	}
	return id, true
}
