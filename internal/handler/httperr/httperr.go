package httperr

import (
	"net/http"

	"stock-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = errs.Code(err)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the ledger error taxonomy onto HTTP statuses.
func AbortWithDomainError(c *gin.Context, err error, detail any) {
	status, msg := Classify(err)
	if detail == nil && status < http.StatusInternalServerError {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrInsufficientStock):
		return http.StatusConflict, "item no longer available in requested quantity"
	case errs.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, "Operation not allowed in current state"
	case errs.Is(err, errs.ErrInvalidAdjustment):
		return http.StatusUnprocessableEntity, "Adjustment would leave on-hand below reserved"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Insufficient permissions"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
