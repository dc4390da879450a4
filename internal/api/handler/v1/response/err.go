package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"status_code"`
	ErrorMsg   string `json:"error"`
	RequestID  string `json:"request_id"`

	err error
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
		err:        err,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   "wrong credentials",
		err:        err,
	}
}

func ErrForbidden(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorMsg:   err.Error(),
		err:        err,
	}
}

func ErrNotFound(resource string, key string, value interface{}, err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   fmt.Sprintf("%v with %v (%v) is not found", resource, key, value),
		err:        err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   "internal server error",
		err:        err,
	}
}

// RenderErr writes the error response and logs the underlying cause. Client
// errors log at info, server errors at error.
func RenderErr(ctx *gin.Context, e *Err) {
	e.RequestID = requestid.Get(ctx)

	fields := []zap.Field{
		zap.Int("status_code", e.StatusCode),
		zap.String("request_id", e.RequestID),
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(e.err),
	}

	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.ErrorMsg, fields...)
	} else {
		zap.L().Info(e.ErrorMsg, fields...)
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}
