package response

import (
	"errors"
	"net/http"

	"Pinboard/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 错误分类，Code 同时作为 HTTP 状态码返回

func NewValidationError(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func NewInvalidOperation(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func NewUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func NewForbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

func NewNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func NewConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

// NewInternalError 内部错误不把原始信息带给客户端，只返回关联ID方便查日志
func NewInternalError(err error) *BizError {
	traceId := uuid.NewString()
	log.L.Error("internal error", zap.String("trace_id", traceId), zap.Error(err))
	return NewError(http.StatusInternalServerError, "系统异常, trace_id: "+traceId)
}

// FromDBError 把存储层错误翻译成业务错误，唯一键冲突不向客户端裸露
func FromDBError(err error, notFoundMsg, conflictMsg string) *BizError {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewConflict(conflictMsg)
	default:
		return NewInternalError(err)
	}
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
