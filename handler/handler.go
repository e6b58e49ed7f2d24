package handler

import (
	"strconv"

	"Pinboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseIDParam 路径参数转 int64
func parseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewValidationError("缺少 " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewValidationError(name + " 格式错误")
	}
	return id, nil
}
