package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogapi/internal/service"
	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondServiceError 将服务层错误分级映射为 HTTP 状态码，统一错误包络。
func respondServiceError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrConstraintViolation):
		status = http.StatusConflict
	case errors.Is(err, service.ErrConnectionUnavailable):
		status = http.StatusServiceUnavailable
	}
	respondError(c, status, message)
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// parsePositiveIntQuery 解析 page/limit 查询参数；缺省时使用 fallback，非正数视为非法。
func parsePositiveIntQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, false
	}
	return value, true
}
