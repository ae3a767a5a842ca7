package http

import (
	"svg-plotter/internal/dto"

	"github.com/gin-gonic/gin"
)

func ErrorResponse(c *gin.Context, code int, body dto.ErrorDTO) {
	c.JSON(code, body)
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
