package http

import (
	"errors"
	"net/http"

	"svg-plotter/internal/dto"
	"svg-plotter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleServiceError 将服务层错误映射为 HTTP 响应
func HandleServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrEmptyInput) {
		ErrorResponse(c, http.StatusBadRequest, dto.ErrorDTO{Message: service.UserMessage(err)})
	} else if errors.Is(err, service.ErrInvalidInput) {
		ErrorResponse(c, http.StatusBadRequest, dto.ErrorDTO{
			Message: service.UserMessage(err),
			Lines:   service.InvalidLines(err),
		})
	} else {
		// Log the internal error for debugging
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, dto.ErrorDTO{Message: "An unexpected error occurred"})
	}
}
