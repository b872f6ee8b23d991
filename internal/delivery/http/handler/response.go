package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// is an internal failure; its details never reach the caller.
func respondError(c *gin.Context, err error, fallback string) {
	switch err {
	case domain.ErrProfileNotFound, domain.ErrCardNotFound, domain.ErrPlacementNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case domain.ErrForbidden:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case domain.ErrPlacementExists:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case domain.ErrNoFields, domain.ErrEmptyText:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
