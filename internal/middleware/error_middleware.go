package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya/universe/internal/app/models/dto"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// --- Central Error Handling ---

// HandleAPIError maps application errors to an HTTP status and the flat
// error body. fallback is the message used for otherwise-unclassified server
// faults; full error detail never reaches the caller.
//
// Duplicates on signup and bad credentials map to 400, storage-layer
// validation failures to 500.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: apperrors.Message(err, "Item not found"),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: apperrors.Message(err, "Already exists"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credentials",
		})
	case errors.Is(err, apperrors.ErrMissingParameter):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: apperrors.Message(err, "Missing parameter"),
		})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: apperrors.Message(err, "Bad request"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		// Schema validation is the storage layer's job here, so a violation
		// is a server fault, not a bad request.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fallback,
		})
	case errors.Is(err, apperrors.ErrPersistence):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: apperrors.Message(err, fallback),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fallback,
		})
	}
}
