package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
)

// respondServiceError maps the service error taxonomy onto status
// codes. Model and unknown failures share one generic body — internals
// never leak into a response.
func respondServiceError(c *gin.Context, err error) {
  var ve *apperr.ValidationError
  switch {
  case errors.As(err, &ve):
    c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "field": ve.Field})
  case errors.Is(err, apperr.ErrConflict):
    c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already exists"})
  case errors.Is(err, apperr.ErrNotFound):
    c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
  case errors.Is(err, apperr.ErrModelUnavailable), errors.Is(err, apperr.ErrGenerationFailed):
    c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again later"})
  default:
    c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
  }
}
