package middleware

import (
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/requestdata"
)

type DevUserMiddleware struct {
  log           *logger.Logger
  devUserID     uint
}

func NewDevUserMiddleware(log *logger.Logger, devUserID uint) *DevUserMiddleware {
  return &DevUserMiddleware{
    log:       log.With("middleware", "DevUserMiddleware"),
    devUserID: devUserID,
  }
}

// InjectDevUser stamps every /api request with a fresh request id and
// the configured development user. TODO: replace with a real auth
// middleware once the login flow exists; requestdata keeps the same
// shape either way.
func (dm *DevUserMiddleware) InjectDevUser() gin.HandlerFunc {
  return func(c *gin.Context) {
    rd := &requestdata.RequestData{
      RequestID: uuid.New(),
      UserID:    dm.devUserID,
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), rd)
    c.Request = c.Request.WithContext(ctx)
    dm.log.Debug("Request data injected", "requestID", rd.RequestID, "userID", rd.UserID, "path", c.FullPath())
    c.Next()
  }
}
