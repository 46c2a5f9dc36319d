package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"

  "github.com/chatbox-org/chatbox-backend/internal/services"
)

type UserHandler struct {
  userService     services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func (uh *UserHandler) CreateUser(c *gin.Context) {
  var req struct {
    Username        string        `json:"username"`
    Email           string        `json:"email"`
    Password        string        `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  user, err := uh.userService.RegisterUser(c.Request.Context(), req.Username, req.Email, req.Password)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  // The password hash is never echoed back.
  c.JSON(http.StatusCreated, gin.H{
    "id":         user.ID,
    "username":   user.Username,
    "email":      user.Email,
    "created_at": user.CreatedAt.Format(time.RFC3339),
  })
}
