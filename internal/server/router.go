package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/chatbox-org/chatbox-backend/internal/handlers"
  "github.com/chatbox-org/chatbox-backend/internal/middleware"
)

type RouterConfig struct {
  UserHandler             *handlers.UserHandler
  ChatHandler             *handlers.ChatHandler
  ConversationHandler     *handlers.ConversationHandler
  DevUserMiddleware       *middleware.DevUserMiddleware
  FrontendURL             string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  //-----------------------------------------
  // Cors Setup
  //-----------------------------------------
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
        "http://localhost:3000",
        cfg.FrontendURL,
    },
    AllowMethods:     []string{"GET","POST","PUT","DELETE","PATCH","OPTIONS"},
    AllowHeaders:     []string{"Authorization","Content-Type","X-Requested-With"},
    AllowCredentials: true,
  }))

  //-----------------------------------------
  // Health Routes
  //-----------------------------------------
  router.GET("/health", handlers.Health)

  //-----------------------------------------
  // API Routes
  //-----------------------------------------
  api := router.Group("/api")
  api.Use(cfg.DevUserMiddleware.InjectDevUser())
  {
    api.POST("/users", cfg.UserHandler.CreateUser)
    api.POST("/chat", cfg.ChatHandler.Chat)
    api.GET("/conv-with-msg/:conversation_id", cfg.ConversationHandler.GetConversation)
    api.GET("/user-conv-with-msg/:user_id", cfg.ConversationHandler.GetUserConversations)
  }

  return router
}
