package main

import (
  "fmt"
  "os"

  "github.com/chatbox-org/chatbox-backend/internal/db"
  "github.com/chatbox-org/chatbox-backend/internal/handlers"
  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/middleware"
  "github.com/chatbox-org/chatbox-backend/internal/repos"
  "github.com/chatbox-org/chatbox-backend/internal/seed"
  "github.com/chatbox-org/chatbox-backend/internal/server"
  "github.com/chatbox-org/chatbox-backend/internal/services"
  "github.com/chatbox-org/chatbox-backend/internal/utils"
)

func main() {
  // Logger Setup
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Environment Variables
  log.Info("Attempting to load environment variables for Main now...")
  host := utils.GetEnv("HOST", "", log)
  port := utils.GetEnv("PORT", "8000", log)
  frontendURL := utils.GetEnv("FRONTEND_URL", "http://localhost:3000", log)
  devUserID := uint(utils.GetEnvAsInt("DEV_USER_ID", 1, log))
  log.Info("Environment variables loaded for Main :)")

  // Postgres Setup
  log.Info("Setting Up Postgres from Main now...")
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("DB init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()
  log.Info("Postgres Setup From Main Successful :)")

  // Repositories Setup
  log.Info("Setting Up Repositories from Main now...")
  userRepo := repos.NewUserRepo(thePG, log)
  conversationRepo := repos.NewConversationRepo(thePG, log)
  messageRepo := repos.NewMessageRepo(thePG, log)
  log.Info("Repositories Set Up From Main Successful :)")

  // Seed Setup
  log.Info("Attempting to Seed The Postgres From Main now...")
  if err := seed.SeedAll(thePG, userRepo, log, devUserID); err != nil {
    log.Warn("Failed to seed data :(", "error", err)
  }
  log.Info("Seeding of Postgres From Main Successful :)")

  // Services Setup
  log.Info("Setting up Services from Main now...")
  modelService, err := services.NewModelService(log)
  if err != nil {
    // The server still comes up; /chat answers with a model-not-loaded
    // failure until the model server is configured.
    log.Warn("Could not init ModelService", "error", err)
  }
  userService := services.NewUserService(thePG, log, userRepo)
  conversationService := services.NewConversationService(thePG, log, conversationRepo)
  chatService := services.NewChatService(thePG, log, conversationRepo, messageRepo, modelService, devUserID)
  log.Info("Services Set Up From Main Successful :)")

  // Handler Setup
  log.Info("Setting Up Handlers from Main now...")
  userHandler := handlers.NewUserHandler(userService)
  chatHandler := handlers.NewChatHandler(chatService)
  conversationHandler := handlers.NewConversationHandler(conversationService)
  log.Info("Handlers Set Up From Main Successful :)")

  // MiddleWare Setup
  log.Info("Setting Up Middleware from Main now...")
  devUserMiddleware := middleware.NewDevUserMiddleware(log, devUserID)
  log.Info("Middleware Set Up From Main Successful :)")

  // Router Setup
  log.Info("Setting Up Router from Main now...")
  router := server.NewRouter(server.RouterConfig{
    UserHandler:         userHandler,
    ChatHandler:         chatHandler,
    ConversationHandler: conversationHandler,
    DevUserMiddleware:   devUserMiddleware,
    FrontendURL:         frontendURL,
  })
  log.Info("Router Set Up From Main Successful :)")

  addr := host + ":" + port
  fmt.Printf("Server listening on %s\n", addr)
  if err := router.Run(addr); err != nil {
    log.Error("Server failed", "error", err)
  }
}
