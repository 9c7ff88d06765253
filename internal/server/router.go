package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/myartworld/ai-service/internal/handlers"
  "github.com/myartworld/ai-service/internal/middleware"
)

type RouterConfig struct {
  StaticDir string

  RecommendHandler    *handlers.RecommendHandler
  BuyerSessionHandler *handlers.BuyerSessionHandler
  BuddyHandler        *handlers.BuddyHandler
  TTSHandler          *handlers.TTSHandler
  TagsHandler         *handlers.TagsHandler
  UploadHandler       *handlers.UploadHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(middleware.RequestID())

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     []string{"*"},
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: false,
  }))

  router.Static("/static", cfg.StaticDir)

  router.GET("/", handlers.Root)
  router.GET("/healthcheck", handlers.HealthCheck)

  router.POST("/ai/recommend", cfg.RecommendHandler.Recommend)
  router.POST("/ai/buyer-session", cfg.BuyerSessionHandler.CreateSession)
  router.POST("/ai/explain", cfg.BuddyHandler.Explain)
  router.POST("/ai/compare", cfg.BuddyHandler.Compare)
  router.POST("/ai/suggest-tags", cfg.TagsHandler.SuggestTags)
  router.POST("/tts/story", cfg.TTSHandler.Story)
  router.POST("/upload", cfg.UploadHandler.UploadImage)

  return router
}
