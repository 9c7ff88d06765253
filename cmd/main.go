package main

import (
  "fmt"
  "os"
  "path/filepath"

  "github.com/myartworld/ai-service/internal/cache"
  "github.com/myartworld/ai-service/internal/clients/openai"
  "github.com/myartworld/ai-service/internal/handlers"
  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/server"
  "github.com/myartworld/ai-service/internal/services"
  "github.com/myartworld/ai-service/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  staticDir := utils.GetEnv("STATIC_DIR", "app/static", log)
  cacheDir := utils.GetEnv("CACHE_DIR", "app/cache", log)
  cacheBackend := utils.GetEnv("CACHE_BACKEND", "file", log)
  baseURL := utils.GetEnv("PUBLIC_BASE_URL", "http://localhost:8000", log)

  uploadDir := filepath.Join(staticDir, "uploads")
  if err := os.MkdirAll(uploadDir, 0o755); err != nil {
    log.Error("Could not create upload dir", "dir", uploadDir, "error", err)
    os.Exit(1)
  }

  // Cache store
  log.Info("Setting up session cache...", "backend", cacheBackend)
  var store cache.Store
  switch cacheBackend {
  case "redis":
    store, err = cache.NewRedisStore(log)
  default:
    store, err = cache.NewFileStore(log, cacheDir)
  }
  if err != nil {
    log.Error("Could not init cache store", "backend", cacheBackend, "error", err)
    os.Exit(1)
  }
  sessionCache := cache.New(log, store)

  // Clients
  openaiClient, err := openai.NewClient(log)
  if err != nil {
    log.Error("Could not init OpenAI client", "error", err)
    os.Exit(1)
  }

  // Services
  log.Info("Setting up services from main...")
  rankingService := services.NewRankingService(log)
  curatorService := services.NewCuratorService(log, openaiClient)
  buddyService := services.NewBuddyService(log, openaiClient)
  tagsService := services.NewTagSuggestionService(log, openaiClient)
  narrationService, err := services.NewNarrationService(log, openaiClient, staticDir)
  if err != nil {
    log.Error("Could not init NarrationService", "error", err)
    os.Exit(1)
  }
  sessionService := services.NewBuyerSessionService(log, rankingService, curatorService, narrationService, sessionCache)

  // Handlers
  log.Info("Setting up handlers from main...")
  recommendHandler := handlers.NewRecommendHandler(log, rankingService, curatorService)
  sessionHandler := handlers.NewBuyerSessionHandler(log, sessionService)
  buddyHandler := handlers.NewBuddyHandler(log, buddyService)
  ttsHandler := handlers.NewTTSHandler(log, narrationService)
  tagsHandler := handlers.NewTagsHandler(log, tagsService)
  uploadHandler := handlers.NewUploadHandler(log, uploadDir, baseURL)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    StaticDir:           staticDir,
    RecommendHandler:    recommendHandler,
    BuyerSessionHandler: sessionHandler,
    BuddyHandler:        buddyHandler,
    TTSHandler:          ttsHandler,
    TagsHandler:         tagsHandler,
    UploadHandler:       uploadHandler,
  })

  port := utils.GetEnv("PORT", "8000", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
