package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/services"
)

type TTSHandler struct {
  log          *logger.Logger
  narrationSvc services.NarrationService
}

func NewTTSHandler(log *logger.Logger, narrationSvc services.NarrationService) *TTSHandler {
  return &TTSHandler{
    log:          log.With("handler", "TTSHandler"),
    narrationSvc: narrationSvc,
  }
}

type ttsRequest struct {
  Text  string  `json:"text" binding:"required"`
  Voice string  `json:"voice"`
  Speed float64 `json:"speed"`
}

// POST /tts/story
// Synthesis failure returns the static fallback clip instead of a 5xx.
func (h *TTSHandler) Story(c *gin.Context) {
  var req ttsRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  if req.Speed == 0 {
    req.Speed = 1.0
  }

  rel, err := h.narrationSvc.SynthesizeStory(c.Request.Context(), req.Text, req.Voice, req.Speed)
  if err != nil {
    h.log.Warn("TTS failed, returning fallback clip", "error", err)
    c.JSON(http.StatusOK, gin.H{
      "audioUrl": "/static/tts/fallback.mp3",
      "note":     "AI TTS unavailable, returning fallback.",
    })
    return
  }
  RespondOK(c, gin.H{"audioUrl": "/static/" + rel})
}
