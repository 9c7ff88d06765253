package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/services"
  "github.com/myartworld/ai-service/internal/types"
)

type BuyerSessionHandler struct {
  log        *logger.Logger
  sessionSvc services.BuyerSessionService
}

func NewBuyerSessionHandler(log *logger.Logger, sessionSvc services.BuyerSessionService) *BuyerSessionHandler {
  return &BuyerSessionHandler{
    log:        log.With("handler", "BuyerSessionHandler"),
    sessionSvc: sessionSvc,
  }
}

type buyerSessionRequest struct {
  UserProfile types.UserProfile `json:"userProfile" binding:"required"`
  Artworks    []types.Artwork   `json:"artworks" binding:"required"`
  Options     *sessionOptions   `json:"options"`
}

type sessionOptions struct {
  UseAI  *bool `json:"use_ai"`
  PreTTS *bool `json:"pre_tts"`
}

// POST /ai/buyer-session
func (h *BuyerSessionHandler) CreateSession(c *gin.Context) {
  var req buyerSessionRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  if req.UserProfile.Budget.Min > req.UserProfile.Budget.Max {
    RespondError(c, http.StatusBadRequest, "invalid_budget", errBudgetInverted)
    return
  }

  // use_ai defaults on, pre_tts defaults off
  opts := types.SessionOptions{UseAI: true, PreTTS: false}
  if req.Options != nil {
    if req.Options.UseAI != nil {
      opts.UseAI = *req.Options.UseAI
    }
    if req.Options.PreTTS != nil {
      opts.PreTTS = *req.Options.PreTTS
    }
  }

  result, err := h.sessionSvc.Run(c.Request.Context(), req.UserProfile, req.Artworks, opts)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "session_failed", err)
    return
  }
  RespondOK(c, result)
}
