package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/services"
  "github.com/myartworld/ai-service/internal/types"
)

var errBudgetInverted = errors.New("budget.min must not exceed budget.max")

type RecommendHandler struct {
  log        *logger.Logger
  rankingSvc services.RankingService
  curatorSvc services.CuratorService
}

func NewRecommendHandler(log *logger.Logger, rankingSvc services.RankingService, curatorSvc services.CuratorService) *RecommendHandler {
  return &RecommendHandler{
    log:        log.With("handler", "RecommendHandler"),
    rankingSvc: rankingSvc,
    curatorSvc: curatorSvc,
  }
}

type recommendRequest struct {
  UserProfile types.UserProfile `json:"userProfile" binding:"required"`
  Artworks    []types.Artwork   `json:"artworks" binding:"required"`
}

const recommendShortlistSize = 20

// POST /ai/recommend
// Uncached one-shot recommendation: rank, take the top 20, ask the curator.
// Curator failure degrades to the deterministic top-4.
func (h *RecommendHandler) Recommend(c *gin.Context) {
  var req recommendRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  if req.UserProfile.Budget.Min > req.UserProfile.Budget.Max {
    RespondError(c, http.StatusBadRequest, "invalid_budget", errBudgetInverted)
    return
  }

  ranked := h.rankingSvc.Rank(req.Artworks, req.UserProfile)
  if len(ranked) > recommendShortlistSize {
    ranked = ranked[:recommendShortlistSize]
  }
  candidates := make([]types.Artwork, 0, len(ranked))
  for _, entry := range ranked {
    candidates = append(candidates, entry.Artwork)
  }

  if len(candidates) > 0 {
    if curated, err := h.curatorSvc.CurateTopPicks(c.Request.Context(), req.UserProfile, candidates); err == nil {
      RespondOK(c, curated)
      return
    } else {
      h.log.Warn("Curation failed on /ai/recommend, returning fallback", "error", err)
    }
  }

  fallback := make([]string, 0, 4)
  for _, cand := range candidates {
    if len(fallback) == 4 {
      break
    }
    fallback = append(fallback, cand.ID)
  }
  RespondOK(c, gin.H{
    "recommendedArtworks": fallback,
    "curator_welcome":     "Here are some artworks selected based on your preferences.",
  })
}
