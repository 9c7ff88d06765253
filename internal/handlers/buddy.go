package handlers

import (
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/services"
  "github.com/myartworld/ai-service/internal/types"
)

type BuddyHandler struct {
  log      *logger.Logger
  buddySvc services.BuddyService
}

func NewBuddyHandler(log *logger.Logger, buddySvc services.BuddyService) *BuddyHandler {
  return &BuddyHandler{
    log:      log.With("handler", "BuddyHandler"),
    buddySvc: buddySvc,
  }
}

type explainRequest struct {
  UserProfile types.UserProfile `json:"userProfile" binding:"required"`
  Artwork     types.Artwork     `json:"artwork" binding:"required"`
}

// POST /ai/explain
// Model failure degrades to a fixed supportive blurb rather than an error.
func (h *BuddyHandler) Explain(c *gin.Context) {
  var req explainRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  result, err := h.buddySvc.ExplainArtwork(c.Request.Context(), req.UserProfile, req.Artwork)
  if err != nil {
    h.log.Warn("Explain failed, returning fallback", "artwork_id", req.Artwork.ID, "error", err)
    title := req.Artwork.Title
    if title == "" {
      title = "Artwork"
    }
    RespondOK(c, types.ExplainResult{
      Summary:   fmt.Sprintf("This is a beautiful piece titled %s. (AI unavailable)", title),
      Bullets:   []string{"Matches your preferences", "Fits within budget", "Complementary style"},
      Placement: "Perfect for your wall.",
      BuyerQuestions: []string{
        "Is framing included?",
        "What are the shipping costs?",
        "Is a certificate of authenticity provided?",
      },
    })
    return
  }
  RespondOK(c, result)
}

type compareRequest struct {
  UserProfile types.UserProfile `json:"userProfile" binding:"required"`
  ArtA        types.Artwork     `json:"artA" binding:"required"`
  ArtB        types.Artwork     `json:"artB" binding:"required"`
}

// POST /ai/compare
func (h *BuddyHandler) Compare(c *gin.Context) {
  var req compareRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  result, err := h.buddySvc.CompareArtworks(c.Request.Context(), req.UserProfile, req.ArtA, req.ArtB)
  if err != nil {
    h.log.Warn("Compare failed, returning fallback", "error", err)
    RespondOK(c, types.CompareResult{
      Verdict: "depends",
      Why:     "Both artworks have unique qualities that match your profile. (AI unavailable)",
      Differences: []types.ComparisonRow{
        {Aspect: "Price", A: fmt.Sprintf("%g", req.ArtA.Price), B: fmt.Sprintf("%g", req.ArtB.Price)},
        {Aspect: "Style", A: "Unique", B: "Distinctive"},
      },
      ConfidenceTip: "Choose the one that speaks to you most emotionally.",
    })
    return
  }
  RespondOK(c, result)
}
