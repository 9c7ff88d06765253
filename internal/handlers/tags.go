package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/services"
  "github.com/myartworld/ai-service/internal/types"
)

type TagsHandler struct {
  log     *logger.Logger
  tagsSvc services.TagSuggestionService
}

func NewTagsHandler(log *logger.Logger, tagsSvc services.TagSuggestionService) *TagsHandler {
  return &TagsHandler{
    log:     log.With("handler", "TagsHandler"),
    tagsSvc: tagsSvc,
  }
}

// POST /ai/suggest-tags
func (h *TagsHandler) SuggestTags(c *gin.Context) {
  var req types.TagSuggestRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  RespondOK(c, h.tagsSvc.SuggestTags(c.Request.Context(), req))
}
