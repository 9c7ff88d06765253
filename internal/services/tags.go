package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/myartworld/ai-service/internal/clients/openai"
  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/types"
)

// TagSuggestionService proposes listing tags for an artwork from its metadata.
// Model output is filtered against the fixed taxonomy: matching is
// case-insensitive, output keeps the taxonomy's canonical casing, anything
// unrecognized is dropped. Never fails; a broken model yields empty lists.
type TagSuggestionService interface {
  SuggestTags(ctx context.Context, req types.TagSuggestRequest) types.TagSuggestResponse
}

type tagSuggestionService struct {
  log *logger.Logger
  ai  openai.Client
}

const maxTagsPerCategory = 3

func NewTagSuggestionService(log *logger.Logger, ai openai.Client) TagSuggestionService {
  return &tagSuggestionService{
    log: log.With("service", "TagSuggestionService"),
    ai:  ai,
  }
}

func (s *tagSuggestionService) SuggestTags(ctx context.Context, req types.TagSuggestRequest) types.TagSuggestResponse {
  sizeStr := ""
  if req.Size != nil {
    sizeStr = formatSize(*req.Size)
  }

  prompt := fmt.Sprintf(`You are helping an ARTIST list a physical artwork.
Generate relevant tags based on the description below.

Artwork Info:
- Title: %s
- Year: %d
- Medium: %s
- Size: %s
- Story/Description: %s

Allowed tags (choose ONLY from these lists):
- Style: %v
- Mood: %v
- Colors: %v
- Themes: %v
- Space: %v

Return STRICT JSON only:
{
  "style": ["1-3 tags"],
  "mood": ["1-3 tags"],
  "colors": ["1-3 tags (infer from medium/title if possible)"],
  "themes": ["1-3 tags"],
  "space": ["1-3 tags"],
  "explanation": "1 short sentence explaining why."
}

Rules:
- Do not make up random things, stick to the vibe of the title/story.
- If story is empty, infer from title and medium.`,
    req.Title, req.Year, req.Medium, sizeStr, req.Story,
    types.StyleTags, types.MoodTags, types.ColorTags, types.ThemeTags, types.SpaceTags)

  obj, err := s.ai.GenerateJSON(ctx, "You are a helpful tagging assistant. Output valid JSON.", prompt)
  if err != nil {
    s.log.Warn("Tag suggestion failed", "title", req.Title, "error", err)
    return types.TagSuggestResponse{
      Style:       []string{},
      Mood:        []string{},
      Colors:      []string{},
      Themes:      []string{},
      Space:       []string{},
      Explanation: "Could not generate tags (AI Error).",
    }
  }

  resp := types.TagSuggestResponse{
    Style:       filterToTaxonomy(stringList(obj["style"]), types.StyleTags, maxTagsPerCategory),
    Mood:        filterToTaxonomy(stringList(obj["mood"]), types.MoodTags, maxTagsPerCategory),
    Colors:      filterToTaxonomy(stringList(obj["colors"]), types.ColorTags, maxTagsPerCategory),
    Themes:      filterToTaxonomy(stringList(obj["themes"]), types.ThemeTags, maxTagsPerCategory),
    Space:       filterToTaxonomy(stringList(obj["space"]), types.SpaceTags, maxTagsPerCategory),
    Explanation: "Generated from metadata.",
  }
  if expl, ok := obj["explanation"].(string); ok && expl != "" {
    resp.Explanation = expl
  }
  return resp
}

// filterToTaxonomy keeps values present in allowed (case-insensitive, first
// occurrence wins) and emits them with the taxonomy's canonical casing.
func filterToTaxonomy(values, allowed []string, limit int) []string {
  canonical := make(map[string]string, len(allowed))
  for _, a := range allowed {
    canonical[strings.ToLower(a)] = a
  }

  out := make([]string, 0, limit)
  seen := make(map[string]struct{}, limit)
  for _, v := range values {
    folded := strings.ToLower(strings.TrimSpace(v))
    canon, ok := canonical[folded]
    if !ok {
      continue
    }
    if _, dup := seen[folded]; dup {
      continue
    }
    seen[folded] = struct{}{}
    out = append(out, canon)
    if len(out) == limit {
      break
    }
  }
  return out
}

func stringList(v any) []string {
  items, ok := v.([]any)
  if !ok {
    return nil
  }
  out := make([]string, 0, len(items))
  for _, item := range items {
    if s, ok := item.(string); ok {
      out = append(out, s)
    }
  }
  return out
}
