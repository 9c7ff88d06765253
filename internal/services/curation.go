package services

import (
  "context"
  "encoding/json"
  "fmt"

  "github.com/myartworld/ai-service/internal/clients/openai"
  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/types"
)

// CuratorService asks the model to refine a ranked shortlist into a curated
// top-4 with natural-language reasons. Callers must not trust the returned ids
// blindly; the orchestrator validates them against the shortlist.
type CuratorService interface {
  CurateTopPicks(ctx context.Context, user types.UserProfile, candidates []types.Artwork) (*types.CurationResult, error)
}

type curatorService struct {
  log *logger.Logger
  ai  openai.Client
}

func NewCuratorService(log *logger.Logger, ai openai.Client) CuratorService {
  return &curatorService{
    log: log.With("service", "CuratorService"),
    ai:  ai,
  }
}

const curatorSystemPrompt = "You must output STRICT JSON only. No extra text."

// candidateView is the compact projection sent to the model. Stories are
// truncated so the prompt stays bounded.
type candidateView struct {
  ID         string   `json:"id"`
  Title      string   `json:"title"`
  ArtistName string   `json:"artistName"`
  Year       int      `json:"year"`
  Price      float64  `json:"price"`
  Currency   string   `json:"currency"`
  Size       string   `json:"size"`
  Tags       []string `json:"tags"`
  Story      string   `json:"story"`
}

const maxStoryPromptChars = 220

func (s *curatorService) CurateTopPicks(ctx context.Context, user types.UserProfile, candidates []types.Artwork) (*types.CurationResult, error) {
  views := make([]candidateView, 0, len(candidates))
  for _, a := range candidates {
    views = append(views, candidateView{
      ID:         a.ID,
      Title:      a.Title,
      ArtistName: a.ArtistName,
      Year:       a.Year,
      Price:      a.Price,
      Currency:   a.Currency,
      Size:       formatSize(a.Size),
      Tags:       a.Tags,
      Story:      truncate(a.Story, maxStoryPromptChars),
    })
  }

  viewJSON, err := json.Marshal(views)
  if err != nil {
    return nil, err
  }

  prompt := fmt.Sprintf(`You are a digital curator for a PHYSICAL art marketplace.
Select the best 4 artworks for the user and explain WHY in a warm, friendly, and enthusiastic tone.

User profile:
- style: %v
- mood: %v
- colors: %v
- themes: %v
- budget: %g to %g
- space: %s

Candidate artworks (already filtered and relevant):
%s

Return STRICT JSON only:
{
  "top_artwork_ids": ["id1","id2","id3","id4"],
  "reasons": {
    "id1": ["reason1","reason2","reason3"]
  },
  "curator_welcome": "1 warm and welcoming sentence"
}

Rules:
- Do not invent facts beyond provided data.
- Tone: Friendly, approachable, and encouraging (like a helpful friend).
- Do not mention investment returns.
- Use size/space as a real factor where appropriate.
- If fewer than 4 candidates exist, return as many as possible.`,
    user.Style, user.Mood, user.Colors, user.Themes,
    user.Budget.Min, user.Budget.Max, user.Space, viewJSON)

  obj, err := s.ai.GenerateJSON(ctx, curatorSystemPrompt, prompt)
  if err != nil {
    return nil, err
  }

  result, err := decodeInto[types.CurationResult](obj)
  if err != nil {
    return nil, &openai.ParseError{Err: err}
  }
  return result, nil
}

func formatSize(sz types.Size) string {
  return fmt.Sprintf("%g×%g%s", sz.Width, sz.Height, sz.Unit)
}

func truncate(s string, max int) string {
  runes := []rune(s)
  if len(runes) <= max {
    return s
  }
  return string(runes[:max])
}

// decodeInto re-marshals a loosely-typed model object into a typed struct.
func decodeInto[T any](obj map[string]any) (*T, error) {
  raw, err := json.Marshal(obj)
  if err != nil {
    return nil, err
  }
  var out T
  if err := json.Unmarshal(raw, &out); err != nil {
    return nil, err
  }
  return &out, nil
}
