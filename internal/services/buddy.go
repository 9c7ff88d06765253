package services

import (
  "context"
  "fmt"

  "github.com/myartworld/ai-service/internal/clients/openai"
  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/types"
)

// BuddyService is the buying-decision assistant: per-artwork explanations and
// two-way comparisons, grounded only in the data the caller provides.
type BuddyService interface {
  ExplainArtwork(ctx context.Context, user types.UserProfile, art types.Artwork) (*types.ExplainResult, error)
  CompareArtworks(ctx context.Context, user types.UserProfile, artA, artB types.Artwork) (*types.CompareResult, error)
}

type buddyService struct {
  log *logger.Logger
  ai  openai.Client
}

func NewBuddyService(log *logger.Logger, ai openai.Client) BuddyService {
  return &buddyService{
    log: log.With("service", "BuddyService"),
    ai:  ai,
  }
}

func (s *buddyService) ExplainArtwork(ctx context.Context, user types.UserProfile, art types.Artwork) (*types.ExplainResult, error) {
  prompt := fmt.Sprintf(`You are an art curator + buying decision assistant for a PHYSICAL art marketplace.
Your job: give the buyer confidence without making fake claims.

User preferences:
- style: %v
- mood: %v
- colors: %v
- themes: %v
- budget: %g to %g
- space: %s

Artwork:
- id: %s
- title: %s
- artist: %s
- year: %d
- price: %g %s
- size: %s
- tags: %v
- story: %s

Return STRICT JSON only in this format:
{
  "summary": "1 short persuasive paragraph, not salesy",
  "bullets": ["3 concise reasons tied to user prefs, size/space, and story/tags"],
  "placement": "1 line placement suggestion using size + space",
  "buyer_questions": ["2-3 practical questions for physical purchase (framing/shipping/care)"]
}

Rules:
- Do not invent details not provided
- Do not mention investment returns
- Keep the tone supportive, curator-like`,
    user.Style, user.Mood, user.Colors, user.Themes,
    user.Budget.Min, user.Budget.Max, user.Space,
    art.ID, art.Title, art.ArtistName, art.Year, art.Price, art.Currency,
    formatSize(art.Size), art.Tags, art.Story)

  obj, err := s.ai.GenerateJSON(ctx, curatorSystemPrompt, prompt)
  if err != nil {
    return nil, err
  }
  result, err := decodeInto[types.ExplainResult](obj)
  if err != nil {
    return nil, &openai.ParseError{Err: err}
  }
  return result, nil
}

func (s *buddyService) CompareArtworks(ctx context.Context, user types.UserProfile, artA, artB types.Artwork) (*types.CompareResult, error) {
  prompt := fmt.Sprintf(`You are a helpful art advisor helping a buyer choose between two pieces.
Be balanced, objective, but help them reach a conclusion based on their preferences.

User Profile:
- style: %v
- mood: %v
- colors: %v
- themes: %v
- budget: %g-%g
- space: %s

Option A:
- Title: %s
- Artist: %s
- Price: %g
- Size: %s
- Tags: %v
- Story: %s

Option B:
- Title: %s
- Artist: %s
- Price: %g
- Size: %s
- Tags: %v
- Story: %s

Return STRICT JSON in this format:
{
  "verdict": "A" or "B" or "depends",
  "why": "1 sentence summary of the recommendation",
  "differences": [
    { "aspect": "Price", "A": "Higher ($500)", "B": "Lower ($300)" },
    { "aspect": "Mood", "A": "...", "B": "..." }
  ],
  "confidence_tip": "A closing tip to help them decide (e.g. 'If your room is dark, go with B')"
}`,
    user.Style, user.Mood, user.Colors, user.Themes,
    user.Budget.Min, user.Budget.Max, user.Space,
    artA.Title, artA.ArtistName, artA.Price, formatSize(artA.Size), artA.Tags, artA.Story,
    artB.Title, artB.ArtistName, artB.Price, formatSize(artB.Size), artB.Tags, artB.Story)

  obj, err := s.ai.GenerateJSON(ctx, curatorSystemPrompt, prompt)
  if err != nil {
    return nil, err
  }
  result, err := decodeInto[types.CompareResult](obj)
  if err != nil {
    return nil, &openai.ParseError{Err: err}
  }
  return result, nil
}
