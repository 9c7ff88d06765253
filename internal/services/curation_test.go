package services

import (
  "context"
  "errors"
  "testing"

  "github.com/stretchr/testify/require"

  "github.com/myartworld/ai-service/internal/logger"
)

func TestCurateTopPicksDecodesModelOutput(t *testing.T) {
  ai := &fakeAI{obj: map[string]any{
    "top_artwork_ids": []any{"a1", "a2"},
    "reasons": map[string]any{
      "a1": []any{"matches your calm mood", "fits the space"},
    },
    "curator_welcome": "Welcome!",
  }}
  svc := NewCuratorService(logger.NewNop(), ai)

  result, err := svc.CurateTopPicks(context.Background(), testProfile(), sessionArtworks())
  require.NoError(t, err)
  require.Equal(t, []string{"a1", "a2"}, result.TopArtworkIDs)
  require.Equal(t, []string{"matches your calm mood", "fits the space"}, result.Reasons["a1"])
  require.Equal(t, "Welcome!", result.CuratorWelcome)
}

func TestCurateTopPicksPropagatesClientError(t *testing.T) {
  svc := NewCuratorService(logger.NewNop(), &fakeAI{err: errors.New("timeout")})
  _, err := svc.CurateTopPicks(context.Background(), testProfile(), sessionArtworks())
  require.Error(t, err)
}

func TestTruncateIsRuneSafe(t *testing.T) {
  s := "héllo wörld"
  got := truncate(s, 4)
  require.Equal(t, "héll", got)
  require.Equal(t, s, truncate(s, 100))
}

func TestExplainArtworkDecodes(t *testing.T) {
  ai := &fakeAI{obj: map[string]any{
    "summary":         "A calm piece.",
    "bullets":         []any{"matches calm", "fits budget", "ocean theme"},
    "placement":       "Above the sofa.",
    "buyer_questions": []any{"Is framing included?"},
  }}
  svc := NewBuddyService(logger.NewNop(), ai)

  result, err := svc.ExplainArtwork(context.Background(), testProfile(), sessionArtworks()[0])
  require.NoError(t, err)
  require.Equal(t, "A calm piece.", result.Summary)
  require.Len(t, result.Bullets, 3)
}

func TestCompareArtworksDecodes(t *testing.T) {
  ai := &fakeAI{obj: map[string]any{
    "verdict": "A",
    "why":     "A fits the living room better.",
    "differences": []any{
      map[string]any{"aspect": "Price", "A": "Higher", "B": "Lower"},
    },
    "confidence_tip": "Go with your gut.",
  }}
  svc := NewBuddyService(logger.NewNop(), ai)

  arts := sessionArtworks()
  result, err := svc.CompareArtworks(context.Background(), testProfile(), arts[0], arts[1])
  require.NoError(t, err)
  require.Equal(t, "A", result.Verdict)
  require.Len(t, result.Differences, 1)
  require.Equal(t, "Price", result.Differences[0].Aspect)
}
