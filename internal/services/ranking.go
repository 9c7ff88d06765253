package services

import (
  "sort"

  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/types"
)

// RankingService orders artworks by preference score, best first.
type RankingService interface {
  Rank(artworks []types.Artwork, user types.UserProfile) []types.RankedEntry
}

type rankingService struct {
  log *logger.Logger
}

func NewRankingService(log *logger.Logger) RankingService {
  return &rankingService{
    log: log.With("service", "RankingService"),
  }
}

// Rank scores every artwork and returns entries with score > 0 sorted
// descending. The budget sentinel and zero-overlap items never make it in.
// Ties keep original input order (stable sort) so results are reproducible.
func (s *rankingService) Rank(artworks []types.Artwork, user types.UserProfile) []types.RankedEntry {
  ranked := make([]types.RankedEntry, 0, len(artworks))
  for _, art := range artworks {
    if sc := ScoreArtwork(art, user); sc > 0 {
      ranked = append(ranked, types.RankedEntry{Artwork: art, Score: sc})
    }
  }

  sort.SliceStable(ranked, func(i, j int) bool {
    return ranked[i].Score > ranked[j].Score
  })

  s.log.Debug("Ranked artworks", "candidates", len(artworks), "kept", len(ranked))
  return ranked
}
