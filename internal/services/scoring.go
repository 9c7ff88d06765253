package services

import (
  "strings"

  "github.com/myartworld/ai-service/internal/types"
)

// Tag-category weights. A single tag can land in several categories at once;
// each matching category pays out independently, once per tag occurrence.
const (
  styleWeight = 4
  moodWeight  = 3
  colorWeight = 2
  themeWeight = 2

  inBudgetBonus = 5
  spaceFitBonus = 2

  // BudgetSentinel is returned for any artwork priced outside the buyer's
  // budget. It short-circuits every other bonus.
  BudgetSentinel = -100

  // Canvas area threshold separating "small room" pieces from statement
  // pieces, in the artwork's own square units.
  spaceAreaThreshold = 5000
)

// ScoreArtwork maps (artwork, profile) to a signed preference score. Pure and
// deterministic; malformed numeric input is the caller's problem.
//
// Tag matching is case-insensitive (profiles and tags arrive from separate
// clients with inconsistent casing).
func ScoreArtwork(art types.Artwork, user types.UserProfile) int {
  if art.Price < user.Budget.Min || art.Price > user.Budget.Max {
    return BudgetSentinel
  }

  style := foldSet(user.Style)
  mood := foldSet(user.Mood)
  colors := foldSet(user.Colors)
  themes := foldSet(user.Themes)

  score := 0
  for _, tag := range art.Tags {
    t := strings.ToLower(tag)
    if _, ok := style[t]; ok {
      score += styleWeight
    }
    if _, ok := mood[t]; ok {
      score += moodWeight
    }
    if _, ok := colors[t]; ok {
      score += colorWeight
    }
    if _, ok := themes[t]; ok {
      score += themeWeight
    }
  }

  score += inBudgetBonus

  // Space fit is a deliberately partial rule: only bedroom and living_room
  // carry a bonus today, pending product input on the other placements.
  area := art.Area()
  switch user.Space {
  case "bedroom":
    if area <= spaceAreaThreshold {
      score += spaceFitBonus
    }
  case "living_room":
    if area >= spaceAreaThreshold {
      score += spaceFitBonus
    }
  }

  return score
}

func foldSet(values []string) map[string]struct{} {
  set := make(map[string]struct{}, len(values))
  for _, v := range values {
    set[strings.ToLower(v)] = struct{}{}
  }
  return set
}
