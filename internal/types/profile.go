package types

// Budget is the buyer's price band. Invariant: Min <= Max.
type Budget struct {
  Min float64 `json:"min"`
  Max float64 `json:"max"`
}

// UserProfile is the buyer preference vector. Constructed fresh per request,
// immutable, never persisted.
//
// Space is one of: bedroom | living_room | study | office | hallway. It is a
// soft signal only and is not validated in the scoring path.
type UserProfile struct {
  Style  []string `json:"style"`
  Mood   []string `json:"mood"`
  Colors []string `json:"colors"`
  Themes []string `json:"themes"`
  Budget Budget   `json:"budget" binding:"required"`
  Space  string   `json:"space"`
}
