package types

// RankedEntry pairs an artwork with its preference score. One per request, ephemeral.
type RankedEntry struct {
  Artwork Artwork `json:"artwork"`
  Score   int     `json:"score"`
}

// SessionOptions are the behavior flags of a buyer session. They are part of the
// session fingerprint: flipping a flag produces a different cache key.
type SessionOptions struct {
  UseAI  bool `json:"use_ai"`
  PreTTS bool `json:"pre_tts"`
}

// CurationResult is what the external curator returns for a shortlist.
type CurationResult struct {
  TopArtworkIDs  []string            `json:"top_artwork_ids"`
  Reasons        map[string][]string `json:"reasons"`
  CuratorWelcome string              `json:"curator_welcome"`
}

// SessionResult is the buyer-facing output of a curation session. Produced once
// per distinct cache key and reused on hit.
type SessionResult struct {
  SessionKey          string              `json:"sessionKey,omitempty"`
  RecommendedArtworks []string            `json:"recommendedArtworks"`
  CuratorWelcome      string              `json:"curator_welcome"`
  Reasons             map[string][]string `json:"reasons"`
  Audio               map[string]string   `json:"audio"`
}

// ExplainResult is the buyer-buddy explanation for a single artwork.
type ExplainResult struct {
  Summary        string   `json:"summary"`
  Bullets        []string `json:"bullets"`
  Placement      string   `json:"placement"`
  BuyerQuestions []string `json:"buyer_questions"`
}

// ComparisonRow is one aspect-by-aspect difference between two artworks.
type ComparisonRow struct {
  Aspect string `json:"aspect"`
  A      string `json:"A"`
  B      string `json:"B"`
}

// CompareResult is the buyer-buddy verdict between two artworks.
type CompareResult struct {
  Verdict       string          `json:"verdict"`
  Why           string          `json:"why"`
  Differences   []ComparisonRow `json:"differences"`
  ConfidenceTip string          `json:"confidence_tip"`
}
