package services

import (
  "context"
  "encoding/json"
  "sort"
  "time"

  "github.com/myartworld/ai-service/internal/cache"
  "github.com/myartworld/ai-service/internal/logger"
  "github.com/myartworld/ai-service/internal/types"
)

// BuyerSessionService runs a full curation session: cache check, deterministic
// ranking, optional model curation over the shortlist, optional narration, and
// the final cache write. Collaborator failures never surface to the caller;
// every path produces a usable SessionResult.
type BuyerSessionService interface {
  Run(ctx context.Context, user types.UserProfile, artworks []types.Artwork, opts types.SessionOptions) (*types.SessionResult, error)
}

type buyerSessionService struct {
  log      *logger.Logger
  ranking  RankingService
  curator  CuratorService
  narrator NarrationService
  cache    *cache.Cache
}

const (
  sessionKeyPrefix = "buyer_session"
  sessionTTL       = 6 * time.Hour

  shortlistSize = 20
  fallbackSize  = 4

  fallbackWelcome = "Here are artworks selected based on your preferences."
  fallbackReason  = "Matches your preferences."

  // Story prefix length used in the fingerprint. The full story is left out
  // of the key on purpose: trivial text edits should not churn cache keys.
  fingerprintStoryChars = 120
)

func NewBuyerSessionService(
  log *logger.Logger,
  ranking RankingService,
  curator CuratorService,
  narrator NarrationService,
  sessionCache *cache.Cache,
) BuyerSessionService {
  return &buyerSessionService{
    log:      log.With("service", "BuyerSessionService"),
    ranking:  ranking,
    curator:  curator,
    narrator: narrator,
    cache:    sessionCache,
  }
}

// artFingerprint is the reduced artwork projection that goes into the session
// key. Tags are sorted so tag order never changes the key.
type artFingerprint struct {
  ID       string   `json:"id"`
  Price    float64  `json:"price"`
  Currency string   `json:"currency"`
  Year     int      `json:"year"`
  Size     sizeKey  `json:"size"`
  Tags     []string `json:"tags"`
  Story    string   `json:"story"`
}

type sizeKey struct {
  W float64 `json:"w"`
  H float64 `json:"h"`
  U string  `json:"u"`
}

type sessionFingerprint struct {
  UserProfile types.UserProfile `json:"userProfile"`
  Artworks    []artFingerprint  `json:"artFingerprint"`
  UseAI       bool              `json:"use_ai"`
  PreTTS      bool              `json:"pre_tts"`
}

func (s *buyerSessionService) Run(ctx context.Context, user types.UserProfile, artworks []types.Artwork, opts types.SessionOptions) (*types.SessionResult, error) {
  key, err := cache.MakeKey(sessionKeyPrefix, buildFingerprint(user, artworks, opts))
  if err != nil {
    return nil, err
  }
  log := s.log.With("session_key", key)

  // CHECK_CACHE: a hit must be indistinguishable from a fresh result apart
  // from the attached key.
  if raw, ok := s.cache.Get(ctx, key, sessionTTL); ok {
    var cached types.SessionResult
    if err := json.Unmarshal(raw, &cached); err == nil {
      cached.SessionKey = key
      log.Debug("Session cache hit")
      return &cached, nil
    }
    log.Warn("Cached session payload unreadable, recomputing")
  }

  // RANK
  ranked := s.ranking.Rank(artworks, user)
  if len(ranked) > shortlistSize {
    ranked = ranked[:shortlistSize]
  }
  candidates := make([]types.Artwork, 0, len(ranked))
  for _, entry := range ranked {
    candidates = append(candidates, entry.Artwork)
  }

  fallbackIDs := make([]string, 0, fallbackSize)
  for _, c := range candidates {
    if len(fallbackIDs) == fallbackSize {
      break
    }
    fallbackIDs = append(fallbackIDs, c.ID)
  }

  result := &types.SessionResult{
    RecommendedArtworks: fallbackIDs,
    CuratorWelcome:      fallbackWelcome,
    Reasons:             map[string][]string{},
    Audio:               map[string]string{},
  }
  for _, id := range fallbackIDs {
    result.Reasons[id] = []string{fallbackReason}
  }

  // EXTERNAL_CURATE: the model's ids are validated against the shortlist;
  // hallucinated ids are dropped, and any failure falls back silently.
  if opts.UseAI && len(candidates) > 0 {
    s.curate(ctx, log, user, candidates, fallbackIDs, result)
  }

  // FINALIZE_CACHE
  if opts.PreTTS && s.narrator != nil {
    rel, err := s.narrator.SynthesizeStory(ctx, result.CuratorWelcome, "alloy", 1.0)
    if err != nil {
      log.Warn("Welcome narration failed, continuing without audio", "error", err)
      result.Audio["curator_welcome_url"] = ""
    } else {
      result.Audio["curator_welcome_url"] = "/static/" + rel
    }
  }

  if err := s.cache.Set(ctx, key, result); err != nil {
    log.Warn("Session cache write failed", "error", err)
  }

  result.SessionKey = key
  return result, nil
}

func (s *buyerSessionService) curate(
  ctx context.Context,
  log *logger.Logger,
  user types.UserProfile,
  candidates []types.Artwork,
  fallbackIDs []string,
  result *types.SessionResult,
) {
  curated, err := s.curator.CurateTopPicks(ctx, user, candidates)
  if err != nil {
    log.Warn("Curation failed, using deterministic fallback", "error", err)
    return
  }

  candidateIDs := make(map[string]struct{}, len(candidates))
  for _, c := range candidates {
    candidateIDs[c.ID] = struct{}{}
  }

  topIDs := make([]string, 0, len(curated.TopArtworkIDs))
  for _, id := range curated.TopArtworkIDs {
    if _, ok := candidateIDs[id]; ok {
      topIDs = append(topIDs, id)
    }
  }
  if len(topIDs) < len(curated.TopArtworkIDs) {
    log.Warn("Curator returned ids outside the shortlist",
      "claimed", len(curated.TopArtworkIDs), "valid", len(topIDs))
  }
  if len(topIDs) == 0 {
    topIDs = fallbackIDs
  }

  result.RecommendedArtworks = topIDs
  if curated.CuratorWelcome != "" {
    result.CuratorWelcome = curated.CuratorWelcome
  }

  // Reasons are only trusted for ids that made the final list; anything the
  // curator skipped gets the flat justification.
  reasons := make(map[string][]string, len(topIDs))
  for _, id := range topIDs {
    if rs := curated.Reasons[id]; len(rs) > 0 {
      reasons[id] = rs
    } else {
      reasons[id] = []string{fallbackReason}
    }
  }
  result.Reasons = reasons
}

func buildFingerprint(user types.UserProfile, artworks []types.Artwork, opts types.SessionOptions) sessionFingerprint {
  arts := make([]artFingerprint, 0, len(artworks))
  for _, a := range artworks {
    tags := append([]string(nil), a.Tags...)
    sort.Strings(tags)
    arts = append(arts, artFingerprint{
      ID:       a.ID,
      Price:    a.Price,
      Currency: a.Currency,
      Year:     a.Year,
      Size:     sizeKey{W: a.Size.Width, H: a.Size.Height, U: a.Size.Unit},
      Tags:     tags,
      Story:    truncate(a.Story, fingerprintStoryChars),
    })
  }
  return sessionFingerprint{
    UserProfile: user,
    Artworks:    arts,
    UseAI:       opts.UseAI,
    PreTTS:      opts.PreTTS,
  }
}
