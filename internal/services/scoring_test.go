package services

import (
  "testing"

  "github.com/myartworld/ai-service/internal/types"
)

func testProfile() types.UserProfile {
  return types.UserProfile{
    Style:  []string{"abstract"},
    Mood:   []string{"calm"},
    Colors: []string{"blue"},
    Themes: []string{"ocean"},
    Budget: types.Budget{Min: 500, Max: 5000},
    Space:  "living_room",
  }
}

func testArtwork(price float64, tags ...string) types.Artwork {
  return types.Artwork{
    ID:    "a1",
    Price: price,
    Size:  types.Size{Width: 100, Height: 80, Unit: "cm"},
    Tags:  tags,
  }
}

func TestScoreArtworkBudgetGate(t *testing.T) {
  user := testProfile()

  cases := []struct {
    name  string
    price float64
    want  int
  }{
    {name: "below_min", price: 300, want: BudgetSentinel},
    {name: "above_max", price: 9000, want: BudgetSentinel},
    {name: "at_min", price: 500, want: 4 + 5 + 2},  // abstract + budget + living_room 8000cm2
    {name: "at_max", price: 5000, want: 4 + 5 + 2},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      got := ScoreArtwork(testArtwork(tc.price, "abstract"), user)
      if got != tc.want {
        t.Fatalf("ScoreArtwork(price=%v)=%d, want %d", tc.price, got, tc.want)
      }
    })
  }
}

func TestScoreArtworkBudgetGateShortCircuits(t *testing.T) {
  user := testProfile()
  // Every tag matches every category it can, but price is out of budget.
  art := testArtwork(300, "abstract", "calm", "blue", "ocean")
  if got := ScoreArtwork(art, user); got != BudgetSentinel {
    t.Fatalf("out-of-budget score=%d, want sentinel %d", got, BudgetSentinel)
  }
}

func TestScoreArtworkTagWeights(t *testing.T) {
  user := testProfile()
  user.Space = "hallway" // no space bonus anywhere

  cases := []struct {
    name string
    tags []string
    want int
  }{
    {name: "no_tags", tags: nil, want: 5},
    {name: "style_only", tags: []string{"abstract"}, want: 4 + 5},
    {name: "mood_only", tags: []string{"calm"}, want: 3 + 5},
    {name: "color_only", tags: []string{"blue"}, want: 2 + 5},
    {name: "theme_only", tags: []string{"ocean"}, want: 2 + 5},
    {name: "all_four", tags: []string{"abstract", "calm", "blue", "ocean"}, want: 4 + 3 + 2 + 2 + 5},
    {name: "duplicate_tag_counts_twice", tags: []string{"abstract", "abstract"}, want: 4 + 4 + 5},
    {name: "unknown_tags_ignored", tags: []string{"bold", "vivid"}, want: 5},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      got := ScoreArtwork(testArtwork(1000, tc.tags...), user)
      if got != tc.want {
        t.Fatalf("ScoreArtwork(tags=%v)=%d, want %d", tc.tags, got, tc.want)
      }
    })
  }
}

func TestScoreArtworkMultiCategoryTag(t *testing.T) {
  // A tag sitting in several categories pays each bonus independently.
  user := testProfile()
  user.Space = "hallway"
  user.Style = []string{"ocean"}
  user.Themes = []string{"ocean"}

  got := ScoreArtwork(testArtwork(1000, "ocean"), user)
  if want := 4 + 2 + 5; got != want {
    t.Fatalf("multi-category tag score=%d, want %d", got, want)
  }
}

func TestScoreArtworkCaseInsensitiveTags(t *testing.T) {
  user := testProfile()
  user.Space = "hallway"
  user.Style = []string{"Abstract"}

  got := ScoreArtwork(testArtwork(1000, "ABSTRACT"), user)
  if want := 4 + 5; got != want {
    t.Fatalf("case-folded score=%d, want %d", got, want)
  }
}

func TestScoreArtworkSpaceBonus(t *testing.T) {
  cases := []struct {
    name   string
    space  string
    w, h   float64
    bonus  int
  }{
    {name: "bedroom_small", space: "bedroom", w: 50, h: 50, bonus: 2},       // 2500
    {name: "bedroom_large", space: "bedroom", w: 100, h: 80, bonus: 0},      // 8000
    {name: "bedroom_boundary", space: "bedroom", w: 100, h: 50, bonus: 2},   // exactly 5000
    {name: "living_room_large", space: "living_room", w: 100, h: 80, bonus: 2},
    {name: "living_room_small", space: "living_room", w: 50, h: 50, bonus: 0},
    {name: "living_room_boundary", space: "living_room", w: 100, h: 50, bonus: 2},
    // study/office/hallway intentionally carry no bonus
    {name: "study_small", space: "study", w: 50, h: 50, bonus: 0},
    {name: "office_large", space: "office", w: 100, h: 80, bonus: 0},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      user := testProfile()
      user.Space = tc.space
      art := testArtwork(1000)
      art.Size = types.Size{Width: tc.w, Height: tc.h, Unit: "cm"}

      got := ScoreArtwork(art, user)
      if want := 5 + tc.bonus; got != want {
        t.Fatalf("ScoreArtwork(space=%s, %vx%v)=%d, want %d", tc.space, tc.w, tc.h, got, want)
      }
    })
  }
}

func TestScoreArtworkSpecScenario(t *testing.T) {
  // tags ["abstract","blue"] against style=[abstract], colors=[blue],
  // in budget, space mismatch: 4 + 2 + 5 = 11.
  user := testProfile()
  user.Space = "bedroom"
  art := testArtwork(1000, "abstract", "blue") // 8000cm2, no bedroom bonus

  if got := ScoreArtwork(art, user); got != 11 {
    t.Fatalf("scenario score=%d, want 11", got)
  }
}
