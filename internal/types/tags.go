package types

// Fixed tag taxonomy. Suggestions from the model are filtered against these
// allow-lists; anything unrecognized is dropped.
var (
  StyleTags = []string{"abstract", "realistic", "minimal", "surreal", "expressionist", "impressionist", "pop-art", "geometric"}
  MoodTags  = []string{"calm", "energetic", "melancholic", "joyful", "mysterious", "reflective"}
  ColorTags = []string{"blue", "red", "green", "yellow", "black", "white", "monochrome", "pastel"}
  ThemeTags = []string{"nature", "ocean", "city", "memory", "identity", "dream", "portrait", "landscape"}
  SpaceTags = []string{"bedroom", "living_room", "study", "office", "hallway"}
)

// TagSuggestRequest is the artwork metadata an artist submits while listing.
type TagSuggestRequest struct {
  Title  string         `json:"title" binding:"required"`
  Story  string         `json:"story"`
  Medium string         `json:"medium"`
  Year   int            `json:"year"`
  Size   *Size          `json:"size"`

  // One of these may be provided; the current model is text-only and ignores them.
  ImageURL    string `json:"imageUrl"`
  ImageBase64 string `json:"imageBase64"`
}

// TagSuggestResponse carries taxonomy-filtered tag suggestions per category.
type TagSuggestResponse struct {
  Style       []string `json:"style"`
  Mood        []string `json:"mood"`
  Colors      []string `json:"colors"`
  Themes      []string `json:"themes"`
  Space       []string `json:"space"`
  Explanation string   `json:"explanation"`
}
