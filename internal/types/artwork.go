package types

// Size is the physical dimensions of a piece. Unit is free-form ("cm" in practice).
type Size struct {
  Width  float64 `json:"width" binding:"required,gt=0"`
  Height float64 `json:"height" binding:"required,gt=0"`
  Unit   string  `json:"unit"`
}

// Artwork is a sellable physical item supplied per request by the caller.
// The catalog itself lives in the marketplace backend; this service never persists it.
type Artwork struct {
  ID            string   `json:"id" binding:"required"`
  Title         string   `json:"title"`
  ArtistName    string   `json:"artistName"`
  Year          int      `json:"year"`
  Price         float64  `json:"price"`
  Currency      string   `json:"currency"`
  Size          Size     `json:"size" binding:"required"`
  Tags          []string `json:"tags"`
  Story         string   `json:"story"`
  ImageURL      string   `json:"imageUrl"`
  AudioStoryURL string   `json:"audioStoryUrl"`
}

// Area returns width x height in the artwork's own unit.
func (a Artwork) Area() float64 {
  return a.Size.Width * a.Size.Height
}
