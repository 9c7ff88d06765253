package openai

import (
  "testing"

  "github.com/stretchr/testify/require"
)

func TestExtractJSONDirect(t *testing.T) {
  obj, err := ExtractJSON(`{"top_artwork_ids":["a","b"],"curator_welcome":"hi"}`)
  require.NoError(t, err)
  require.Equal(t, "hi", obj["curator_welcome"])
}

func TestExtractJSONMarkdownFence(t *testing.T) {
  obj, err := ExtractJSON("Here you go:\n```json\n{\"verdict\":\"A\"}\n```\nHope that helps!")
  require.NoError(t, err)
  require.Equal(t, "A", obj["verdict"])
}

func TestExtractJSONBareFence(t *testing.T) {
  obj, err := ExtractJSON("```\n{\"verdict\":\"B\"}\n```")
  require.NoError(t, err)
  require.Equal(t, "B", obj["verdict"])
}

func TestExtractJSONSurroundingProse(t *testing.T) {
  obj, err := ExtractJSON(`Sure! The answer is {"style":["abstract"]} as requested.`)
  require.NoError(t, err)
  require.Equal(t, []any{"abstract"}, obj["style"])
}

func TestExtractJSONRepairsTrailingComma(t *testing.T) {
  obj, err := ExtractJSON(`{"style":["abstract","minimal",],}`)
  require.NoError(t, err)
  require.Equal(t, []any{"abstract", "minimal"}, obj["style"])
}

func TestExtractJSONRejectsGarbage(t *testing.T) {
  _, err := ExtractJSON("I could not produce tags for this artwork.")
  require.Error(t, err)
}

func TestExtractJSONRejectsEmpty(t *testing.T) {
  _, err := ExtractJSON("   ")
  require.Error(t, err)
}
