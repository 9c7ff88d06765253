package openai

import (
  "encoding/json"
  "errors"
  "regexp"
  "strings"

  "github.com/kaptinlin/jsonrepair"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON pulls a JSON object out of model output. Models wrap answers in
// prose or markdown fences more often than not, so the order is: direct parse,
// fenced block, first-{..last-} slice, then a jsonrepair pass as a last resort.
func ExtractJSON(text string) (map[string]any, error) {
  text = strings.TrimSpace(text)
  if text == "" {
    return nil, errors.New("empty model output")
  }

  if obj, err := parseObject(text); err == nil {
    return obj, nil
  }

  if m := fenceRe.FindStringSubmatch(text); m != nil {
    if obj, err := parseObject(m[1]); err == nil {
      return obj, nil
    }
  }

  start := strings.Index(text, "{")
  end := strings.LastIndex(text, "}")
  if start != -1 && end > start {
    sliced := text[start : end+1]
    if obj, err := parseObject(sliced); err == nil {
      return obj, nil
    }
    if repaired, err := jsonrepair.JSONRepair(sliced); err == nil {
      if obj, err := parseObject(repaired); err == nil {
        return obj, nil
      }
    }
  }

  return nil, errors.New("model did not return valid JSON")
}

func parseObject(text string) (map[string]any, error) {
  var obj map[string]any
  if err := json.Unmarshal([]byte(text), &obj); err != nil {
    return nil, err
  }
  return obj, nil
}
