package cache

import (
  "crypto/sha256"
  "encoding/hex"
  "encoding/json"
  "fmt"
)

// CanonicalJSON serializes v into a stable form: object keys sorted
// lexicographically, no extra whitespace. Same semantic payload always yields
// the same bytes regardless of field insertion order or process hash seed.
func CanonicalJSON(v any) ([]byte, error) {
  raw, err := json.Marshal(v)
  if err != nil {
    return nil, fmt.Errorf("canonical marshal: %w", err)
  }
  // Round-trip through interface{} so every object becomes a map, which
  // encoding/json emits with sorted keys.
  var norm any
  if err := json.Unmarshal(raw, &norm); err != nil {
    return nil, fmt.Errorf("canonical normalize: %w", err)
  }
  out, err := json.Marshal(norm)
  if err != nil {
    return nil, fmt.Errorf("canonical remarshal: %w", err)
  }
  return out, nil
}

// MakeKey hashes (prefix, payload) into a content-addressed cache key of the
// form "{prefix}_{sha256hex}". Pure: identical payloads give identical keys.
func MakeKey(prefix string, payload any) (string, error) {
  canonical, err := CanonicalJSON(payload)
  if err != nil {
    return "", err
  }
  h := sha256.Sum256(append([]byte(prefix+"|"), canonical...))
  return prefix + "_" + hex.EncodeToString(h[:]), nil
}
