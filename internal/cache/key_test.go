package cache

import (
  "strings"
  "testing"
)

func TestMakeKeyOrderInvariant(t *testing.T) {
  a := map[string]any{"style": []string{"abstract"}, "budget": map[string]any{"min": 1, "max": 2}}
  b := map[string]any{"budget": map[string]any{"max": 2, "min": 1}, "style": []string{"abstract"}}

  ka, err := MakeKey("buyer_session", a)
  if err != nil {
    t.Fatalf("MakeKey: %v", err)
  }
  kb, err := MakeKey("buyer_session", b)
  if err != nil {
    t.Fatalf("MakeKey: %v", err)
  }
  if ka != kb {
    t.Fatalf("key changed under map-order permutation: %s vs %s", ka, kb)
  }
}

func TestMakeKeyStructVsMapEquivalence(t *testing.T) {
  type payload struct {
    Min float64 `json:"min"`
    Max float64 `json:"max"`
  }

  ks, err := MakeKey("p", payload{Min: 1, Max: 2})
  if err != nil {
    t.Fatalf("MakeKey: %v", err)
  }
  km, err := MakeKey("p", map[string]any{"max": 2.0, "min": 1.0})
  if err != nil {
    t.Fatalf("MakeKey: %v", err)
  }
  if ks != km {
    t.Fatalf("struct and equivalent map hash differently: %s vs %s", ks, km)
  }
}

func TestMakeKeyDistinguishesPayloads(t *testing.T) {
  base := map[string]any{"use_ai": true, "ids": []string{"a", "b"}}
  variants := []map[string]any{
    {"use_ai": false, "ids": []string{"a", "b"}},
    {"use_ai": true, "ids": []string{"b", "a"}},
    {"use_ai": true, "ids": []string{"a"}},
  }

  kb, err := MakeKey("s", base)
  if err != nil {
    t.Fatalf("MakeKey: %v", err)
  }
  for _, v := range variants {
    kv, err := MakeKey("s", v)
    if err != nil {
      t.Fatalf("MakeKey: %v", err)
    }
    if kv == kb {
      t.Fatalf("distinct payload %v collided with base", v)
    }
  }
}

func TestMakeKeyFormat(t *testing.T) {
  k, err := MakeKey("buyer_session", map[string]any{"x": 1})
  if err != nil {
    t.Fatalf("MakeKey: %v", err)
  }
  if !strings.HasPrefix(k, "buyer_session_") {
    t.Fatalf("key %q missing prefix", k)
  }
  digest := strings.TrimPrefix(k, "buyer_session_")
  if len(digest) != 64 {
    t.Fatalf("digest length %d, want 64 hex chars", len(digest))
  }
}

func TestMakeKeyPrefixIsPartOfHash(t *testing.T) {
  p := map[string]any{"x": 1}
  k1, _ := MakeKey("a", p)
  k2, _ := MakeKey("b", p)
  if strings.TrimPrefix(k1, "a_") == strings.TrimPrefix(k2, "b_") {
    t.Fatal("digest should depend on the prefix, not just the payload")
  }
}

func TestCanonicalJSONSortsKeysAndStripsWhitespace(t *testing.T) {
  got, err := CanonicalJSON(map[string]any{"b": 1, "a": map[string]any{"z": true, "y": "s"}})
  if err != nil {
    t.Fatalf("CanonicalJSON: %v", err)
  }
  want := `{"a":{"y":"s","z":true},"b":1}`
  if string(got) != want {
    t.Fatalf("canonical form %s, want %s", got, want)
  }
}
