package openai

import (
  "context"
  "encoding/json"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "github.com/myartworld/ai-service/internal/logger"
)

func testClient(url string) *client {
  return &client{
    log:        logger.NewNop(),
    baseURL:    url,
    apiKey:     "test-key",
    model:      "test-model",
    ttsModel:   "test-tts",
    httpClient: &http.Client{Timeout: 5 * time.Second},
    maxRetries: 1,
  }
}

func chatBody(content string) []byte {
  raw, _ := json.Marshal(map[string]any{
    "choices": []map[string]any{
      {"message": map[string]any{"content": content}},
    },
  })
  return raw
}

func TestGenerateJSONHappyPath(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    require.Equal(t, "/v1/chat/completions", r.URL.Path)
    require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
    _, _ = w.Write(chatBody(`{"curator_welcome":"hello"}`))
  }))
  defer srv.Close()

  obj, err := testClient(srv.URL).GenerateJSON(context.Background(), "sys", "user")
  require.NoError(t, err)
  require.Equal(t, "hello", obj["curator_welcome"])
}

func TestGenerateJSONRetriesOn500(t *testing.T) {
  var calls int
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    calls++
    if calls == 1 {
      w.WriteHeader(http.StatusInternalServerError)
      return
    }
    _, _ = w.Write(chatBody(`{"ok":true}`))
  }))
  defer srv.Close()

  obj, err := testClient(srv.URL).GenerateJSON(context.Background(), "sys", "user")
  require.NoError(t, err)
  require.Equal(t, true, obj["ok"])
  require.Equal(t, 2, calls)
}

func TestGenerateJSONDoesNotRetryOn400(t *testing.T) {
  var calls int
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    calls++
    w.WriteHeader(http.StatusBadRequest)
    _, _ = w.Write([]byte(`{"error":"bad request"}`))
  }))
  defer srv.Close()

  _, err := testClient(srv.URL).GenerateJSON(context.Background(), "sys", "user")
  require.Error(t, err)
  require.Equal(t, 1, calls)

  var httpErr *HTTPError
  require.True(t, errors.As(err, &httpErr))
  require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

func TestGenerateJSONParseErrorIsTyped(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write(chatBody("sorry, I can only answer in prose"))
  }))
  defer srv.Close()

  _, err := testClient(srv.URL).GenerateJSON(context.Background(), "sys", "user")
  require.Error(t, err)

  var parseErr *ParseError
  require.True(t, errors.As(err, &parseErr))
}

func TestSynthesizeReturnsAudioBytes(t *testing.T) {
  audio := []byte{0xff, 0xfb, 0x90, 0x00} // mp3 frame header
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    require.Equal(t, "/v1/audio/speech", r.URL.Path)
    var req map[string]any
    require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
    require.Equal(t, "hello world", req["input"])
    _, _ = w.Write(audio)
  }))
  defer srv.Close()

  got, err := testClient(srv.URL).Synthesize(context.Background(), "hello world", "alloy", 1.0)
  require.NoError(t, err)
  require.Equal(t, audio, got)
}

func TestSynthesizeEmptyBodyIsAnError(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusOK)
  }))
  defer srv.Close()

  _, err := testClient(srv.URL).Synthesize(context.Background(), "hi", "alloy", 1.0)
  require.Error(t, err)
}
