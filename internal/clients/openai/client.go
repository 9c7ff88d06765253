package openai

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "math/rand"
  "net"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/myartworld/ai-service/internal/logger"
)

// Client is the OpenAI-compatible generative API surface the service depends
// on. The default endpoint is Featherless; anything speaking the same wire
// protocol works.
type Client interface {
  // GenerateJSON sends a system+user prompt and returns the model's output
  // parsed as a JSON object.
  GenerateJSON(ctx context.Context, system string, user string) (map[string]any, error)
  // Synthesize turns text into audio bytes via the speech endpoint.
  Synthesize(ctx context.Context, text, voice string, speed float64) ([]byte, error)
}

type client struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  ttsModel   string
  httpClient *http.Client

  maxRetries int
}

func NewClient(log *logger.Logger) (Client, error) {
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    // the hosted deployment runs against Featherless
    apiKey = os.Getenv("FEATHERLESS_API_KEY")
  }
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENAI_API_KEY")
  }

  baseURL := os.Getenv("OPENAI_BASE_URL")
  if baseURL == "" {
    baseURL = "https://api.featherless.ai"
  }

  model := os.Getenv("OPENAI_MODEL")
  if model == "" {
    model = "Qwen/Qwen3-0.6B"
  }

  ttsModel := os.Getenv("OPENAI_TTS_MODEL")
  if ttsModel == "" {
    ttsModel = "tts-1"
  }

  timeoutSec := 60
  if v := os.Getenv("OPENAI_TIMEOUT_SECONDS"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      timeoutSec = parsed
    }
  }

  maxRetries := 2
  if v := os.Getenv("OPENAI_MAX_RETRIES"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
      maxRetries = parsed
    }
  }

  return &client{
    log:        log.With("client", "OpenAIClient"),
    baseURL:    strings.TrimRight(baseURL, "/"),
    apiKey:     apiKey,
    model:      model,
    ttsModel:   ttsModel,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
    maxRetries: maxRetries,
  }, nil
}

// HTTPError is a non-2xx response from the API.
type HTTPError struct {
  StatusCode int
  Body       string
}

func (e *HTTPError) Error() string {
  return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

// ParseError means the model answered but its output was not usable JSON.
// Callers use this to tell a broken response from an unreachable service.
type ParseError struct {
  Raw string
  Err error
}

func (e *ParseError) Error() string {
  return fmt.Sprintf("openai parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func isRetryableHTTP(code int) bool {
  if code == 408 || code == 429 {
    return true
  }
  return code >= 500 && code <= 599
}

func isRetryableErr(err error) bool {
  if err == nil {
    return false
  }
  if errors.Is(err, context.DeadlineExceeded) {
    return true
  }
  var netErr net.Error
  if errors.As(err, &netErr) && netErr.Timeout() {
    return true
  }
  var httpErr *HTTPError
  if errors.As(err, &httpErr) {
    return isRetryableHTTP(httpErr.StatusCode)
  }
  return false
}

func jitterSleep(base time.Duration) time.Duration {
  // +/- 20%
  if base <= 0 {
    return 0
  }
  delta := base.Seconds() * 0.2
  low := base.Seconds() - delta
  if low < 0 {
    low = 0
  }
  high := base.Seconds() + delta
  v := low + rand.Float64()*(high-low)
  return time.Duration(v * float64(time.Second))
}

func (c *client) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return nil, nil, err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
  if err != nil {
    return nil, nil, err
  }
  req.Header.Set("Authorization", "Bearer "+c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, nil, err
  }

  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return resp, nil, readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return resp, raw, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  return resp, raw, nil
}

func (c *client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
  backoff := 1 * time.Second

  for attempt := 0; attempt <= c.maxRetries; attempt++ {
    if ctx.Err() != nil {
      return nil, ctx.Err()
    }

    resp, raw, err := c.doOnce(ctx, method, path, body)
    if err == nil {
      return raw, nil
    }
    if !isRetryableErr(err) || attempt == c.maxRetries {
      return nil, err
    }

    // Respect Retry-After when present
    sleepFor := backoff
    if resp != nil {
      if ra := strings.TrimSpace(resp.Header.Get("Retry-After")); ra != "" {
        if secs, parseErr := strconv.Atoi(ra); parseErr == nil && secs > 0 {
          sleepFor = time.Duration(secs) * time.Second
        }
      }
    }
    if sleepFor > 10*time.Second {
      sleepFor = 10 * time.Second
    }
    sleepFor = jitterSleep(sleepFor)

    c.log.Warn("Request retrying",
      "path", path,
      "attempt", attempt+1,
      "max_retries", c.maxRetries,
      "sleep", sleepFor.String(),
      "error", err.Error(),
    )

    time.Sleep(sleepFor)
    backoff *= 2
  }

  return nil, fmt.Errorf("unreachable retry loop")
}

// ---- Chat completions ----

type chatRequest struct {
  Model       string        `json:"model"`
  Messages    []chatMessage `json:"messages"`
  Temperature float64       `json:"temperature"`
}

type chatMessage struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

type chatResponse struct {
  Choices []struct {
    Message struct {
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

func (c *client) GenerateJSON(ctx context.Context, system string, user string) (map[string]any, error) {
  req := chatRequest{
    Model: c.model,
    Messages: []chatMessage{
      {Role: "system", Content: system},
      {Role: "user", Content: user},
    },
    Temperature: 0.4,
  }

  raw, err := c.do(ctx, "POST", "/v1/chat/completions", req)
  if err != nil {
    return nil, err
  }

  var resp chatResponse
  if err := json.Unmarshal(raw, &resp); err != nil {
    return nil, &ParseError{Raw: string(raw), Err: err}
  }
  if len(resp.Choices) == 0 {
    return nil, &ParseError{Raw: string(raw), Err: errors.New("no choices in response")}
  }

  obj, err := ExtractJSON(resp.Choices[0].Message.Content)
  if err != nil {
    return nil, &ParseError{Raw: resp.Choices[0].Message.Content, Err: err}
  }
  return obj, nil
}

// ---- Speech synthesis ----

type speechRequest struct {
  Model string  `json:"model"`
  Input string  `json:"input"`
  Voice string  `json:"voice"`
  Speed float64 `json:"speed,omitempty"`
}

func (c *client) Synthesize(ctx context.Context, text, voice string, speed float64) ([]byte, error) {
  req := speechRequest{
    Model: c.ttsModel,
    Input: text,
    Voice: voice,
    Speed: speed,
  }
  raw, err := c.do(ctx, "POST", "/v1/audio/speech", req)
  if err != nil {
    return nil, err
  }
  if len(raw) == 0 {
    return nil, errors.New("empty audio response")
  }
  return raw, nil
}
