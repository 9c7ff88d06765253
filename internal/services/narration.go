package services

import (
  "context"
  "crypto/sha256"
  "encoding/hex"
  "fmt"
  "os"
  "path/filepath"
  "strings"
  "time"

  "github.com/myartworld/ai-service/internal/clients/openai"
  "github.com/myartworld/ai-service/internal/logger"
)

// NarrationService turns artwork stories and curator messages into mp3 assets
// under the static dir. Output is content-addressed, so repeated requests for
// the same text/voice/speed reuse the file on disk.
type NarrationService interface {
  SynthesizeStory(ctx context.Context, text, voice string, speed float64) (string, error)
}

type narrationService struct {
  log      *logger.Logger
  ai       openai.Client
  dir      string // e.g. static/tts
  timeout  time.Duration
}

const (
  maxNarrationChars = 1500
  defaultVoice      = "en-US-AriaNeural"
)

func NewNarrationService(log *logger.Logger, ai openai.Client, staticDir string) (NarrationService, error) {
  dir := filepath.Join(staticDir, "tts")
  if err := os.MkdirAll(dir, 0o755); err != nil {
    return nil, fmt.Errorf("create tts dir: %w", err)
  }
  return &narrationService{
    log:     log.With("service", "NarrationService"),
    ai:      ai,
    dir:     dir,
    timeout: 30 * time.Second,
  }, nil
}

// SynthesizeStory returns a path relative to the static root, e.g.
// "tts/<hash>.mp3". Failure is an error; callers decide whether audio is
// optional for their flow.
func (s *narrationService) SynthesizeStory(ctx context.Context, text, voice string, speed float64) (string, error) {
  text = strings.TrimSpace(text)
  if text == "" {
    return "", fmt.Errorf("text is empty")
  }
  if len([]rune(text)) > maxNarrationChars {
    text = truncate(text, maxNarrationChars) + "..."
  }

  // "alloy" is what older clients send; map it to the neural default.
  if voice == "" || voice == "alloy" {
    voice = defaultVoice
  }
  if speed <= 0 {
    speed = 1.0
  }

  key := narrationKey(text, voice, speed)
  filename := key + ".mp3"
  path := filepath.Join(s.dir, filename)

  if st, err := os.Stat(path); err == nil && st.Size() > 0 {
    return "tts/" + filename, nil
  }

  ctx, cancel := context.WithTimeout(ctx, s.timeout)
  defer cancel()

  audio, err := s.ai.Synthesize(ctx, text, voice, speed)
  if err != nil {
    return "", fmt.Errorf("synthesize: %w", err)
  }
  if err := os.WriteFile(path, audio, 0o644); err != nil {
    return "", fmt.Errorf("write audio: %w", err)
  }

  s.log.Debug("Synthesized narration", "voice", voice, "speed", speed, "bytes", len(audio))
  return "tts/" + filename, nil
}

func narrationKey(text, voice string, speed float64) string {
  raw := fmt.Sprintf("tts|%s|%g|%s", voice, speed, text)
  h := sha256.Sum256([]byte(raw))
  return hex.EncodeToString(h[:])
}
