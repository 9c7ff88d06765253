package handlers

import (
  "net/http"
  "path/filepath"
  "strings"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/myartworld/ai-service/internal/logger"
)

type UploadHandler struct {
  log       *logger.Logger
  uploadDir string
  baseURL   string
}

func NewUploadHandler(log *logger.Logger, uploadDir, baseURL string) *UploadHandler {
  return &UploadHandler{
    log:       log.With("handler", "UploadHandler"),
    uploadDir: uploadDir,
    baseURL:   strings.TrimRight(baseURL, "/"),
  }
}

// POST /upload
// Stores the image under a random name so uploads never collide.
func (h *UploadHandler) UploadImage(c *gin.Context) {
  file, err := c.FormFile("file")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "missing_file", err)
    return
  }

  ext := strings.ToLower(filepath.Ext(file.Filename))
  name := uuid.New().String() + ext
  dst := filepath.Join(h.uploadDir, name)

  if err := c.SaveUploadedFile(file, dst); err != nil {
    h.log.Error("Upload failed", "filename", file.Filename, "error", err)
    RespondError(c, http.StatusInternalServerError, "upload_failed", err)
    return
  }

  RespondOK(c, gin.H{"url": h.baseURL + "/static/uploads/" + name})
}
