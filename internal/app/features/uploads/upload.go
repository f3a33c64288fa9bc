// internal/app/features/uploads/upload.go
package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/storage"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var documentExts = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".csv":  "text/csv",
	".txt":  "text/plain",
}

// HandleImage handles POST /api/v1/uploads/image. The content type is
// sniffed from the bytes, not trusted from the client.
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	data, _, ok := h.readFile(w, r, h.MaxImageBytes)
	if !ok {
		return
	}

	contentType := http.DetectContentType(data)
	ext, allowed := imageTypes[contentType]
	if !allowed {
		httpjson.BadRequest(w, "file must be a JPEG, PNG, GIF or WebP image")
		return
	}

	h.store(w, r, fmt.Sprintf("uploads/images/%s%s", uuid.NewString(), ext), data, contentType)
}

// HandleDocument handles POST /api/v1/uploads/document. Office formats
// are zip containers that sniffing cannot tell apart, so documents are
// gated on a filename-extension whitelist instead.
func (h *Handler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := h.readFile(w, r, h.MaxDocumentBytes)
	if !ok {
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, allowed := documentExts[ext]
	if !allowed {
		httpjson.BadRequest(w, "file must be a PDF, Office document, CSV or plain text")
		return
	}
	if ext == ".pdf" && !bytes.HasPrefix(data, []byte("%PDF")) {
		httpjson.BadRequest(w, "file does not look like a valid PDF")
		return
	}

	h.store(w, r, fmt.Sprintf("uploads/documents/%s%s", uuid.NewString(), ext), data, contentType)
}

// readFile pulls the multipart "file" part, enforcing the size cap
// before anything is stored.
func (h *Handler) readFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (data []byte, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+4096) // multipart framing overhead

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpjson.BadRequest(w, fmt.Sprintf("file exceeds the %d byte limit", maxBytes))
			return nil, "", false
		}
		httpjson.BadRequest(w, "multipart form must carry a 'file' part")
		return nil, "", false
	}
	defer file.Close()

	if header.Size > maxBytes {
		httpjson.BadRequest(w, fmt.Sprintf("file exceeds the %d byte limit", maxBytes))
		return nil, "", false
	}

	data, err = io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		h.Log.Error("read upload failed", zap.Error(err))
		httpjson.ServerError(w)
		return nil, "", false
	}
	if int64(len(data)) > maxBytes {
		httpjson.BadRequest(w, fmt.Sprintf("file exceeds the %d byte limit", maxBytes))
		return nil, "", false
	}
	if len(data) == 0 {
		httpjson.BadRequest(w, "file is empty")
		return nil, "", false
	}
	return data, header.Filename, true
}

func (h *Handler) store(w http.ResponseWriter, r *http.Request, path string, data []byte, contentType string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Files.Put(ctx, path, bytes.NewReader(data), &storage.PutOptions{ContentType: contentType}); err != nil {
		h.Log.Error("store upload failed", zap.String("path", path), zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Created(w, "File uploaded.", map[string]any{
		"url":          h.Files.URL(path),
		"path":         path,
		"content_type": contentType,
		"size":         len(data),
	})
}
