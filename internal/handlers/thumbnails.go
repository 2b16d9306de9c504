package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vidseo/backend/internal/logging"
	"github.com/vidseo/backend/internal/thumbnails"
)

const generateScope = "thumbnails.generate"

// ThumbnailHandler renders previews locally and generates backgrounds with an
// image model. Storage, when set, receives rendered previews instead of the
// response body; a positive Timeout bounds the base image download.
type ThumbnailHandler struct {
	Renderer  PreviewRenderer
	Generator ThumbnailGenerator
	Storage   thumbnails.AssetStorage
	Limiter   RateLimiter
	Timeout   time.Duration
}

type previewRequest struct {
	Concept      thumbnails.Concept `json:"concept"`
	BaseImageURL string             `json:"baseImageUrl"`
}

type previewResponse struct {
	Location string `json:"location"`
}

type generateRequest struct {
	Concept  thumbnails.Concept `json:"concept"`
	Title    string             `json:"title"`
	Platform string             `json:"platform"`
}

type generateResponse struct {
	URL string `json:"url"`
}

// Preview handles POST /api/v1/thumbnails/preview.
func (h ThumbnailHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Renderer == nil {
		logger.Error("preview renderer unavailable")
		respondError(ctx, w, http.StatusInternalServerError, "thumbnail rendering unavailable")
		return
	}

	var req previewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid preview payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	renderCtx := ctx
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	img := h.Renderer.Preview(renderCtx, req.Concept, strings.TrimSpace(req.BaseImageURL))

	if h.Storage != nil {
		location, err := thumbnails.Publish(ctx, h.Storage, img)
		if err != nil {
			logger.Error("publish preview failed", "error", err)
			respondError(ctx, w, http.StatusBadGateway, "failed to store thumbnail")
			return
		}
		respondJSON(ctx, w, http.StatusCreated, previewResponse{Location: location})
		return
	}

	var buf bytes.Buffer
	if err := thumbnails.EncodePNG(&buf, img); err != nil {
		logger.Error("encode preview failed", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to encode thumbnail")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("write preview body", "error", err)
	}
}

// Generate handles POST /api/v1/thumbnails/generate.
func (h ThumbnailHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if !allowRequest(h.Limiter, r, generateScope) {
		logger.Warn("thumbnail generation rate limited", "client", clientIP(r))
		respondError(ctx, w, http.StatusTooManyRequests, "too many generation requests, try again later")
		return
	}

	if h.Generator == nil {
		logger.Error("thumbnail generator unavailable")
		respondError(ctx, w, http.StatusInternalServerError, "thumbnail generation unavailable")
		return
	}

	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid generate payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Concept.Concept) == "" {
		respondError(ctx, w, http.StatusBadRequest, "title and concept are required")
		return
	}

	url, err := h.Generator.Generate(ctx, req.Concept, req.Title, req.Platform)
	if err != nil {
		logger.Error("thumbnail generation failed", "platform", req.Platform, "error", err)
		respondError(ctx, w, http.StatusBadGateway, "thumbnail generation failed")
		return
	}

	respondJSON(ctx, w, http.StatusOK, generateResponse{URL: url})
}
