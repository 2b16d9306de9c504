package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vidseo/backend/internal/logging"
	"github.com/vidseo/backend/internal/videos"
)

// MetadataHandler resolves metadata for submitted video URLs.
type MetadataHandler struct {
	Metadata MetadataProvider
	// Timeout bounds a single lookup when positive.
	Timeout time.Duration
}

type metadataRequest struct {
	URL string `json:"url"`
}

// Resolve handles POST /api/v1/videos/metadata.
func (h MetadataHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Metadata == nil {
		logger.Error("metadata provider unavailable")
		respondError(ctx, w, http.StatusInternalServerError, "metadata service unavailable")
		return
	}

	var req metadataRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid metadata payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.URL = strings.TrimSpace(req.URL)

	lookupCtx := ctx
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	md, err := h.Metadata.Lookup(lookupCtx, req.URL)
	switch {
	case errors.Is(err, videos.ErrInvalidInput):
		respondError(ctx, w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error("metadata lookup failed", "url", req.URL, "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to resolve metadata")
		return
	}

	logger.Info("metadata resolved", "platform", md.Platform.String(), "videoId", md.VideoID)
	respondJSON(ctx, w, http.StatusOK, md)
}
