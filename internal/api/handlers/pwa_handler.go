package handlers

import (
	"context"
	"embed"
	"net/http"

	"github.com/Abubakar-88/jugjiggasha/internal/offline"
)

//go:embed assets
var embFS embed.FS

// PWAHandler serves the installable-app shell: the manifest, the service
// worker script and the offline fallback document. Assets go through the
// cache engine cache-first.
type PWAHandler struct {
	engine *offline.Engine
}

// NewPWAHandler creates a new PWAHandler.
func NewPWAHandler(engine *offline.Engine) *PWAHandler {
	return &PWAHandler{engine: engine}
}

// Manifest serves the web app manifest.
func (h *PWAHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	h.serveAsset(w, r, "/manifest.json", "assets/manifest.json", "application/manifest+json", false)
}

// ServiceWorker serves the worker script. It must never be cached by the
// browser so updates roll out on the next visit.
func (h *PWAHandler) ServiceWorker(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", "/")
	h.serveAsset(w, r, "/sw.js", "assets/sw.js", "application/javascript", false)
}

// Offline serves the offline fallback document.
func (h *PWAHandler) Offline(w http.ResponseWriter, r *http.Request) {
	h.serveAsset(w, r, offline.OfflineFallbackKey, "assets/offline.html", "text/html; charset=utf-8", true)
}

func (h *PWAHandler) serveAsset(w http.ResponseWriter, r *http.Request, key, file, contentType string, navigation bool) {
	result := h.engine.FetchAsset(r.Context(), key, navigation, func(ctx context.Context) (offline.Entry, error) {
		body, err := embFS.ReadFile(file)
		if err != nil {
			return offline.Entry{}, err
		}
		return offline.Entry{Status: http.StatusOK, ContentType: contentType, Body: body}, nil
	})

	w.Header().Set("Content-Type", result.Entry.ContentType)
	w.WriteHeader(result.Entry.Status)
	w.Write(result.Entry.Body)
}

// OfflineDocument exposes the embedded fallback document, precached into
// the engine at startup.
func OfflineDocument() (offline.Entry, error) {
	body, err := embFS.ReadFile("assets/offline.html")
	if err != nil {
		return offline.Entry{}, err
	}
	return offline.Entry{
		Status:      http.StatusOK,
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}
