package httpserver

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/teozhengyang/programming-helper/public"
)

const assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"

// assetsHandler serves the embedded assets with Cache-Control, Vary and ETag handling.
func assetsHandler(assets []public.Asset) http.Handler {
	byPath := make(map[string]public.Asset, len(assets))
	for _, a := range assets {
		byPath["/"+a.Name] = a
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := byPath[strings.TrimPrefix(r.URL.Path, "/assets")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", assetCacheControl)
		w.Header().Set("Content-Type", a.ContentType)
		w.Header().Set("ETag", a.ETag)
		if matchesETag(r, a.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		http.ServeContent(w, r, a.Name, time.Time{}, bytes.NewReader(a.Data))
	})
}

func matchesETag(r *http.Request, etag string) bool {
	if etag == "" || r == nil {
		return false
	}
	raw := r.Header.Get("If-None-Match")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	for _, candidate := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "*" || trimmed == etag {
			return true
		}
	}
	return false
}
