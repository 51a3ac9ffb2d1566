package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/teozhengyang/programming-helper/internal/catalog"
	"github.com/teozhengyang/programming-helper/internal/pages"
	"github.com/teozhengyang/programming-helper/internal/platform/httpx"
	"github.com/teozhengyang/programming-helper/internal/platform/observability"
)

const pageCacheControl = "public, max-age=0, must-revalidate"

type handlers struct {
	site    *pages.Site
	cache   *pageCache
	metrics *metrics
}

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "/", "text/html; charset=utf-8", func(context.Context) ([]byte, error) {
		return h.site.RenderBytes(h.site.Home())
	})
}

func (h *handlers) topic(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "section")
	topicID := chi.URLParam(r, "topic")
	h.servePage(w, r, "/"+sectionID+"/"+topicID, "text/html; charset=utf-8", func(ctx context.Context) ([]byte, error) {
		data, err := h.site.Topic(ctx, sectionID, topicID)
		if err != nil {
			return nil, err
		}
		return h.site.RenderBytes(data)
	})
}

func (h *handlers) section(w http.ResponseWriter, r *http.Request) {
	target, err := h.site.RedirectTarget(chi.URLParam(r, "section"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *handlers) sitemap(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "sitemap.xml", "application/xml; charset=utf-8", func(context.Context) ([]byte, error) {
		return h.site.Sitemap()
	})
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	if httpx.PrefersJSON(r) {
		httpx.WriteError(r.Context(), w, httpx.NewError("not_found", "resource not found", http.StatusNotFound))
		return
	}
	body, err := h.site.RenderBytes(h.site.NotFound(r.URL.Path))
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(body)
}

func (h *handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("render failed", zap.Error(err), zap.String("path", r.URL.Path))
	if httpx.PrefersJSON(r) {
		httpx.WriteError(r.Context(), w, httpx.NewError("internal_server_error", "internal server error", http.StatusInternalServerError))
		return
	}
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}

// servePage answers from the page cache, building on a miss. The ETag is derived from the body so
// clients can revalidate with If-None-Match.
func (h *handlers) servePage(w http.ResponseWriter, r *http.Request, key, contentType string, build func(context.Context) ([]byte, error)) {
	ctx := context.WithoutCancel(r.Context())
	page, hit, err := h.cache.get(key, func() ([]byte, error) { return build(ctx) })
	if errors.Is(err, catalog.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if hit {
		h.metrics.cacheHits.WithLabelValues("hit").Inc()
	} else {
		h.metrics.cacheHits.WithLabelValues("miss").Inc()
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", pageCacheControl)
	w.Header().Set("ETag", page.etag)
	if matchesETag(r, page.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.body)
}
