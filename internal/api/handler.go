package api

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wardrobe/m/domain"
	"wardrobe/m/internal/export"
	"wardrobe/m/internal/metrics"
)

//go:embed templates/*
var templateFS embed.FS

// Store is the read model the handlers serve from.
type Store interface {
	Items(ctx context.Context) ([]domain.Item, error)
	Wears(ctx context.Context) ([]domain.Wear, error)
	Ping(ctx context.Context) error
}

// Options tunes the router. The zero value serves the API without metrics
// and allows any origin.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store     Store
	log       *slog.Logger
	metrics   *metrics.Metrics
	origins   []string
	templates *template.Template
}

// New constructs a Handler.
func New(store Store, opts Options) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{
		store:     store,
		log:       log,
		metrics:   opts.Metrics,
		origins:   origins,
		templates: tmpl,
	}, nil
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Get("/", h.index)
	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", h.listItems)
		r.Get("/wears", h.listWears)
		r.Get("/export.xlsx", h.exportWorkbook)
	})

	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", nil); err != nil {
		h.log.Error("render homepage", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.Error("health check", "err", err)
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Items(r.Context())
	if err != nil {
		h.log.Error("list items", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to list items")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) listWears(w http.ResponseWriter, r *http.Request) {
	wears, err := h.store.Wears(r.Context())
	if err != nil {
		h.log.Error("list wears", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to list wears")
		return
	}
	respondJSON(w, http.StatusOK, wears)
}

func (h *Handler) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Items(r.Context())
	if err != nil {
		h.log.Error("export items", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to export items")
		return
	}
	wears, err := h.store.Wears(r.Context())
	if err != nil {
		h.log.Error("export wears", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to export wears")
		return
	}

	f, err := export.Workbook(items, wears)
	if err != nil {
		h.log.Error("build workbook", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to build workbook")
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		h.log.Error("write workbook", "err", err)
		respondError(w, http.StatusInternalServerError, "unable to write workbook")
		return
	}

	name := fmt.Sprintf("wardrobe_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	_, _ = buf.WriteTo(w)
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
