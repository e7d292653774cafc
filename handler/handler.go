package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"bio-page/auth"
	"bio-page/config"
	"bio-page/store"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// BioHandler serves the public bio page and the admin editor.
type BioHandler struct {
	store    *store.Store
	sessions *auth.SessionManager
	config   config.Config
}

// NewBioHandler creates a new bio page handler.
func NewBioHandler(st *store.Store, sessions *auth.SessionManager, cfg config.Config) *BioHandler {
	return &BioHandler{
		store:    st,
		sessions: sessions,
		config:   cfg,
	}
}

// render executes a page template into a buffer first so a template error
// never produces a half-written response.
func (h *BioHandler) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Failed to render template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	buf.WriteTo(w)
}
