package web

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/hlog"
)

// writePage renders the component fully before writing so a failed render
// never leaves a partial page behind.
func writePage(w http.ResponseWriter, r *http.Request, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
