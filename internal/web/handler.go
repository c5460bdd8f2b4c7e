// Package web serves the site pages behind the operating-hours gate.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dantdj/business-hours/internal/schedule"
	"github.com/dantdj/business-hours/internal/web/static"
	"github.com/dantdj/business-hours/internal/web/templates"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// ClosedPath renders the closed notice and is never gated.
const ClosedPath = "/closed"

type handler struct {
	clock schedule.Clock
	pages *templates.Set
}

// NewHandler builds the site router. A nil clock reads the host clock.
func NewHandler(clock schedule.Clock, logger zerolog.Logger) (http.Handler, error) {
	if clock == nil {
		clock = schedule.SystemClock
	}
	pages, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	h := &handler{clock: clock, pages: pages}

	gated := http.NewServeMux()
	gated.Handle("GET /{$}", h.page(templates.Home, "Home"))
	gated.Handle("GET /services", h.page(templates.Services, "Our Services"))
	gated.Handle("GET /contact", h.page(templates.Contact, "Contact Us"))

	mux := http.NewServeMux()
	mux.Handle("GET /css/", static.Handler())
	mux.Handle(ClosedPath, requireGet(h.closed()))
	mux.Handle("/", h.gate(gated))

	return chain(mux,
		hlog.NewHandler(logger),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		accessLog(),
		recoverPanic(),
	), nil
}

// gate lets requests through during operating hours and answers everything
// else with the closed notice in place.
func (h *handler) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := h.clock()
		if schedule.IsOpen(now) {
			next.ServeHTTP(w, r)
			return
		}
		hlog.FromRequest(r).Debug().
			Str("path", r.URL.Path).
			Str("weekday", now.Weekday().String()).
			Int("hour", now.Hour()).
			Msg("outside operating hours, serving closed notice")
		h.renderClosed(w, r, now)
	})
}

func (h *handler) page(name, title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, name, templates.Page{Title: title, CurrentPage: name})
	})
}

func (h *handler) closed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.renderClosed(w, r, h.clock())
	})
}

func (h *handler) renderClosed(w http.ResponseWriter, r *http.Request, now time.Time) {
	notice := schedule.NoticeAt(now)
	h.render(w, r, templates.Closed, templates.ClosedPage{
		Page: templates.Page{Title: "Closed"},
		Day:  notice.Day,
		Time: notice.Time,
	})
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	component, err := h.pages.Component(name, data)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("page", name).Msg("failed to find page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writePage(w, r, component)
}
