package static

import (
	"embed"
	"net/http"
)

// FS exposes the site stylesheets. Paths keep their css/ prefix so the
// file server can be mounted at /css/ without stripping.
//
//go:embed css
var FS embed.FS

// Handler serves the embedded assets.
func Handler() http.Handler {
	return http.FileServerFS(FS)
}
