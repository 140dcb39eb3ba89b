// Package web serves the single-page chat UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler serves index.html at / and the page assets next to it.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static/ is embedded at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
