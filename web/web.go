// Package web serves the browser page that lists, adds, toggles and removes items.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static/*.html static/*.js static/*.css
var assetsFS embed.FS

// Register mounts the page at / and its assets under /static/.
func Register(r chi.Router) {
	static, err := fs.Sub(assetsFS, "static")
	if err != nil {
		panic(err)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, static, "index.html")
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
}
