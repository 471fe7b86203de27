// Package assets embeds the site's stylesheet, scripts and images.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// FS returns the embedded files rooted at static/.
func FS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static/ is embedded at build time, so this cannot fail.
		panic(err)
	}
	return sub
}

// Handler serves the embedded files. With cache set, responses may be cached
// by browsers for an hour; otherwise they are revalidated on every load.
func Handler(cache bool) http.Handler {
	fileServer := http.FileServer(http.FS(FS()))
	cacheControl := "no-cache"
	if cache {
		cacheControl = "public, max-age=3600"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		fileServer.ServeHTTP(w, r)
	})
}
