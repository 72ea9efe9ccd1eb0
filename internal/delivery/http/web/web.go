// Package web embeds the single-page front end served under /static/.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// Handler serves the embedded files. Mount it with http.StripPrefix("/static/", ...).
func Handler() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
