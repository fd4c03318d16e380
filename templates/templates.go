// Package templates embeds the HTML pages rendered by the handlers.
package templates

import (
	"embed"
	"html/template"
	"path"
	"time"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"mediaURL": func(ref string) string {
		return path.Join("/media", ref)
	},
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
}

// Load parses every page. Each page is named after its file.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}
