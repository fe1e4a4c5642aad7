package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html templates/partials/*.html
var FS embed.FS

// Templates parses the embedded page and partial templates. Pages are
// addressed by file name, e.g. "teacher_dashboard.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"initial": func(s string) string {
			for _, r := range s {
				return strings.ToUpper(string(r))
			}
			return "?"
		},
	}).ParseFS(FS, "templates/*.html", "templates/partials/*.html")
}
