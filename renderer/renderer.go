// Package renderer renders the zenith views to markdown.
//
// Every view is a pure function of the session data, plus its local state, and of the
// display language.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/zenith/i18n"
	"golang.org/x/text/language"
)

//go:embed templates/*.md
var templates embed.FS

// partials shared by every view.
var partials = map[string]string{
	"header": "templates/header.md",
}

// renderTemplate renders templates/<name>.md with data, labels are translated to lang.
func renderTemplate(name string, lang language.Tag, data any) string {
	mainFile := "templates/" + name + ".md"
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(name).Funcs(funcs(lang)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for partial, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(partial).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, partial, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

func funcs(lang language.Tag) template.FuncMap {
	return template.FuncMap{
		// t translates a message key.
		"t": func(key string, args ...any) string { return i18n.Text(lang, key, args...) },
		// cell escapes a value for a table cell.
		"cell": func(s string) string {
			s = strings.ReplaceAll(s, "|", `\|`)
			return strings.ReplaceAll(s, "\n", " ")
		},
	}
}

// page is the title block of a view.
type page struct {
	Title    string
	Subtitle string
}
