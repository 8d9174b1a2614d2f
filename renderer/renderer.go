// Package renderer turns the registry into text for the terminal: the classic
// fixed-width inventory lines of the interactive menu, and a markdown report.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/marina"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// RenderInventory renders the inventory of the boats as a markdown document.
func RenderInventory(boats []marina.Boat, currency string) string {
	partials := map[string]string{
		"inventory_title": "inventory_title.md",
		"inventory_table": "inventory_table.md",
		"inventory_empty": "inventory_empty.md",
	}
	return renderTemplate("inventory", "inventory.md", partials, NewInventory(boats, currency))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
