// Package layouts holds the document-level templates shared by every page.
package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// CalculateTitle appends the site name to non-empty page titles.
func CalculateTitle(title string) string {
	if title != "" && title != "Psalmos" {
		return title + " - Psalmos"
	}
	return "Psalmos"
}

// Base wraps body content in the full HTML document.
func Base(title string, body ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.Meta(g.Name("description"), g.Content("Psalmos: premium classical music licensing for content creators.")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			),
			g.Body(
				g.Class("min-h-screen bg-stone-50 text-stone-900 antialiased"),
				cmp.Group(body),
			),
		),
	)
}
