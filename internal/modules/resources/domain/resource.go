// Package domain models the shared resource catalog.
package domain

import "strings"

const (
	KindArticle = "article"
	KindVideo   = "video"
	KindCourse  = "course"
	KindPDF     = "pdf"
)

type Resource struct {
	ID          int
	Title       string
	Description string
	URL         string
	Kind        string
}

// IsPDF reports whether the resource should open in the built-in pager
// rather than the browser.
func (r Resource) IsPDF() bool {
	return r.Kind == KindPDF || strings.HasSuffix(strings.ToLower(r.URL), ".pdf")
}

// Filter keeps resources matching the kind (empty matches all) whose title
// or description contains the query, case-insensitively.
func Filter(resources []Resource, kind, query string) []Resource {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Resource
	for _, r := range resources {
		if kind != "" && r.Kind != kind {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Page is one page of extracted PDF text.
type Page struct {
	Number int
	Text   string
}
