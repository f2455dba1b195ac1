package adapterout

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	"pathora/internal/modules/resources/domain"
	portout "pathora/internal/modules/resources/port/out"
)

// LocalPDFReader extracts page text from cached PDF resources. Extraction is
// plain text; layout and images are dropped.
type LocalPDFReader struct{}

var _ portout.PDFReader = (*LocalPDFReader)(nil)

func NewLocalPDFReader() *LocalPDFReader {
	return &LocalPDFReader{}
}

// ReadPage returns the requested page and the document's page count. An
// out-of-range page clamps to the nearest valid one rather than erroring, so
// paging past either end just sticks.
func (r *LocalPDFReader) ReadPage(_ context.Context, path string, page int) (domain.Page, int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return domain.Page{Number: 1}, 0, nil
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	p := doc.Page(page)
	if p.V.IsNull() {
		return domain.Page{}, total, fmt.Errorf("pdf page %d is empty", page)
	}
	return domain.Page{Number: page, Text: pageText(p)}, total, nil
}

func pageText(p pdf.Page) string {
	var parts []string
	for _, text := range p.Content().Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		parts = append(parts, text.S)
	}
	return strings.Join(parts, " ")
}
