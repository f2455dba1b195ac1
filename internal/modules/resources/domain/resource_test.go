package domain_test

import (
	"testing"

	"pathora/internal/modules/resources/domain"
)

var catalog = []domain.Resource{
	{ID: 1, Title: "Go Concurrency Patterns", Kind: domain.KindArticle},
	{ID: 2, Title: "SQL Deep Dive", Description: "joins and indexes", Kind: domain.KindVideo},
	{ID: 3, Title: "Systems Handbook", URL: "https://cdn.example/systems.PDF", Kind: domain.KindPDF},
}

func TestFilterByKindAndQuery(t *testing.T) {
	t.Parallel()
	if got := domain.Filter(catalog, domain.KindVideo, ""); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("kind filter failed: %v", got)
	}
	if got := domain.Filter(catalog, "", "JOINS"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("query should match descriptions case-insensitively: %v", got)
	}
	if got := domain.Filter(catalog, "", ""); len(got) != 3 {
		t.Fatalf("empty filter should keep everything: %v", got)
	}
	if got := domain.Filter(catalog, domain.KindArticle, "sql"); got != nil {
		t.Fatalf("kind and query must both apply: %v", got)
	}
}

func TestIsPDF(t *testing.T) {
	t.Parallel()
	if !catalog[2].IsPDF() {
		t.Fatalf("pdf kind must report pdf")
	}
	r := domain.Resource{URL: "https://x.example/paper.pdf", Kind: domain.KindArticle}
	if !r.IsPDF() {
		t.Fatalf("pdf extension must report pdf regardless of kind")
	}
	if (domain.Resource{URL: "https://x.example/post", Kind: domain.KindArticle}).IsPDF() {
		t.Fatalf("plain article must not report pdf")
	}
}
