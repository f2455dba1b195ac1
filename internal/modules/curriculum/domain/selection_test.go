package domain_test

import (
	"errors"
	"testing"

	"pathora/internal/modules/curriculum/domain"
	apperrors "pathora/internal/platform/errors"
)

var selectionPaths = []domain.Path{{ID: 1}, {ID: 2}, {ID: 3}}

func TestSelectPathPrecedence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		sel  domain.Selection
		want int
	}{
		{"no hints picks newest", domain.Selection{}, 3},
		{"stored selection wins over newest", domain.Selection{StoredID: 1}, 1},
		{"request wins over stored", domain.Selection{RequestedID: 2, StoredID: 1}, 2},
		{"force latest wins over everything", domain.Selection{RequestedID: 2, StoredID: 1, ForceLatest: true}, 3},
		{"unknown request falls back to stored", domain.Selection{RequestedID: 99, StoredID: 2}, 2},
		{"unknown request and stored fall back to newest", domain.Selection{RequestedID: 99, StoredID: 98}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.SelectPath(selectionPaths, tc.sel)
			if err != nil {
				t.Fatalf("select: %v", err)
			}
			if got.ID != tc.want {
				t.Fatalf("selected path %d, want %d", got.ID, tc.want)
			}
		})
	}
}

func TestSelectPathWithoutPaths(t *testing.T) {
	t.Parallel()
	_, err := domain.SelectPath(nil, domain.Selection{})
	if !errors.Is(err, apperrors.ErrNoLearningPaths) {
		t.Fatalf("expected ErrNoLearningPaths, got %v", err)
	}
}
