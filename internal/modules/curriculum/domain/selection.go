package domain

import (
	"errors"

	apperrors "pathora/internal/platform/errors"
)

// ErrNoSelection means an operation needed the active path before any load
// ever resolved one.
var ErrNoSelection = errors.New("no path selected yet")

// Selection describes which path the caller wants active.
type Selection struct {
	// RequestedID is an explicit path id, 0 when absent.
	RequestedID int
	// StoredID is the remembered selection from a previous run, 0 when absent.
	StoredID int
	// ForceLatest skips both and picks the newest path, used right after the
	// assistant generates one.
	ForceLatest bool
}

// SelectPath resolves the active path. Precedence: ForceLatest, then the
// explicit request, then the stored selection, then the newest path. The
// backend returns paths oldest-first, so "newest" is the last element.
// Requested or stored ids that match no path fall through to the next rule.
func SelectPath(paths []Path, sel Selection) (Path, error) {
	if len(paths) == 0 {
		return Path{}, apperrors.ErrNoLearningPaths
	}
	if sel.ForceLatest {
		return paths[len(paths)-1], nil
	}
	if p, ok := findPath(paths, sel.RequestedID); ok {
		return p, nil
	}
	if p, ok := findPath(paths, sel.StoredID); ok {
		return p, nil
	}
	return paths[len(paths)-1], nil
}

func findPath(paths []Path, id int) (Path, bool) {
	if id == 0 {
		return Path{}, false
	}
	for _, p := range paths {
		if p.ID == id {
			return p, true
		}
	}
	return Path{}, false
}
