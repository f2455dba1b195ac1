package markdown

import "strings"

// ReplaceManagedBlock swaps the marker-delimited region of body for the
// generated listing, appending a fresh block when the markers are missing.
// Text outside the markers is never touched, so the rest of the file stays
// hand-editable.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	block := startMarker + "\n" + generated + "\n" + endMarker

	start := strings.Index(body, startMarker)
	if end := strings.Index(body, endMarker); start >= 0 && end > start {
		return body[:start] + block + body[end+len(endMarker):]
	}

	if strings.TrimSpace(body) == "" {
		return block + "\n"
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return body + "\n" + block + "\n"
}
