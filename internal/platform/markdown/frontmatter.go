// Package markdown handles the journal's note format: YAML frontmatter over
// a markdown body, plus the generated listing block inside index.md.
package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// SplitFrontmatter separates a note into its YAML header and markdown body.
// A note without a header comes back whole, with empty metadata.
func SplitFrontmatter(note string) (map[string]any, string, error) {
	if !strings.HasPrefix(note, fence) {
		return map[string]any{}, note, nil
	}
	rest := note[len(fence):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, "", fmt.Errorf("frontmatter never closes")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return nil, "", fmt.Errorf("decode frontmatter: %w", err)
	}
	return meta, rest[end+len("\n---\n"):], nil
}

// RenderFrontmatter prepends meta to body as a fenced YAML header.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	var sb strings.Builder
	sb.WriteString(fence)
	sb.Write(header)
	sb.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(body)
	return sb.String(), nil
}
