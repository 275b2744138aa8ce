// Package markdown holds the small pure helpers the document layer derives
// its view fields from: the title taken from the first level-one heading and
// the truncated preview used in list payloads.
package markdown

import (
	"strings"
)

// DeriveTitle scans content line by line and returns the text of the first
// level-one heading, i.e. the first line whose trimmed form starts with "# ".
// A bare "#" and deeper headings ("## ", "### ", ...) never match. Returns
// nil when no heading exists.
func DeriveTitle(content string) *string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			title := strings.TrimSpace(trimmed[2:])
			return &title
		}
	}
	return nil
}
