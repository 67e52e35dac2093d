package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`(?s)<(script|style)[^>]*>.*?</(script|style)>|<[^>]+>`)
	junkRunRe    = regexp.MustCompile(`[#$]{2,}`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// ExtractText reads a file and returns plain text. Plain formats are
// read verbatim, HTML has its tags stripped, and unsupported types
// yield a bracketed placeholder so the model still sees the filename.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt", ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file %s: %w", path, err)
		}
		return string(data), nil

	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file %s: %w", path, err)
		}
		return stripHTML(string(data)), nil

	default:
		return fmt.Sprintf("[Unsupported file type: %s]", filepath.Base(path)), nil
	}
}

// stripHTML removes tags and collapses the leftover whitespace.
func stripHTML(html string) string {
	text := htmlTagRe.ReplaceAllString(html, " ")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Sanitize strips runs of markdown heading and currency markers that
// models sometimes emit into ad copy.
func Sanitize(s string) string {
	return strings.TrimSpace(junkRunRe.ReplaceAllString(s, ""))
}
