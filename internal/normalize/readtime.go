package normalize

import "strings"

const wordsPerMinute = 200

// ReadTime estimates reading time in whole minutes from word count. Always
// at least 1, even for empty content.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Excerpt derives a short plain excerpt from markdown content: the first
// non-heading, non-image line, truncated at a word boundary.
func Excerpt(content string, maxLen int) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "![") {
			continue
		}
		if len(line) <= maxLen {
			return line
		}
		cut := strings.LastIndex(line[:maxLen], " ")
		if cut <= 0 {
			cut = maxLen
		}
		return line[:cut] + "…"
	}
	return ""
}
