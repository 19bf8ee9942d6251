package normalize

import "strings"

// Slugify derives a URL-safe slug: lowercase, runs of non-alphanumeric
// characters collapsed to a single hyphen, leading and trailing hyphens
// stripped. Idempotent.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}
