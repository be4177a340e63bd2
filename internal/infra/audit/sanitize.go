package audit

import (
	"regexp"
	"unicode/utf8"
)

const (
	maskValue        = "***"
	truncationMarker = "...[TRUNCADO]"
)

// The two patterns cover the shapes details arrive in: JSON-ish
// `"key": "value"` pairs, where the value may contain spaces, and bare
// `key=value` pairs. The key and separator survive so log consumers can
// still see which field was redacted.
var (
	quotedSensitivePattern = regexp.MustCompile(`(?i)((?:password|contrasena|token|secret)[a-z0-9_]*"?\s*[:=]\s*")([^"]*)(")`)
	bareSensitivePattern   = regexp.MustCompile(`(?i)((?:password|contrasena|token|secret)[a-z0-9_]*\s*[:=]\s*)([^,}\s"&]+)`)
)

// Sanitize redacts secret-bearing values and truncates the result to the
// configured bound, appending a truncation marker when anything was cut.
func (r *recorder) Sanitize(data string) string {
	sanitized := quotedSensitivePattern.ReplaceAllString(data, "${1}"+maskValue+"${3}")
	sanitized = bareSensitivePattern.ReplaceAllString(sanitized, "${1}"+maskValue)

	if len(sanitized) > r.maxDetailLength {
		// Spanish detail strings carry multi-byte runes; never cut one in half.
		cut := r.maxDetailLength
		for cut > 0 && !utf8.RuneStart(sanitized[cut]) {
			cut--
		}
		sanitized = sanitized[:cut] + truncationMarker
	}

	return sanitized
}
