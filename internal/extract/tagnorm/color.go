package tagnorm

import (
	"regexp"
	"strings"
)

var (
	hex6Re = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	hex3Re = regexp.MustCompile(`^[0-9A-Fa-f]{3}$`)
)

// NormalizeColor canonicalizes a color value: hex values are lowercased
// and prefixed with "#", 3-digit hex is expanded to 6 digits. CSS color
// names pass through unchanged. The function is idempotent.
func NormalizeColor(v string) string {
	v = strings.TrimSpace(v)
	s := strings.TrimPrefix(v, "#")
	switch {
	case hex6Re.MatchString(s):
		return "#" + strings.ToLower(s)
	case hex3Re.MatchString(s):
		s = strings.ToLower(s)
		return "#" + string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return v
}
