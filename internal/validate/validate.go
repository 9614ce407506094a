package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
)

// Username enforces a simple length window; the charset is unrestricted.
func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || len(s) > 20 {
		return "", false
	}
	return s, true
}

// Password requires 8-20 chars mixing upper, lower, digit and symbol.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 20 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}

// ID parses a positive integer resource identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Status normalizes to upper case before matching the enum.
func Status(s string) (domain.ProductStatus, bool) {
	up := domain.ProductStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch up {
	case domain.StatusAvailable, domain.StatusInTransit, domain.StatusDelivered:
		return up, true
	}
	return "", false
}

// Name validates a required display field (product name/description).
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 200 {
		return "", false
	}
	return s, true
}

// Search trims and clamps a free-text search term. The clamp cuts on a
// rune boundary so a multi-byte character is never split.
func Search(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		cut := 50
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s, true
}
