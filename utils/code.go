package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewTableCode returns an opaque random token for a table QR. The code is the
// only thing a guest presents, so it must come from a crypto-strength source.
func NewTableCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Slugify turns a restaurant name into a URL slug: lowercase, ascii letters
// and digits kept, everything else collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
