// Package cipher holds the text encryption toys: a Caesar shift, base64
// helpers, and hex digests. These are illustrative codecs, not security
// primitives; the real crypto lives in internal/vault.
package cipher

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Caesar shifts letters by k positions, wrapping mod 26. Case is preserved
// and non-letters pass through untouched. Any integer shift is accepted,
// including negatives.
func Caesar(text string, shift int) string {
	k := ((shift % 26) + 26) % 26
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, 'a'+(r-'a'+rune(k))%26)
		case r >= 'A' && r <= 'Z':
			out = append(out, 'A'+(r-'A'+rune(k))%26)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// CaesarDecrypt undoes Caesar with the same shift.
func CaesarDecrypt(text string, shift int) string {
	return Caesar(text, -shift)
}

// Base64Encode encodes text as standard base64.
func Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64Decode decodes standard base64 text.
func Base64Decode(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid base64 input: %w", err)
	}
	return string(data), nil
}

// Digest returns the hex digest of text under the named algorithm
// (md5, sha1, sha256).
func Digest(text, algorithm string) (string, error) {
	switch algorithm {
	case "md5":
		sum := md5.Sum([]byte(text))
		return hex.EncodeToString(sum[:]), nil
	case "sha1":
		sum := sha1.Sum([]byte(text))
		return hex.EncodeToString(sum[:]), nil
	case "sha256":
		sum := sha256.Sum256([]byte(text))
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (want md5, sha1 or sha256)", algorithm)
	}
}
