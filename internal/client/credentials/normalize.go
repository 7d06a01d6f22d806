// Package credentials canonicalizes user input into the exact form the
// backend expects on the login endpoint.
package credentials

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Normalize returns the trimmed, lowercased identifier and the uppercase hex
// MD5 digest of the secret. The digest is a backend contract, not a
// protection measure; the transport must be encrypted.
func Normalize(identifier, secret string) (string, string) {
	return NormalizeIdentifier(identifier), DigestSecret(secret)
}

// NormalizeIdentifier trims surrounding whitespace and lowercases.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// DigestSecret hashes secret with MD5 and uppercases the 32-char hex form.
// An empty secret yields an empty string.
func DigestSecret(secret string) string {
	if secret == "" {
		return ""
	}
	sum := md5.Sum([]byte(secret))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
