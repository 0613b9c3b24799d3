package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"keyword-insight/pkg/errs"
)

// Sign produces the X-Signature value for a search-ad API request:
// HMAC-SHA256 over "{timestamp}.{method}.{path}", base64 encoded.
// The secret is trimmed before keying since keys pasted from the console
// often carry trailing whitespace.
func Sign(secretKey, timestamp, method, path string) (string, error) {
	secret := strings.TrimSpace(secretKey)
	if secret == "" {
		return "", &errs.ConfigurationError{Missing: []string{"AD_SECRET_KEY"}}
	}

	message := fmt.Sprintf("%s.%s.%s", timestamp, method, path)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
