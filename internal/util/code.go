package util

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewCertificateCode builds the default certificate code from the current time.
func NewCertificateCode(now time.Time) string {
	return CertificatePrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// RandomString returns n lowercase hex characters.
func RandomString(n int) string {
	b := make([]byte, (n+1)/2)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)[:n]
}
