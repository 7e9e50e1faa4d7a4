package util

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// SniffMimeType inspects the first 512 bytes and checks the result against
// allowed prefixes such as "video/" or full types such as "application/pdf".
func SniffMimeType(r io.Reader, allowed []string) (string, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buf[:n])
	for _, a := range allowed {
		if strings.HasPrefix(mimeType, a) {
			return mimeType, nil
		}
	}
	return mimeType, ErrInvalidFile
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeVideo)
}

// HasExtension matches the file name's extension case-insensitively.
func HasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
