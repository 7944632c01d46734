package util

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// SanitizeFilename rejects user-supplied names that could escape the upload
// root: empty names, absolute paths, separators and ".." segments.
func SanitizeFilename(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidPath
	}
	if strings.ContainsAny(name, "/\\") || filepath.IsAbs(name) {
		return "", ErrInvalidPath
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return "", ErrInvalidPath
	}
	return name, nil
}

// SanitizeRelativePath validates a caller-supplied relative path such as
// "videos/abc.mp4". Every segment must stay inside the upload root.
func SanitizeRelativePath(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.Contains(path, "\\") {
		return "", ErrInvalidPath
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(clean, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	return clean, nil
}

// ValidateMimeType sniffs the MIME type of the reader's leading bytes and
// checks it against the allowed prefixes, e.g. "video/", "application/pdf".
// The detected type is returned either way.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, ErrInvalidFileType
}
