package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	valid := []string{"video.mp4", "report.pdf", "a", "weird name with spaces.mp4"}
	for _, name := range valid {
		got, err := SanitizeFilename(name)
		require.NoErrorf(t, err, "name %q", name)
		assert.Equal(t, name, got)
	}

	invalid := []string{
		"",
		".",
		"..",
		"../video.mp4",
		"..\\video.mp4",
		"videos/clip.mp4",
		"/etc/passwd",
		"clip..mp4",
	}
	for _, name := range invalid {
		_, err := SanitizeFilename(name)
		assert.ErrorIsf(t, err, ErrInvalidPath, "name %q", name)
	}
}

func TestSanitizeRelativePath(t *testing.T) {
	cases := map[string]string{
		"videos/clip.mp4":   "videos/clip.mp4",
		"pdfs/doc.pdf":      "pdfs/doc.pdf",
		"videos//clip.mp4":  "videos/clip.mp4",
		"./videos/clip.mp4": "videos/clip.mp4",
	}
	for in, want := range cases {
		got, err := SanitizeRelativePath(in)
		require.NoErrorf(t, err, "path %q", in)
		assert.Equal(t, want, got)
	}

	invalid := []string{
		"",
		".",
		"..",
		"../clip.mp4",
		"videos/../../etc/passwd",
		"/etc/passwd",
		"videos\\clip.mp4",
	}
	for _, in := range invalid {
		_, err := SanitizeRelativePath(in)
		assert.ErrorIsf(t, err, ErrInvalidPath, "path %q", in)
	}
}

func TestValidateMimeType(t *testing.T) {
	pdf := strings.NewReader("%PDF-1.7 fake document body")
	mime, err := ValidateMimeType(pdf, []string{"application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)

	text := strings.NewReader("just some text")
	detected, err := ValidateMimeType(text, []string{"video/"})
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Contains(t, detected, "text/plain")
}

func TestParseUintOrZero(t *testing.T) {
	assert.Equal(t, uint(42), ParseUintOrZero("42"))
	assert.Zero(t, ParseUintOrZero("not-a-number"))
	assert.Zero(t, ParseUintOrZero("-1"))
}
