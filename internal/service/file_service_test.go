package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lms_backend/internal/config"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileService(t *testing.T) *FileService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.UploadRoot = t.TempDir()
	return NewFileService(cfg, NewStorageService(cfg))
}

// mp4Content carries a minimal ftyp box so content sniffing reports video/mp4.
func mp4Content(payload string) string {
	return "\x00\x00\x00\x14ftypmp42\x00\x00\x00\x00mp42" + payload
}

func pdfContent(payload string) string {
	return "%PDF-1.7\n" + payload
}

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

func TestFileUploadAndDelete(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	content := mp4Content("lecture body")
	header := makeFileHeader(t, "lecture.mp4", content)
	relPath, original, err := svc.Upload(ctx, header, FolderVideos)
	require.NoError(t, err)

	assert.Equal(t, "lecture.mp4", original)
	assert.True(t, strings.HasPrefix(relPath, "videos/"))
	assert.Equal(t, ".mp4", filepath.Ext(relPath))

	full := filepath.Join(svc.Config.Storage.UploadRoot, relPath)
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, svc.Delete(ctx, relPath))
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op.
	assert.NoError(t, svc.Delete(ctx, relPath))
}

func TestFileUploadRejectsUnknownFolder(t *testing.T) {
	svc := newFileService(t)

	header := makeFileHeader(t, "notes.txt", "text")
	_, _, err := svc.Upload(context.Background(), header, "secrets")
	assert.ErrorIs(t, err, util.ErrInvalidPath)
}

func TestFileUploadRejectsWrongContent(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	// Content sniffing, not the extension, decides the media type.
	_, _, err := svc.Upload(ctx, makeFileHeader(t, "fake.mp4", "plain text pretending"), FolderVideos)
	assert.ErrorIs(t, err, util.ErrInvalidFileType)

	_, _, err = svc.Upload(ctx, makeFileHeader(t, "fake.pdf", mp4Content("")), FolderPDFs)
	assert.ErrorIs(t, err, util.ErrInvalidFileType)

	_, _, err = svc.Upload(ctx, makeFileHeader(t, "real.pdf", pdfContent("doc body")), FolderPDFs)
	assert.NoError(t, err)
}

func TestFileDeleteRejectsTraversal(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	for _, path := range []string{"../escape.mp4", "videos/../../etc/passwd", "/etc/passwd", ""} {
		assert.ErrorIsf(t, svc.Delete(ctx, path), util.ErrInvalidPath, "path %q", path)
	}
}

func TestFileResolveVideo(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	header := makeFileHeader(t, "clip.mp4", mp4Content(""))
	relPath, _, err := svc.Upload(ctx, header, FolderVideos)
	require.NoError(t, err)
	name := filepath.Base(relPath)

	full, err := svc.ResolveVideo(name)
	require.NoError(t, err)
	assert.FileExists(t, full)

	_, err = svc.ResolveVideo("missing.mp4")
	assert.ErrorIs(t, err, util.ErrFileNotFound)

	_, err = svc.ResolveVideo("../" + name)
	assert.ErrorIs(t, err, util.ErrInvalidPath)
}

func TestFileListVideosWithSidecars(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	relPath, _, err := svc.Upload(ctx, makeFileHeader(t, "lesson.mp4", mp4Content("")), FolderVideos)
	require.NoError(t, err)
	videoName := filepath.Base(relPath)
	base := strings.TrimSuffix(videoName, ".mp4")

	// A PDF sharing the video's base name gets joined into the listing.
	pdfDir := filepath.Join(svc.Config.Storage.UploadRoot, FolderPDFs)
	require.NoError(t, os.MkdirAll(pdfDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pdfDir, base+".pdf"), []byte("pdf"), 0644))

	require.NoError(t, svc.SaveMetadata(videoName, &VideoMetadata{
		Title:    "Lesson one",
		Duration: 420,
	}))

	items, err := svc.ListVideos()
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, videoName, item.FileName)
	assert.Equal(t, "/api/videos/stream/"+videoName, item.URL)
	assert.Equal(t, "/api/videos/pdf/"+base+".pdf", item.PdfURL)
	require.NotNil(t, item.Metadata)
	assert.Equal(t, "Lesson one", item.Metadata.Title)
	assert.Equal(t, 420, item.Metadata.Duration)
}

func TestFileListVideosEmpty(t *testing.T) {
	svc := newFileService(t)

	items, err := svc.ListVideos()
	require.NoError(t, err)
	assert.Empty(t, items)
}
