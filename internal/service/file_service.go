package service

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FolderVideos = "videos"
	FolderPDFs   = "pdfs"
)

// FileService handles media uploads and the on-disk layout under the
// upload root: videos/, pdfs/ and metadata/ sidecar files.
type FileService struct {
	Config  *config.Config
	Storage *StorageService
}

func NewFileService(cfg *config.Config, storage *StorageService) *FileService {
	return &FileService{Config: cfg, Storage: storage}
}

// VideoMetadata is the sidecar document stored next to an uploaded video.
type VideoMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

// VideoListItem is one entry of the video listing.
type VideoListItem struct {
	FileName   string         `json:"fileName"`
	URL        string         `json:"url"`
	Size       int64          `json:"size"`
	UploadedAt time.Time      `json:"uploadedAt"`
	PdfURL     string         `json:"pdfUrl,omitempty"`
	Metadata   *VideoMetadata `json:"metadata,omitempty"`
}

var allowedMimeTypes = map[string][]string{
	FolderVideos: {"video/"},
	FolderPDFs:   {"application/pdf"},
}

// Upload stores a multipart file under the given folder with a generated
// name that keeps the original extension. The content is sniffed and must
// match the folder's media type. Returns the relative path (folder/filename)
// and the original file name.
func (s *FileService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, string, error) {
	allowed, ok := allowedMimeTypes[folder]
	if !ok {
		return "", "", util.ErrInvalidPath
	}

	original := filepath.Base(file.Filename)
	ext := filepath.Ext(original)
	if strings.ContainsAny(ext, "/\\") || strings.Contains(ext, "..") {
		return "", "", util.ErrInvalidPath
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	contentType, err := util.ValidateMimeType(src, allowed)
	if err != nil {
		return "", "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	name := uuid.New().String() + ext
	relPath := folder + "/" + name

	if _, err := s.Storage.Upload(ctx, relPath, src, file.Size, contentType); err != nil {
		return "", "", err
	}

	return relPath, original, nil
}

// Delete removes an uploaded file by relative path. Deleting a file that
// does not exist is not an error.
func (s *FileService) Delete(ctx context.Context, relPath string) error {
	clean, err := util.SanitizeRelativePath(relPath)
	if err != nil {
		return err
	}
	if err := s.Storage.Delete(ctx, clean); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// ResolveVideo maps a bare filename to the full path of a stored video.
func (s *FileService) ResolveVideo(filename string) (string, error) {
	return s.resolve(FolderVideos, filename)
}

// ResolvePDF maps a bare filename to the full path of a stored PDF.
func (s *FileService) ResolvePDF(filename string) (string, error) {
	return s.resolve(FolderPDFs, filename)
}

func (s *FileService) resolve(folder, filename string) (string, error) {
	name, err := util.SanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.Config.Storage.UploadRoot, folder, name)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", util.ErrFileNotFound
	}
	return full, nil
}

// SaveMetadata writes the sidecar JSON for a video under metadata/,
// keyed by the video's base name.
func (s *FileService) SaveMetadata(videoFileName string, meta *VideoMetadata) error {
	name, err := util.SanitizeFilename(videoFileName)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))

	dir := filepath.Join(s.Config.Storage.UploadRoot, "metadata")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, base+".json"), data, 0644)
}

func (s *FileService) loadMetadata(base string) *VideoMetadata {
	path := filepath.Join(s.Config.Storage.UploadRoot, "metadata", base+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var meta VideoMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}

// ListVideos scans the videos directory and joins each entry with its
// metadata sidecar and a matching PDF if one exists. An entry that cannot
// be statted is logged and skipped so one broken file never breaks the
// whole listing.
func (s *FileService) ListVideos() ([]VideoListItem, error) {
	dir := filepath.Join(s.Config.Storage.UploadRoot, FolderVideos)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []VideoListItem{}, nil
		}
		return nil, err
	}

	items := make([]VideoListItem, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Log.Warn("skipping unreadable video file",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}

		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		item := VideoListItem{
			FileName:   entry.Name(),
			URL:        "/api/videos/stream/" + entry.Name(),
			Size:       info.Size(),
			UploadedAt: info.ModTime(),
			Metadata:   s.loadMetadata(base),
		}

		pdfName := base + ".pdf"
		if _, err := os.Stat(filepath.Join(s.Config.Storage.UploadRoot, FolderPDFs, pdfName)); err == nil {
			item.PdfURL = "/api/videos/pdf/" + pdfName
		}

		items = append(items, item)
	}

	return items, nil
}
