package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/jobpost-assistant/internal/models"
)

// Audio formats accepted by the transcription API.
var allowedAudioTypes = map[string]bool{
	"audio/flac": true,
	"audio/m4a":  true,
	"audio/mp3":  true,
	"audio/mp4":  true,
	"audio/mpeg": true,
	"audio/mpga": true,
	"audio/oga":  true,
	"audio/ogg":  true,
	"audio/wav":  true,
	"audio/webm": true,
}

type AudioStorageService interface {
	SaveAudio(file *multipart.FileHeader) (*models.AudioUpload, error)
	DeleteAudio(upload *models.AudioUpload) error
	EnsureUploadDir() error
}

type audioStorageService struct {
	uploadPath  string
	maxFileSize int64
}

func NewAudioStorageService(uploadPath string, maxFileSize int64) AudioStorageService {
	return &audioStorageService{
		uploadPath:  uploadPath,
		maxFileSize: maxFileSize,
	}
}

func (s *audioStorageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveAudio validates the upload and writes it under a uuid-based name, so
// two simultaneous uploads of the same recording never collide.
func (s *audioStorageService) SaveAudio(file *multipart.FileHeader) (*models.AudioUpload, error) {
	mimeType := normalizeMimeType(file.Header.Get("Content-Type"))
	if !allowedAudioTypes[mimeType] {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedMediaType, mimeType)
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", models.ErrPayloadTooLarge, file.Size, s.maxFileSize)
	}

	// Generate the unique filename
	ext := strings.ToLower(filepath.Ext(file.Filename))
	uniqueFilename := fmt.Sprintf("audio_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &models.AudioUpload{
		Filename:     uniqueFilename,
		OriginalName: file.Filename,
		FilePath:     filePath,
		MimeType:     mimeType,
		Size:         file.Size,
	}, nil
}

func (s *audioStorageService) DeleteAudio(upload *models.AudioUpload) error {
	if err := os.Remove(upload.FilePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func normalizeMimeType(contentType string) string {
	mimeType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mimeType))
}
