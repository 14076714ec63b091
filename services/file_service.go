package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
)

// StorageProvider persists file content and returns a URL the HTTP layer
// can serve.
type StorageProvider interface {
	Save(content []byte, fileName, folder string) (string, error)
}

// LocalStorage writes uploads under a base directory served as static
// files.
type LocalStorage struct {
	BaseDir string
	BaseURL string
}

func NewLocalStorage(baseDir, baseURL string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir, BaseURL: baseURL}
}

func (ls *LocalStorage) Save(content []byte, fileName, folder string) (string, error) {
	dir := filepath.Join(ls.BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), content, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", ls.BaseURL, folder, fileName), nil
}

// FileService stores uploads under a collision-free generated name and
// records them in the database.
type FileService struct {
	db      *gorm.DB
	storage StorageProvider
}

func NewFileService(db *gorm.DB, storage StorageProvider) *FileService {
	return &FileService{db: db, storage: storage}
}

func (s *FileService) Upload(content []byte, originalName, folder string, uploadedBy uint) (models.UploadedFile, error) {
	name := uuid.New().String()
	if idx := strings.LastIndex(originalName, "."); idx >= 0 && idx < len(originalName)-1 {
		name = name + originalName[idx:]
	}

	url, err := s.storage.Save(content, name, folder)
	if err != nil {
		return models.UploadedFile{}, err
	}

	record := models.UploadedFile{
		FileName:     name,
		OriginalName: originalName,
		URL:          url,
		Folder:       folder,
		UploadedBy:   uploadedBy,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return models.UploadedFile{}, err
	}
	return record, nil
}

func (s *FileService) ListByUser(userID uint) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	err := s.db.Where("uploaded_by = ?", userID).Order("created_at DESC").Find(&files).Error
	return files, err
}
