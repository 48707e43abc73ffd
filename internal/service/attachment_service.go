package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/repository"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttachmentService manages the supplementary image list on an existing
// application, independently of the initial submission.
type AttachmentService interface {
	AppendImage(ctx context.Context, applicationID string, file *multipart.FileHeader) (string, error)
	RemoveImage(ctx context.Context, applicationID, fileURL string) error
}

type attachmentService struct {
	applicationRepo repository.ApplicationRepository
	fileStore       storage.FileStore
}

func NewAttachmentService(applicationRepo repository.ApplicationRepository, fileStore storage.FileStore) AttachmentService {
	return &attachmentService{
		applicationRepo: applicationRepo,
		fileStore:       fileStore,
	}
}

// AppendImage uploads the file and appends its URL to the application's image
// list. The application must exist before anything is uploaded.
func (s *attachmentService) AppendImage(ctx context.Context, applicationID string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrNoFileUploaded
	}

	id, err := uuid.Parse(applicationID)
	if err != nil {
		return "", ErrInvalidID
	}

	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrApplicationNotFound
		}
		return "", fmt.Errorf("fetch application: %w", err)
	}

	name := fmt.Sprintf("applicationFormImage_%s_%s", id, storage.SanitizeFilename(file.Filename))
	fileURL, err := s.fileStore.Upload(ctx, file, name)
	if err != nil {
		return "", fmt.Errorf("upload form image: %w", err)
	}

	if application.ApplicationFormImages == nil {
		application.ApplicationFormImages = datatypes.JSONSlice[string]{}
	}
	application.ApplicationFormImages = append(application.ApplicationFormImages, fileURL)

	if err := s.applicationRepo.Save(ctx, application); err != nil {
		return "", fmt.Errorf("save application: %w", err)
	}

	return fileURL, nil
}

// RemoveImage removes the single entry exactly matching fileURL, persists the
// change, then deletes the remote object best-effort.
func (s *attachmentService) RemoveImage(ctx context.Context, applicationID, fileURL string) error {
	id, err := uuid.Parse(applicationID)
	if err != nil {
		return ErrInvalidID
	}

	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("fetch application: %w", err)
	}

	index := indexOfImage(application.ApplicationFormImages, fileURL)
	if index == -1 {
		return ErrFileNotInApplication
	}

	application.ApplicationFormImages = append(
		application.ApplicationFormImages[:index],
		application.ApplicationFormImages[index+1:]...,
	)

	if err := s.applicationRepo.Save(ctx, application); err != nil {
		return fmt.Errorf("save application: %w", err)
	}

	// Deleting the record entry must not be blocked by an orphaned remote
	// file.
	if err := s.fileStore.Delete(ctx, fileURL); err != nil {
		log.Printf("Error deleting remote file %s: %v", fileURL, err)
	}

	return nil
}

func indexOfImage(images datatypes.JSONSlice[string], fileURL string) int {
	for i, image := range images {
		if image == fileURL {
			return i
		}
	}
	return -1
}
