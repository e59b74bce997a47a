package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"bakehouse/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores customer cake-design exports and catalog imagery.
type StorageService interface {
	UploadDesign(ctx context.Context, file multipart.File, filename string) (string, error)
	UploadProductImage(ctx context.Context, file multipart.File, filename string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryStorageService is the production implementation.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService initializes a Cloudinary-backed storage
// service from application configuration.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadDesign uploads a cake-canvas export and returns its delivery URL.
func (s *CloudinaryStorageService) UploadDesign(ctx context.Context, file multipart.File, filename string) (string, error) {
	return s.upload(ctx, file, filename, "designs")
}

// UploadProductImage uploads a catalog cake photo and returns its delivery URL.
func (s *CloudinaryStorageService) UploadProductImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	return s.upload(ctx, file, filename, "catalog")
}

func (s *CloudinaryStorageService) upload(ctx context.Context, file multipart.File, filename, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: filename,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload %s: %w", filename, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for %s", filename)
	}
	return result.SecureURL, nil
}

// Delete removes a stored asset by its public ID.
func (s *CloudinaryStorageService) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete %s: %w", publicID, err)
	}
	return nil
}
