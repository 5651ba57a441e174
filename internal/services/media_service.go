package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"bizsetu/internal/common"
	"bizsetu/internal/models"
	"bizsetu/internal/rules"

	"github.com/google/uuid"
)

// MediaService gates uploaded files (size, MIME) and hands them to the
// object store. It never retries; a store failure fails the request.
type MediaService interface {
	Ingest(ctx context.Context, file *multipart.FileHeader, kind string) (*models.StoredRef, error)
	// Discard removes a stored object, used to clean up files an
	// update has replaced.
	Discard(ctx context.Context, ref *models.StoredRef) error
}

type mediaService struct {
	store  ObjectStore
	bucket string
}

func NewMediaService(store ObjectStore, bucket string) MediaService {
	return &mediaService{store: store, bucket: bucket}
}

func (s *mediaService) Ingest(ctx context.Context, file *multipart.FileHeader, kind string) (*models.StoredRef, error) {
	contentType := file.Header.Get("Content-Type")
	if err := rules.ValidateUpload(kind, contentType, file.Size); err != nil {
		kindErr := common.MediaWrongType
		if strings.Contains(err.Error(), "size limit") {
			kindErr = common.MediaTooLarge
		}
		return nil, &common.MediaError{Kind: kindErr, Err: err}
	}

	src, err := file.Open()
	if err != nil {
		return nil, &common.MediaError{Kind: common.MediaStoreUnavailable, Err: err}
	}
	defer src.Close()

	objectName := kind + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	publicURL, err := s.store.Upload(ctx, s.bucket, objectName, src, file.Size, contentType)
	if err != nil {
		return nil, &common.MediaError{Kind: common.MediaStoreUnavailable, Err: err}
	}

	return &models.StoredRef{Path: objectName, PublicURL: publicURL}, nil
}

func (s *mediaService) Discard(ctx context.Context, ref *models.StoredRef) error {
	if ref == nil {
		return nil
	}
	return s.store.Remove(ctx, s.bucket, ref.Path)
}
