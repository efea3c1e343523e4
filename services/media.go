package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

// MediaService owns the object layout in MinIO and the media_assets ledger.
// Processed images live under processed/ and their previews under
// thumbnails/, both named by the owning record's id.
type MediaService struct {
	context.DefaultService
	sqlSvc   *SqlService
	minioSvc *MinIOService
	baseURL  string
}

const MEDIA_SVC = "media_svc"

const presignExpiry = 24 * time.Hour

const maxUploadSize = 10 * 1024 * 1024

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://localhost:8000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// ValidateUpload rejects files the image pipeline cannot handle before any
// bytes are read.
func (svc *MediaService) ValidateUpload(file *multipart.FileHeader) error {
	if file.Size > maxUploadSize {
		return shared.NewBadRequestError(nil, "Image file too large. Maximum size: 10MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return nil
	default:
		return shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
	}
}

// StoreScanImages uploads a processed crop photo and its thumbnail, records
// both in the media ledger and returns their URLs. Object names are derived
// from the scan id so deletion needs no extra lookup.
func (svc *MediaService) StoreScanImages(scanID, originalName string, processed, thumbnail []byte) (string, string, error) {
	imageObject, thumbObject := ScanObjectNames(scanID)

	imageURL, err := svc.storeObject(imageObject, originalName, "scan", processed)
	if err != nil {
		return "", "", err
	}

	thumbURL, err := svc.storeObject(thumbObject, originalName, "thumbnail", thumbnail)
	if err != nil {
		svc.minioSvc.DeleteFile(imageObject)
		return "", "", err
	}

	return imageURL, thumbURL, nil
}

// DeleteScanImages removes the stored objects for a scan. Missing objects are
// logged and skipped so a half-cleaned scan can still be deleted.
func (svc *MediaService) DeleteScanImages(scanID string) {
	imageObject, thumbObject := ScanObjectNames(scanID)

	if err := svc.minioSvc.DeleteFile(imageObject); err != nil {
		log.WithError(err).Warnf("failed to delete scan image %s", imageObject)
	}
	if err := svc.minioSvc.DeleteFile(thumbObject); err != nil {
		log.WithError(err).Warnf("failed to delete scan thumbnail %s", thumbObject)
	}
}

func (svc *MediaService) storeObject(objectName, originalName, fileType string, data []byte) (string, error) {
	if _, err := svc.minioSvc.UploadFile(objectName, bytes.NewReader(data), int64(len(data)), "image/jpeg"); err != nil {
		return "", shared.NewInternalError(err, "Failed to upload file to storage")
	}

	url, err := svc.minioSvc.GetFileURL(objectName, presignExpiry)
	if err != nil {
		log.Printf("Failed to generate presigned URL: %v", err)
		url = fmt.Sprintf("%s/%s/%s", svc.baseURL, svc.minioSvc.GetBucketName(), objectName)
	}

	id, _ := uuid.NewV7()
	asset := &model.MediaAsset{
		ID:           id.String(),
		FileName:     filepath.Base(objectName),
		OriginalName: originalName,
		FileType:     fileType,
		MimeType:     "image/jpeg",
		FileSize:     int64(len(data)),
		URL:          url,
		StoragePath:  objectName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := svc.sqlSvc.Scans().CreateMediaAsset(asset); err != nil {
		svc.minioSvc.DeleteFile(objectName)
		return "", svc.sqlSvc.HandleError(err)
	}

	return url, nil
}

// Shutdown the service
func (svc *MediaService) Shutdown() {
}

// ScanObjectNames returns the storage object names for a scan image and its
// thumbnail.
func ScanObjectNames(scanID string) (string, string) {
	return fmt.Sprintf("processed/%s.jpg", scanID), fmt.Sprintf("thumbnails/%s.jpg", scanID)
}
