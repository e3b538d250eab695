package controllers

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/lapor-desu/api-go/config"
)

var (
	ErrStorageUnavailable   = errors.New("storage is not configured, please set STORAGE_ENDPOINT, STORAGE_ACCESS_KEY_ID, STORAGE_SECRET_ACCESS_KEY, STORAGE_BUCKET_NAME")
	ErrNoFileProvided       = errors.New("no file provided")
	ErrUnsupportedMediaType = errors.New("unsupported image type")
)

var allowedImageMIMEs = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Uploader pushes report images into an S3-compatible bucket and hands back
// the public URL for the stored object. One network call per upload, no retry.
type Uploader struct {
	Client *s3.Client
	Config *config.StorageConfig
}

func NewUploader(cfg *config.StorageConfig) *Uploader {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &Uploader{
		Client: client,
		Config: cfg,
	}
}

// Upload stores the image under a fresh key and returns its public URL.
func (u *Uploader) Upload(file *multipart.FileHeader) (string, error) {
	if !u.Config.Configured() {
		return "", ErrStorageUnavailable
	}
	if file == nil || file.Filename == "" {
		return "", ErrNoFileProvided
	}

	ext, mime, err := resolveImageType(file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := generateImageKey(ext)

	_, err = u.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(u.Config.BucketName),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(mime),
	})
	if err != nil {
		return "", err
	}

	return u.publicURL(key), nil
}

// resolveImageType maps the declared MIME type to an extension, falling back
// to sniffing the filename when the MIME type is absent or unrecognized. The
// fallback also fixes up the MIME type stored with the object.
func resolveImageType(mime, filename string) (string, string, error) {
	if ext, ok := allowedImageMIMEs[mime]; ok {
		return ext, mime, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return ".jpg", "image/jpeg", nil
	case ".png":
		return ".png", "image/png", nil
	case ".webp":
		return ".webp", "image/webp", nil
	case ".gif":
		return ".gif", "image/gif", nil
	}
	return "", "", ErrUnsupportedMediaType
}

func generateImageKey(ext string) string {
	id := uuid.New()
	return fmt.Sprintf("reports/%s%s", hex.EncodeToString(id[:]), ext)
}

func (u *Uploader) publicURL(key string) string {
	if u.Config.PublicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(u.Config.PublicURL, "/"), key)
	}
	// Deterministic fallback: provider base + bucket + key
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.Config.Endpoint, "/"), u.Config.BucketName, key)
}
