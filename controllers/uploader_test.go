package controllers

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/lapor-desu/api-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveImageType(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		filename string
		wantExt  string
		wantMIME string
		wantErr  error
	}{
		{"jpeg by mime", "image/jpeg", "whatever.bin", ".jpg", "image/jpeg", nil},
		{"png by mime", "image/png", "photo", ".png", "image/png", nil},
		{"webp by mime", "image/webp", "photo", ".webp", "image/webp", nil},
		{"gif by mime", "image/gif", "photo", ".gif", "image/gif", nil},
		{"fallback to jpg extension", "application/octet-stream", "lubang.JPG", ".jpg", "image/jpeg", nil},
		{"fallback to jpeg extension", "", "banjir.jpeg", ".jpg", "image/jpeg", nil},
		{"fallback to png extension", "text/plain", "lampu.png", ".png", "image/png", nil},
		{"fallback to gif extension", "", "sampah.gif", ".gif", "image/gif", nil},
		{"unsupported mime and extension", "application/pdf", "report.pdf", "", "", ErrUnsupportedMediaType},
		{"no mime no extension", "", "report", "", "", ErrUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, mime, err := resolveImageType(tt.mime, tt.filename)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
			assert.Equal(t, tt.wantMIME, mime)
		})
	}
}

func TestGenerateImageKey(t *testing.T) {
	key := generateImageKey(".png")

	require.True(t, strings.HasPrefix(key, "reports/"))
	require.True(t, strings.HasSuffix(key, ".png"))

	id := strings.TrimSuffix(strings.TrimPrefix(key, "reports/"), ".png")
	assert.Len(t, id, 32) // 128 bits as hex
	assert.NotEqual(t, id, strings.TrimSuffix(strings.TrimPrefix(generateImageKey(".png"), "reports/"), ".png"))
}

func TestUploadUnconfiguredStorage(t *testing.T) {
	uploader := NewUploader(&config.StorageConfig{Region: "auto"})

	fh := &multipart.FileHeader{
		Filename: "photo.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}

	_, err := uploader.Upload(fh)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestUploadNoFile(t *testing.T) {
	uploader := NewUploader(&config.StorageConfig{
		Endpoint:        "https://storage.example.com",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "lapor-desu",
		Region:          "auto",
	})

	_, err := uploader.Upload(nil)
	assert.ErrorIs(t, err, ErrNoFileProvided)
}

func TestPublicURL(t *testing.T) {
	t.Run("configured public base", func(t *testing.T) {
		uploader := NewUploader(&config.StorageConfig{
			Endpoint:   "https://storage.example.com",
			BucketName: "lapor-desu",
			PublicURL:  "https://cdn.example.com/",
		})
		assert.Equal(t, "https://cdn.example.com/reports/abc.png", uploader.publicURL("reports/abc.png"))
	})

	t.Run("deterministic endpoint fallback", func(t *testing.T) {
		uploader := NewUploader(&config.StorageConfig{
			Endpoint:   "https://storage.example.com",
			BucketName: "lapor-desu",
		})
		assert.Equal(t, "https://storage.example.com/lapor-desu/reports/abc.png", uploader.publicURL("reports/abc.png"))
	})
}
