package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastetrail/backend/config"
)

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc := NewImageService(&config.S3Config{BucketName: "test-bucket"})

	// The extension check runs before any S3 call.
	_, err := svc.Upload(context.Background(), []byte("data"), "image/gif", "animation.gif")
	assert.Error(t, err)

	_, err = svc.Upload(context.Background(), []byte("data"), "text/plain", "noextension")
	assert.Error(t, err)
}
