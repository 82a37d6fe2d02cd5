package service

import (
	"context"
	"io"
	"net/url"

	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// ImageService handles image upload and deletion. Image responses are not
// cached; the returned URL is adopted into whatever entity owns the image.
type ImageService struct {
	api      *transport.Client
	notifier notify.Notifier
}

// NewImageService creates a new ImageService instance
func NewImageService(api *transport.Client, n notify.Notifier) *ImageService {
	return &ImageService{api: api, notifier: n}
}

// Upload sends an image file and returns the URL the API stored it under
func (s *ImageService) Upload(ctx context.Context, fileName string, file io.Reader) (string, error) {
	var resp types.ImageUploadResponse
	if err := s.api.PostMultipart(ctx, "/api/images/upload", nil, "file", fileName, file, &resp); err != nil {
		s.notifier.Error("Failed to upload image")
		return "", err
	}
	return resp.URL, nil
}

// Delete removes a stored image by file name
func (s *ImageService) Delete(ctx context.Context, fileName string) error {
	q := url.Values{"fileName": {fileName}}
	if err := s.api.Delete(ctx, "/api/images/delete", q); err != nil {
		s.notifier.Error("Failed to delete image")
		return err
	}
	return nil
}
