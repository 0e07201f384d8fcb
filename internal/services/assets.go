package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
)

//go:generate mockgen -source=assets.go -destination=mock_assets.go -package=services

// BlobStore writes opaque objects and returns a publicly fetchable URL.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// AssetService decodes inline images and stores them in a BlobStore.
type AssetService struct {
	store     BlobStore
	keyPrefix string
	timeout   time.Duration
	now       func() time.Time
}

// NewAssetService creates a new AssetService storing objects under keyPrefix.
func NewAssetService(store BlobStore, keyPrefix string, timeout time.Duration) *AssetService {
	return &AssetService{
		store:     store,
		keyPrefix: keyPrefix,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Ingest decodes encodedImage (optionally a data URL) and stores it under
// <prefix>/<unix millis>-<suggestedName>, returning the object's URL.
func (s *AssetService) Ingest(ctx context.Context, encodedImage, suggestedName string) (string, error) {
	if strings.TrimSpace(encodedImage) == "" {
		return "", fmt.Errorf("%w: imageData is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(suggestedName) == "" {
		return "", fmt.Errorf("%w: fileName is required", apperrors.ErrValidation)
	}
	name, err := baseName(suggestedName)
	if err != nil {
		return "", err
	}

	contentType, payload := splitDataURL(encodedImage)
	if payload == "" {
		return "", fmt.Errorf("%w: imageData has no payload", apperrors.ErrValidation)
	}

	data, err := decodeBase64(payload)
	if err != nil {
		logger.Log.Infow("invalid image payload", "fileName", suggestedName, "error", err)
		return "", fmt.Errorf("%w: %v", apperrors.ErrDecode, err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := ObjectKey(s.keyPrefix, s.now(), name)

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	url, err := s.store.Put(ctx, key, contentType, data)
	if err != nil {
		logger.Log.Errorw("failed to store image", "key", key, "error", err)
		return "", asStorageError(err)
	}

	logger.Log.Infow("image stored", "key", key, "size", len(data), "url", url)
	return url, nil
}

// ObjectKey builds the blob key from prefix, t in milliseconds and the base of name.
// Backslashes count as path separators.
func ObjectKey(prefix string, t time.Time, name string) string {
	key := fmt.Sprintf("%d-%s", t.UnixMilli(), path.Base(strings.ReplaceAll(name, `\`, "/")))
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

// baseName returns the last element of name and rejects names that have no
// usable file element, such as "/", "." or `..\`.
func baseName(name string) (string, error) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	switch base {
	case ".", "..", "/":
		return "", fmt.Errorf("%w: fileName %q has no file name", apperrors.ErrValidation, name)
	}
	return base, nil
}

// splitDataURL strips a "data:<media-type>;base64," marker and returns the
// media type and the remaining payload. Input without a marker is returned as payload.
func splitDataURL(s string) (mediaType, payload string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return "", s
	}

	meta, payload, found := strings.Cut(s, ",")
	if !found {
		return "", ""
	}
	mediaType = strings.TrimPrefix(meta, "data:")
	mediaType = strings.TrimSuffix(mediaType, ";base64")
	return mediaType, strings.TrimSpace(payload)
}

// decodeBase64 accepts standard base64 with correct, missing or surplus
// trailing padding, so "AAAA==" decodes like "AAAA".
func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
