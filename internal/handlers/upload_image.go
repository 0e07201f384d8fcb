package handlers

import (
	"context"
	"net/http"
)

// ImageIngester defines the interface for storing inline images.
type ImageIngester interface {
	Ingest(ctx context.Context, encodedImage, suggestedName string) (string, error)
}

// UploadImageRequest represents the JSON body for an image upload
// swagger:model UploadImageRequest
type UploadImageRequest struct {
	// Base64 image, optionally as a data URL
	// required: true
	// default: data:image/png;base64,AAAA
	ImageData string `json:"imageData"`

	// Suggested file name
	// required: true
	// default: r1.png
	FileName string `json:"fileName"`
}

// UploadImageResponse represents a successful upload
// swagger:model UploadImageResponse
type UploadImageResponse struct {
	// default: true
	Success bool `json:"success"`

	// Public URL of the stored image
	URL string `json:"url"`
}

// NewUploadImageHandler returns an HTTP handler that stores an inline image.
// Request bodies larger than maxBytes are rejected.
// @Summary Upload an image
// @Description Decodes a base64 image and stores it in the blob store under a timestamped key.
// @Tags assets
// @Accept json
// @Produce json
// @Param uploadImageRequest body handlers.UploadImageRequest true "Image payload"
// @Success 200 {object} handlers.UploadImageResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing imageData or fileName"
// @Failure 413 {object} handlers.ErrorResponse "Request body too large"
// @Failure 500 {object} handlers.ErrorResponse "Decode or storage failure"
// @Router /upload-image [post]
func NewUploadImageHandler(svc ImageIngester, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		var req UploadImageRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		url, err := svc.Ingest(r.Context(), req.ImageData, req.FileName)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UploadImageResponse{Success: true, URL: url})
	}
}
