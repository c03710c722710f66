// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-places/internal/store"
)

// formFieldsOverhead is the room left for the text fields and the multipart
// framing next to the image.
const formFieldsOverhead = 64 << 10

// parseImageForm parses a multipart form carrying an "image" file and stores
// the image. The returned path must be handed to fail when the request later
// fails, so that the file does not outlive it.
func (h *Handler) parseImageForm(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+formFieldsOverhead)

	if err := r.ParseMultipartForm(h.maxImageSize + formFieldsOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", fmt.Errorf("%w: %w", store.ErrImageTooLarge, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", ErrImageRequired
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	if h.maxImageSize > 0 && header.Size > h.maxImageSize {
		return "", store.ErrImageTooLarge
	}

	return h.images.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
}
