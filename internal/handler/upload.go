package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	errImageTooLarge = errors.New("image too large")
	errBadImageType  = errors.New("unsupported image type")
)

// uploadedImage is a validated multipart image ready to hand to storage.
type uploadedImage struct {
	file        multipart.File
	key         string // storage key, e.g. "projects/<uuid>.jpg"
	contentType string
}

// isMultipart reports whether the request body is a multipart form.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formImage pulls the optional "image" file from an already-parsed multipart
// request and validates content type and size. Returns (nil, nil) when the
// field was not sent. The caller owns closing the returned file.
func formImage(r *http.Request, keyPrefix string) (*uploadedImage, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	if header.Size > maxImageSize {
		_ = file.Close()
		return nil, errImageTooLarge
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[ct]
	if !ok {
		_ = file.Close()
		return nil, errBadImageType
	}

	return &uploadedImage{
		file:        file,
		key:         path.Join(keyPrefix, uuid.NewString()+ext),
		contentType: ct,
	}, nil
}

// formValue returns the first value for key, or "" when the field is absent.
func formValue(form *multipart.Form, key string) string {
	if p := formString(form, key); p != nil {
		return *p
	}
	return ""
}

// formString returns a pointer to the first value for key, or nil when the
// field was not part of the form. Presence, not content, decides: an empty
// string still counts as supplied.
func formString(form *multipart.Form, key string) *string {
	if vs, ok := form.Value[key]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}
