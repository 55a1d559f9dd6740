package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/services"
)

// multipartMemory is the part of a multipart form buffered in memory before spilling to disk.
const multipartMemory = 8 << 20

// readUpload parses a multipart form holding a "file" part and a "project_id" field.
// The returned closer must be called once the upload has been stored.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (services.Upload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return services.Upload{}, nil, errs.NewMaxBodySizeExceededError(maxBytes)
		}
		return services.Upload{}, nil, errs.NewMalformedPayloadError("multipart form", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return services.Upload{}, nil, errs.NewMissingRequiredFieldError("file")
		}
		return services.Upload{}, nil, errs.NewMalformedPayloadError("multipart form", err)
	}

	upload := services.Upload{
		ProjectID:   strings.TrimSpace(r.FormValue("project_id")),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Description: optionalFormValue(r, "description"),
	}
	closer := func() {
		_ = file.Close()
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}
	return upload, closer, nil
}

func optionalFormValue(r *http.Request, key string) *string {
	if _, ok := r.MultipartForm.Value[key]; !ok {
		return nil
	}
	v := r.FormValue(key)
	return &v
}

