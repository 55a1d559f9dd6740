package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlobSink stores an object and returns the URL it can be fetched from.
type BlobSink interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// Upload is a file received from a client along with its descriptive fields.
type Upload struct {
	ProjectID   string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	Description *string
}

type FileUploadInput struct {
	Upload
	Category string
}

type SRSUploadInput struct {
	Upload
	Title   string
	Version string
}

// Uploads pushes blobs to the sink and records the resulting metadata.
type Uploads struct {
	db     database.Database
	sink   BlobSink
	logger zerolog.Logger
}

// NewUploads builds the upload service. A nil sink makes every upload fail as unconfigured.
func NewUploads(db database.Database, sink BlobSink) *Uploads {
	return &Uploads{
		db:     db,
		sink:   sink,
		logger: log.With().Str("serviceName", "uploads").Logger(),
	}
}

func (u *Uploads) UploadFile(ctx context.Context, uploader *models.User, in FileUploadInput) (*models.FileUpload, error) {
	key, url, err := u.store(ctx, in.Upload, in.ProjectID)
	if err != nil {
		return nil, err
	}

	fileType := in.ContentType
	if fileType == "" {
		fileType = models.UnknownFileType
	}
	file := &models.FileUpload{
		ProjectID:   in.ProjectID,
		Filename:    in.Filename,
		FileURL:     url,
		FileType:    fileType,
		Category:    in.Category,
		Description: in.Description,
		UploadedBy:  uploader.Name,
	}
	if err := u.db.FileRepo().Add(ctx, file); err != nil {
		return nil, err
	}
	u.logger.Info().Str("projectID", in.ProjectID).Str("key", key).Msg("file uploaded")
	return file, nil
}

func (u *Uploads) UploadSRS(ctx context.Context, uploader *models.User, in SRSUploadInput) (*models.SRSDocument, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(in.Version) == "" {
		return nil, errs.NewMissingRequiredFieldError("version")
	}

	key, url, err := u.store(ctx, in.Upload, in.ProjectID+"/srs")
	if err != nil {
		return nil, err
	}

	doc := &models.SRSDocument{
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Version:     in.Version,
		FileURL:     url,
		UploadedBy:  uploader.Name,
		Description: in.Description,
	}
	if err := u.db.SRSDocumentRepo().Add(ctx, doc); err != nil {
		return nil, err
	}
	u.logger.Info().Str("projectID", in.ProjectID).Str("key", key).Msg("srs document uploaded")
	return doc, nil
}

func (u *Uploads) store(ctx context.Context, in Upload, prefix string) (key, url string, err error) {
	if u.sink == nil {
		return "", "", errs.NewUpstreamUnavailableError("blob storage")
	}
	if in.ProjectID == "" {
		return "", "", errs.NewMissingRequiredFieldError("project_id")
	}
	name := sanitizeFilename(in.Filename)
	if name == "" {
		return "", "", errs.NewMissingRequiredFieldError("file")
	}
	if _, err := u.db.ProjectRepo().FindByID(ctx, in.ProjectID); err != nil {
		return "", "", err
	}

	key = fmt.Sprintf("%s/%s_%s", prefix, uuid.NewString(), name)
	url, err = u.sink.Put(ctx, key, in.Body, in.Size, in.ContentType)
	if err != nil {
		return "", "", errs.NewUploadFailedError(err)
	}
	return key, url, nil
}

// sanitizeFilename keeps only the final path element of a client supplied name.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
