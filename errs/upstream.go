package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-party & configuration errors
var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrConfigMissing      = errors.New("configuration missing")
	ErrUploadFailed       = errors.New("upload failed")
)

// NewUpstreamUnavailableError reports an external collaborator that is not configured.
func NewUpstreamUnavailableError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("%s not configured", service),
	}
}

func NewUploadFailedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUploadFailed,
		Details:    cause.Error(),
		Cause:      cause,
	}
}

func NewConfigMissingError(key string) error {
	return fmt.Errorf("%w: %s", ErrConfigMissing, key)
}

func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
