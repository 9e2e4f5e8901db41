package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMappingsNotConfigured = errors.New("reference mappings are not configured")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed          = errors.New("staging uploaded file failed")
	ErrInvoiceMetaRequired   = errors.New("invoice number and invoice date are required")
	ErrDuplicateUsername     = errors.New("username already exists")
)

// MappingError reports a mapping configuration problem discovered during
// ingestion: a required system column that no source column maps to, or a
// mapped source column absent from the uploaded file. The upload is rejected
// with no partial write.
type MappingError struct {
	Message string
}

func (e *MappingError) Error() string { return e.Message }

// NewMappingError builds a MappingError with a formatted message.
func NewMappingError(format string, args ...interface{}) *MappingError {
	return &MappingError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports a bad value in an uploaded data row. Row is the
// 1-based data row index (excluding the header row). Any validation error
// rejects the whole file, not just the offending row.
type ValidationError struct {
	Row     int
	Column  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d, column %q: %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("column %q: %s", e.Column, e.Message)
}
