package errors

import "fmt"

// ErrorCode identifies a VitaDex failure class.
type ErrorCode string

const (
	ErrMissingParameters     ErrorCode = "MISSING_PARAMETERS"      // 400
	ErrUnauthorized          ErrorCode = "UNAUTHORIZED"            // 401
	ErrNotFound              ErrorCode = "NOT_FOUND"               // 404
	ErrExtractionEmpty       ErrorCode = "EXTRACTION_EMPTY"        // 500
	ErrExtractionMalformed   ErrorCode = "EXTRACTION_MALFORMED"    // 500
	ErrImageGenerationFailed ErrorCode = "IMAGE_GENERATION_FAILED" // 500
	ErrPersistenceFailed     ErrorCode = "PERSISTENCE_FAILED"      // 500
	ErrServerMisconfigured   ErrorCode = "SERVER_MISCONFIGURED"    // 500
	ErrInternal              ErrorCode = "INTERNAL"                // 500
)

// VitaError carries an error code and the HTTP status it maps to at
// the request boundary. Every pipeline failure is converted to one of
// these before it reaches the client.
type VitaError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

func (e *VitaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *VitaError) Unwrap() error {
	return e.Err
}

// NewMissingParameters creates a 400 error for an invalid scan body.
func NewMissingParameters(msg string) *VitaError {
	return &VitaError{Code: ErrMissingParameters, Status: 400, Message: msg}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized() *VitaError {
	return &VitaError{Code: ErrUnauthorized, Status: 401, Message: "unauthorized"}
}

// NewNotFound creates a 404 error for a missing card.
func NewNotFound(id string) *VitaError {
	return &VitaError{Code: ErrNotFound, Status: 404, Message: fmt.Sprintf("card not found: %s", id)}
}

// NewExtractionEmpty creates a 500 error for a model response with no
// structured content at all.
func NewExtractionEmpty() *VitaError {
	return &VitaError{Code: ErrExtractionEmpty, Status: 500, Message: "extraction model returned no structured response"}
}

// NewExtractionMalformed creates a 500 error for a structured response
// that fails the schema. The failure is terminal; nothing is coerced.
func NewExtractionMalformed(err error) *VitaError {
	return &VitaError{Code: ErrExtractionMalformed, Status: 500, Message: "extraction response failed schema validation", Err: err}
}

// NewImageGenerationFailed creates a 500 error for a generation call
// that produced no image payload.
func NewImageGenerationFailed(err error) *VitaError {
	return &VitaError{Code: ErrImageGenerationFailed, Status: 500, Message: "image generation failed", Err: err}
}

// NewPersistenceFailed creates a 500 error for a failed store write.
func NewPersistenceFailed(err error) *VitaError {
	return &VitaError{Code: ErrPersistenceFailed, Status: 500, Message: "failed to persist card record", Err: err}
}

// NewServerMisconfigured creates a 500 error for a missing credential.
func NewServerMisconfigured(what string) *VitaError {
	return &VitaError{Code: ErrServerMisconfigured, Status: 500, Message: fmt.Sprintf("server misconfigured: %s", what)}
}

// NewInternal wraps an unexpected error.
func NewInternal(err error) *VitaError {
	return &VitaError{Code: ErrInternal, Status: 500, Message: "internal error", Err: err}
}
