package errhound

import (
	"errors"
	"net/http"
	"time"
)

// Class is the outcome of classifying a raised error.
type Class int

const (
	// ClassValidation is a *ValidationError.
	ClassValidation Class = iota + 1
	// ClassAPI is any other APIError.
	ClassAPI
	// ClassUnclassified is an error outside the taxonomy.
	ClassUnclassified
)

func (c Class) String() string {
	switch c {
	case ClassValidation:
		return "validation"
	case ClassAPI:
		return "api"
	case ClassUnclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// Classify maps err onto the taxonomy. The outermost APIError in the chain
// decides the kind, so a cause attached with WithCause never overrides the
// error that wraps it. That error is ClassValidation when it is a
// *ValidationError and ClassAPI otherwise. Anything else is wrapped into an
// InternalServer error whose details hold the original message.
//
// An APIError reporting a status outside 100-599 is returned with status 500,
// so formatters and the written response agree.
// Classify returns (0, nil) for a nil error.
func Classify(err error) (Class, APIError) {
	if err == nil {
		return 0, nil
	}

	var ae APIError
	if errors.As(err, &ae) && ae != nil {
		if ve, ok := ae.(*ValidationError); ok {
			if ve == nil {
				return ClassUnclassified, InternalServer(err.Error()).WithCause(err)
			}
			return ClassValidation, ve
		}
		if !validStatus(ae.HTTPStatus()) {
			ae = statusOverride{APIError: ae}
		}
		return ClassAPI, ae
	}

	return ClassUnclassified, InternalServer(err.Error()).WithCause(err)
}

// statusOverride reports 500 for an APIError whose own status is unusable.
type statusOverride struct {
	APIError
}

func (s statusOverride) HTTPStatus() int { return http.StatusInternalServerError }

func (s statusOverride) Unwrap() error { return s.APIError }

func (s statusOverride) RetryDelay() time.Duration {
	if ra, ok := s.APIError.(interface{ RetryDelay() time.Duration }); ok {
		return ra.RetryDelay()
	}
	return 0
}
