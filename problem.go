package errhound

import (
	"context"
	"net/http"
	"strings"
)

// ContentTypeProblemJSON is the RFC 9457 media type.
const ContentTypeProblemJSON = "application/problem+json"

// ProblemFormatter renders errors as RFC 9457 Problem Details.
type ProblemFormatter struct {
	// BaseURL is prepended to the code slug to build the problem type URI,
	// e.g. "https://api.example.com/problems" + "/not-found".
	// When empty the type is "about:blank".
	BaseURL string
}

// Problem is the payload produced by ProblemFormatter.
type Problem struct {
	Type    string       `json:"type"`
	Title   string       `json:"title"`
	Status  int          `json:"status"`
	Detail  string       `json:"detail,omitempty"`
	Code    Code         `json:"code"`
	Errors  *FieldErrors `json:"errors,omitempty"`
	Details any          `json:"details,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

func (f ProblemFormatter) Format(ctx context.Context, err APIError) any {
	status := err.HTTPStatus()
	p := Problem{
		Type:    f.typeURI(err.ErrorCode()),
		Title:   http.StatusText(status),
		Status:  status,
		Detail:  err.ErrorMessage(),
		Code:    err.ErrorCode(),
		TraceID: TraceIDFromContext(ctx),
	}
	if ve, ok := err.(*ValidationError); ok && ve != nil {
		fields := ve.FieldErrors()
		p.Errors = &fields
	} else {
		p.Details = err.ErrorDetails()
	}
	return p
}

// ContentType implements ContentTyper.
func (ProblemFormatter) ContentType() string { return ContentTypeProblemJSON }

func (f ProblemFormatter) typeURI(code Code) string {
	if f.BaseURL == "" {
		return "about:blank"
	}
	slug := strings.ToLower(strings.ReplaceAll(string(code), "_", "-"))
	return strings.TrimRight(f.BaseURL, "/") + "/" + slug
}
