// internal/dietchart/request.go
package dietchart

import (
	"errors"

	"mcp-ayur-diet/internal/models"
)

const DefaultDuration = 7

var (
	ErrExternalService      = errors.New("external service failure")
	ErrUnstructuredResponse = errors.New("unstructured model response")
)

// Request carries everything needed to produce a chart for one patient.
type Request struct {
	Patient      models.Patient `json:"patient"`
	Preferences  []string       `json:"preferences"`
	Restrictions []string       `json:"restrictions"`
	Goals        []string       `json:"goals"`
	Duration     int            `json:"duration"`
}

func (r Request) withDefaults() Request {
	if r.Duration <= 0 {
		r.Duration = DefaultDuration
	}
	return r
}

// restrictions never returns nil so charts serialize an empty list.
func (r Request) restrictions() []string {
	return append([]string{}, r.Restrictions...)
}
