package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a structured classification of a generation failure.
type Kind int

const (
	KindTransient Kind = iota
	KindRateLimited
	KindAuth
	KindForbidden
	KindNetwork
	KindInvalidResponse
	KindConfig
)

type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gemini: %s (status %d)", e.Message, e.Status)
	}
	return "gemini: " + e.Message
}

func kindForStatus(status int) Kind {
	switch status {
	case 401:
		return KindAuth
	case 403:
		return KindForbidden
	case 429:
		return KindRateLimited
	default:
		return KindTransient
	}
}

// Classify maps any error from the generation path to a Kind. Structured
// APIErrors carry their kind; everything else falls back to inspecting
// the message for known substrings, in priority order, defaulting to
// transient.
func Classify(err error) Kind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"):
		return KindRateLimited
	case strings.Contains(msg, "401"):
		return KindAuth
	case strings.Contains(msg, "403"):
		return KindForbidden
	case strings.Contains(msg, "network"), strings.Contains(msg, "connection"),
		strings.Contains(msg, "timeout"), strings.Contains(msg, "no such host"):
		return KindNetwork
	case strings.Contains(msg, "not configured"):
		return KindConfig
	default:
		return KindTransient
	}
}
