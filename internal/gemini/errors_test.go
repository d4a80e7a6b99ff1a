package gemini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_StructuredErrors(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &APIError{Kind: KindForbidden, Status: 403, Message: "blocked"})
	assert.Equal(t, KindForbidden, Classify(err))
}

func TestClassify_SubstringFallback(t *testing.T) {
	cases := []struct {
		msg  string
		kind Kind
	}{
		{"API request failed: 429 - quota exceeded", KindRateLimited},
		{"API request failed: 401 - bad key", KindAuth},
		{"API request failed: 403 - blocked", KindForbidden},
		{"dial tcp: connection refused", KindNetwork},
		{"context deadline exceeded: timeout", KindNetwork},
		{"API key is not configured", KindConfig},
		{"something else entirely", KindTransient},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, Classify(errors.New(tc.msg)), "message %q", tc.msg)
	}
}
