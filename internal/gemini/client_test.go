package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{
		APIKey:  "test-key-aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Model:   "gemini-2.0-flash-exp",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{Model: "gemini-2.0-flash-exp"})
	require.Error(t, err)
	assert.Equal(t, KindConfig, Classify(err))
}

func TestGenerateContent_Success(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Tell me about yourself.  "}]}}]}`))
	})

	got, err := c.GenerateContent(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, "  Tell me about yourself.  ", got, "client returns text untrimmed")

	gc, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.8, gc["temperature"], 0.001)
	assert.EqualValues(t, 40, gc["topK"])
	assert.InDelta(t, 0.95, gc["topP"], 0.001)
	assert.EqualValues(t, 1024, gc["maxOutputTokens"])

	ss, ok := gotBody["safetySettings"].([]any)
	require.True(t, ok)
	assert.Len(t, ss, 2)
}

func TestGenerateContent_ErrorStatusKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindForbidden},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindTransient},
	}

	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
		})

		_, err := c.GenerateContent(context.Background(), "p")
		require.Error(t, err)
		assert.Equal(t, tc.kind, Classify(err), "status %d", tc.status)
	}
}

func TestGenerateContent_MissingCandidatesIsInvalidResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.GenerateContent(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, KindInvalidResponse, Classify(err))
}

func TestGenerateContent_NetworkFailure(t *testing.T) {
	c, err := NewClient(Config{
		APIKey:  "test-key-aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Model:   "gemini-2.0-flash-exp",
		BaseURL: "http://127.0.0.1:1",
	})
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, Classify(err))
}
