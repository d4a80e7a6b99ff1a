package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Generation parameters are fixed for the interviewer use case.
const (
	temperature     = 0.8
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey string
	model  string
	base   string
	http   *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &APIError{Kind: KindConfig, Message: "API key is not configured"}
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		base:   base,
		http:   &http.Client{Timeout: timeout},
	}, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends one prompt to the generateContent endpoint and
// returns the first candidate's text. Any deviation from the expected
// response shape is a KindInvalidResponse error.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
		SafetySettings: []safetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.base, c.model, c.apiKey)
	b, _ := json.Marshal(reqBody)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		return "", &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var eb apiErrorBody
		_ = json.Unmarshal(bodyBytes, &eb)
		msg := eb.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", &APIError{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("API request failed: %d - %s", resp.StatusCode, msg),
		}
	}

	var gr generateResponse
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return "", &APIError{Kind: KindInvalidResponse, Message: "invalid API response structure"}
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", &APIError{Kind: KindInvalidResponse, Message: "invalid API response structure"}
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}
