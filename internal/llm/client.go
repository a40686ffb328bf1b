package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ErrAPIKeyNotSet is returned before any network I/O when the Gemini key is missing.
var ErrAPIKeyNotSet = errors.New("gemini api key is not set")

// Replies are trimmed so the mobile client gets short, readable answers.
const maxReplySentences = 4

const noResponsePlaceholder = "[No response]"

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiKey, apiURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Ask sends one generateContent request and returns the sanitized reply text.
// A non-empty systemPrompt is prepended with a labeled user-question section.
// No retries; the caller sees the first failure.
func (c *Client) Ask(message, systemPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyNotSet
	}

	text := message
	if systemPrompt != "" {
		text = systemPrompt + "\n\nPertanyaan user: " + message
	}

	reqBody, err := json.Marshal(GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: text}}}},
	})
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Post(c.apiURL+"?key="+c.apiKey, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.New("gemini request failed with status: " + resp.Status)
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", err
	}

	return Sanitize(extractText(genResp), maxReplySentences), nil
}

// extractText walks candidates[0].content.parts[0].text and degrades to a
// placeholder instead of failing when the path is absent.
func extractText(resp GenerateResponse) string {
	if len(resp.Candidates) == 0 {
		return noResponsePlaceholder
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return noResponsePlaceholder
	}
	return parts[0].Text
}
