package caption

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Prompt is the fixed instruction sent with every image.
const Prompt = "Create a descriptive filename for this image. " +
	"Return only the filename words, no quotes. " +
	"Use 6-12 words. Use underscores instead of spaces. " +
	"Only letters, numbers, underscores. No trailing underscores."

// Client calls the captioning service once per image. No request timeout is
// imposed here; callers bound individual calls through the context.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
}

// NewClient returns a Client for the given service. baseURL is the API root
// (e.g. "https://api.openai.com/v1"); trailing slashes are stripped.
func NewClient(apiKey, model, baseURL string, maxTokens int) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxTokens:  maxTokens,
		httpClient: &http.Client{},
	}
}

// --- Request wire types ---

type contentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type inputMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type captionRequest struct {
	Model           string         `json:"model"`
	Input           []inputMessage `json:"input"`
	MaxOutputTokens int            `json:"max_output_tokens"`
}

// Caption sends one image to the service and returns the trimmed caption
// text. Each request carries a fresh X-Request-ID for service-side trace
// correlation. Service errors surface the error.message field when the
// response carries one.
func (c *Client) Caption(ctx context.Context, filename string, data []byte) (string, error) {
	reqBody := captionRequest{
		Model: c.model,
		Input: []inputMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "input_text", Text: Prompt},
				{Type: "input_image", ImageURL: BuildDataURL(filename, data)},
			},
		}},
		MaxOutputTokens: c.maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := gjson.GetBytes(body, "error.message").String(); msg != "" {
			return "", fmt.Errorf("service error (HTTP %d): %s", resp.StatusCode, msg)
		}
		return "", fmt.Errorf("service error (HTTP %d)", resp.StatusCode)
	}

	text, err := ExtractText(body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
