package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client is a minimal REST client for the generative AI text/image API.
// Requests carry a bounded prompt plus serialized context; responses are a
// text blob or an image payload.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

var ErrUnavailable = errors.New("generative service unavailable")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultTimeout = 60 * time.Second
)

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends a text prompt and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.generate(ctx, model, []part{{Text: prompt}})
	if err != nil {
		return "", err
	}
	for _, p := range resp.Parts {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	return "", ErrUnavailable
}

// ImageResult is an image payload returned by an image-editing call.
type ImageResult struct {
	MimeType string
	Data     []byte
}

// EditImage sends an image plus an instruction and returns the edited image.
func (c *Client) EditImage(ctx context.Context, model, instruction string, image []byte, mimeType string) (*ImageResult, error) {
	parts := []part{
		{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
		{Text: instruction},
	}
	resp, err := c.generate(ctx, model, parts)
	if err != nil {
		return nil, err
	}
	for _, p := range resp.Parts {
		if p.InlineData != nil {
			raw, decErr := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if decErr != nil {
				return nil, ErrUnavailable
			}
			return &ImageResult{MimeType: p.InlineData.MimeType, Data: raw}, nil
		}
	}
	return nil, ErrUnavailable
}

func (c *Client) generate(ctx context.Context, model string, parts []part) (*content, error) {
	if !c.Configured() {
		return nil, ErrUnavailable
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: parts}}})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	var parsed generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if httpResp.StatusCode != http.StatusOK || parsed.Error != nil {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, httpResp.StatusCode)
	}
	if len(parsed.Candidates) == 0 {
		return nil, ErrUnavailable
	}
	return &parsed.Candidates[0].Content, nil
}
