// Package latexocr transcribes rendered formula images back into LaTeX
// source using the Gemini generateContent REST api. Transcription is a
// best-effort enrichment: callers are expected to tolerate failures.
package latexocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"sdamgia-go/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const endpointTemplate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

const prompt = "Transcribe the formula on this image into LaTeX source. " +
	"Respond with the LaTeX only, no surrounding text and no code fences."

const defaultModel = "gemini-1.5-flash"

type Client struct {
	http   *resty.Client
	apiKey string
	model  string
}

type ClientOptions struct {
	ApiKey string
	// Model defaults to a small vision-capable one.
	Model string
	// Timeout defaults to 30 seconds.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetTimeout(timeout)
	telemetry.InstrumentResty(client, "latexocr/http")

	return &Client{
		http:   client,
		apiKey: opts.ApiKey,
		model:  model,
	}
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Recognize sends one formula image to the model and returns its
// transcription wrapped in $...$.
func (c *Client) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("latexocr: api key is not configured")
	}

	body := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
					{"inline_data": map[string]string{
						"mime_type": mimeType,
						"data":      base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature": 0,
		},
	}

	var payload generateResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&payload).
		Post(fmt.Sprintf(endpointTemplate, c.model))
	if err != nil {
		return "", fmt.Errorf("latexocr: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return "", fmt.Errorf("latexocr: unexpected status %d", res.StatusCode())
	}

	text := firstCandidateText(payload)
	if text == "" {
		return "", fmt.Errorf("latexocr: model response is empty")
	}
	return "$" + text + "$", nil
}

func firstCandidateText(payload generateResponse) string {
	for _, candidate := range payload.Candidates {
		for _, part := range candidate.Content.Parts {
			text := cleanTranscription(part.Text)
			if text != "" {
				return text
			}
		}
	}
	return ""
}

// cleanTranscription strips the code fences and delimiters the model
// sometimes wraps its answer in despite the prompt.
func cleanTranscription(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```latex")
	text = strings.TrimPrefix(text, "```tex")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "$")
	text = strings.TrimSuffix(text, "$")
	return strings.TrimSpace(text)
}
