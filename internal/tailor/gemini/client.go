// Package gemini implements tailor.Client on the Google GenAI SDK.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the GenAI client for resume tailoring.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a Client configured for the Gemini API backend.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{client: client, modelName: model}, nil
}

// Tailor sends the rewrite prompt to Gemini and decodes the JSON response.
func (c *Client) Tailor(ctx context.Context, input tailor.Input) (tailor.Result, error) {
	if c == nil || c.client == nil {
		return tailor.Result{}, errors.New("gemini client is not initialized")
	}

	prompt := tailor.BuildPrompt(input)
	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return tailor.Result{}, fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				builder.WriteString(text)
			}
		}
	}

	payload := tailor.ExtractJSONObject(builder.String())
	if payload == "" || !json.Valid([]byte(payload)) {
		return tailor.Result{}, fmt.Errorf("invalid JSON from gemini")
	}

	var result tailor.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return tailor.Result{}, fmt.Errorf("gemini result parse: %w", err)
	}

	result.FinalSkills = tailor.MergeSkills(input.CurrentSkills, result.SkillsToAdd, input.ApprovedKeywords)
	result.AddedCount = len(result.FinalSkills) - len(tailor.MergeSkills(input.CurrentSkills, nil, nil))
	return result, nil
}

var _ tailor.Client = (*Client)(nil)
