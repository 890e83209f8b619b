// Package groq implements tailor.Client against the Groq OpenAI-compatible
// Chat Completions API.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
)

const (
	defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel  = "llama-3.3-70b-versatile"

	temperature = 0.4
	maxTokens   = 800
)

// Client implements tailor.Client using Groq Chat Completions.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new Groq client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GROQ_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Tailor sends the rewrite prompt and decodes the JSON response. When the
// first completion is not valid JSON, one repair round-trip is attempted.
func (c *Client) Tailor(ctx context.Context, input tailor.Input) (tailor.Result, error) {
	prompt := tailor.BuildPrompt(input)

	raw, err := c.completeOnce(ctx, []chatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return tailor.Result{}, err
	}

	payload := tailor.ExtractJSONObject(raw)
	if payload == "" || !json.Valid([]byte(payload)) {
		fixMessages := []chatMessage{
			{Role: "system", Content: "You repair malformed JSON. Return ONLY the corrected JSON object, nothing else."},
			{Role: "user", Content: raw},
		}
		raw, err = c.completeOnce(ctx, fixMessages)
		if err != nil {
			return tailor.Result{}, err
		}
		payload = tailor.ExtractJSONObject(raw)
		if payload == "" || !json.Valid([]byte(payload)) {
			return tailor.Result{}, fmt.Errorf("invalid JSON from groq")
		}
	}

	var result tailor.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return tailor.Result{}, fmt.Errorf("groq result parse: %w", err)
	}

	original := input.CurrentSkills
	result.FinalSkills = tailor.MergeSkills(original, result.SkillsToAdd, input.ApprovedKeywords)
	result.AddedCount = len(result.FinalSkills) - len(tailor.MergeSkills(original, nil, nil))
	return result, nil
}

func (c *Client) completeOnce(ctx context.Context, messages []chatMessage) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("groq request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("groq response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("groq error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("groq response empty content")
	}
	logUsage(c.model, parsed.Usage)
	return content, nil
}

func logUsage(model string, usage *struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}) {
	if usage == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}

var _ tailor.Client = (*Client)(nil)
