// Package suggestion generates AI workout plans through the OpenAI
// chat-completions API.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/gymtracker-app/backend/internal/config"
)

// chatMessage is one message in a chat-completions conversation
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client calls the OpenAI chat-completions endpoint
type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates an OpenAI client from configuration. The configured
// timeout bounds the whole request so a stalled upstream surfaces to the
// caller instead of hanging the handler.
func NewClient(cfg config.OpenAIConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:  httpClient,
		model: cfg.Model,
	}
}

// Complete sends a system/user prompt pair and returns the assistant's reply
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var result chatResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userPrompt},
			},
		}).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion request: upstream status %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat completion request: empty choices")
	}

	return result.Choices[0].Message.Content, nil
}

var jsonFence = regexp.MustCompile("```json\\s*|```")

// extractJSON strips markdown code fences from a model reply and parses
// the remaining text as a JSON array of planned exercises.
func extractJSON(content string) ([]PlanExercise, error) {
	clean := strings.TrimSpace(jsonFence.ReplaceAllString(content, ""))

	var plan []PlanExercise
	if err := json.Unmarshal([]byte(clean), &plan); err != nil {
		return nil, fmt.Errorf("parse workout plan: %w", err)
	}
	return plan, nil
}
