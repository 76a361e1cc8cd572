package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/leancoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// FinishReasonLength means the model ran out of tokens mid-output. For
// JSON generation that is always a truncated, unusable response.
const (
	FinishReasonStop   = "stop"
	FinishReasonLength = "length"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Choices []choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

type CompletionResult struct {
	Content      string
	FinishReason string
	Usage        Usage
}

// Client talks to a chat-completions style model API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

func (c *Client) Complete(ctx context.Context, completionReq CompletionRequest) (res *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "llm.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if c.apiKey == "" {
		return nil, fmt.Errorf("llm api key not configured")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: completionReq.System},
			{Role: "user", Content: completionReq.User},
		},
		MaxTokens:   completionReq.MaxTokens,
		Temperature: completionReq.Temperature,
	}
	if completionReq.JSONMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model api status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("unmarshal completion response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	top := chatResp.Choices[0]
	log.Debugf(
		"llm completion [%s] done, finish reason [%s], tokens used: %d",
		chatResp.ID, top.FinishReason, chatResp.Usage.TotalTokens,
	)

	return &CompletionResult{
		Content:      top.Message.Content,
		FinishReason: top.FinishReason,
		Usage:        chatResp.Usage,
	}, nil
}
