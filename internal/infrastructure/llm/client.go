package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/neighborhood-service/internal/config"
	"github.com/neighborhood-service/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewClient создает клиент OpenAI-совместимого chat-completions API
func NewClient(cfg *config.LLMConfig, logger *zap.Logger) repository.LLMRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		logger:  logger,
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *client) Name() string {
	return c.model
}

// Complete отправляет prompt и возвращает текст ответа модели.
// Temperature 0 - результат должен быть максимально детерминированным.
func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature:    0,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("Calling LLM API",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("LLM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return "", fmt.Errorf("llm API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("llm API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("llm API returned empty choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
