package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"expensey/internal/config"
	"expensey/internal/domain"
	"expensey/internal/parser"
	"expensey/internal/port"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Parser implements port.ExpenseParser using the OpenAI Chat Completions API.
// Requests are deterministic (temperature 0) and bounded to a fixed output
// length; a single attempt is made per call, no retries.
type Parser struct {
	apiKey    string
	model     string
	maxTokens int
	endpoint  string
	client    *http.Client
	recorder  port.UsageRecorder
	now       func() time.Time
}

// NewParser creates an OpenAI-based expense parser from config.
func NewParser(cfg *config.OpenAIConfig, recorder port.UsageRecorder) *Parser {
	return newParser(cfg, recorder, apiURL)
}

// NewParserWithEndpoint creates a parser pointing at a custom API endpoint (for testing).
func NewParserWithEndpoint(cfg *config.OpenAIConfig, recorder port.UsageRecorder, endpoint string) *Parser {
	return newParser(cfg, recorder, endpoint)
}

func newParser(cfg *config.OpenAIConfig, recorder port.UsageRecorder, endpoint string) *Parser {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 300
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Parser{
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: timeout},
		recorder:  recorder,
		now:       time.Now,
	}
}

func (p *Parser) Parse(ctx context.Context, text string) (*domain.ExtractionResult, error) {
	if p.apiKey == "" {
		return nil, parser.ErrRemoteUnavailable
	}

	reqBody := map[string]interface{}{
		"model":       p.model,
		"max_tokens":  p.maxTokens,
		"temperature": 0.0,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": parser.BuildExpensePrompt(p.now()),
			},
			{
				"role":    "user",
				"content": fmt.Sprintf("Parse this expense: %q", text),
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		// Timeouts land here and count as call failures.
		return nil, &parser.RemoteCallError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &parser.RemoteCallError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &parser.RemoteCallError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return p.parseResponse(respBody)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
	} `json:"usage"`
}

func (p *Parser) parseResponse(body []byte) (*domain.ExtractionResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &parser.FormatError{Raw: string(body), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &parser.FormatError{Raw: string(body), Err: fmt.Errorf("no assistant content returned")}
	}

	cleaned := parser.StripCodeFence(resp.Choices[0].Message.Content)

	var candidate json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &candidate); err != nil {
		return nil, &parser.FormatError{Raw: cleaned, Err: err}
	}

	result, err := parser.ValidateResult(candidate)
	if err != nil {
		return nil, &parser.SchemaError{Err: err}
	}

	if p.recorder != nil {
		p.recorder.Record(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}

	return result, nil
}
