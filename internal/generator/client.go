package generator

import (
	"context"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/rs/zerolog"

	"github.com/trivia-quest/backend/internal/config"
	"github.com/trivia-quest/backend/internal/models"
)

// LLMClient is the interface every generation backend satisfies. One call
// produces one completion; implementations must not retry.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, params Params) (*LLMResponse, error)
}

// Params are the fixed sampling settings sent with every prompt.
type Params struct {
	MaxTokens   int
	Temperature float64
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Generator wraps an LLMClient and turns its output into trivia questions.
type Generator struct {
	llm    LLMClient
	model  string
	params Params
}

func New(llm LLMClient, model string, params Params) *Generator {
	return &Generator{llm: llm, model: model, params: params}
}

// NewGenerator builds the backend selected by cfg.Backend.
func NewGenerator(ctx context.Context, cfg config.GeneratorConfig, log zerolog.Logger) (*Generator, error) {
	params := Params{MaxTokens: cfg.MaxTokens, Temperature: cfg.Temperature}

	var (
		llm   LLMClient
		model string
		err   error
	)
	switch cfg.Backend {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic generator")
		}
		model = cfg.AnthropicModel
		llm = NewAPIClient(cfg.AnthropicAPIKey, model)
	case "openai":
		model = cfg.OpenAIModel
		llm, err = NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, model)
	case "gemini":
		model = cfg.GeminiModel
		llm, err = NewGeminiClient(ctx, cfg.GeminiAPIKey, model)
	case "cli":
		model = cfg.LocalModelCmd
		llm, err = NewCLIClient(cfg.LocalModelCmd)
	case "mock":
		model = "mock"
		llm = NewMockClient()
	default:
		return nil, fmt.Errorf("unknown generator backend: %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s generator: %w", cfg.Backend, err)
	}

	log.Info().
		Str("backend", cfg.Backend).
		Str("model", model).
		Int("max_tokens", params.MaxTokens).
		Float64("temperature", params.Temperature).
		Msg("Generator ready")

	return New(llm, model, params), nil
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateQuestion asks the backend for one question at the given level and
// parses the reply. Transport failures come back as *ServiceError and
// unparseable output as *ParseError; the raw response is returned with the
// latter for logging.
func (g *Generator) GenerateQuestion(ctx context.Context, level models.Level) (models.Question, *LLMResponse, error) {
	resp, err := g.llm.Generate(ctx, BuildPrompt(level), g.params)
	if err != nil {
		return models.Question{}, nil, &ServiceError{Model: g.model, Err: err}
	}

	q, ok := ParseQuestion(resp.Content)
	if !ok {
		return models.Question{}, resp, &ParseError{Content: resp.Content}
	}
	return q, resp, nil
}

// ── APIClient: Anthropic SDK ───────────────────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

// NewAPIClient builds an Anthropic client with SDK retries turned off.
// Extra options are appended, e.g. option.WithBaseURL in tests.
func NewAPIClient(apiKey, model string, opts ...option.RequestOption) *APIClient {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := anthropic.NewClient(opts...)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, prompt string, params Params) (*LLMResponse, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(params.MaxTokens),
		Temperature: param.NewOpt(params.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

// ── MockClient: Local Development ──────────────────────────

const mockCompletion = "Question: What is the capital of France? Answer: Paris"

// MockClient returns canned completions in FIFO order, then repeats a
// default well-formed one. It records every prompt it receives.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	prompts   []string
}

type MockResponse struct {
	Content string
	Err     error
}

func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

func (m *MockClient) Generate(ctx context.Context, prompt string, params Params) (*LLMResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, prompt)

	content := mockCompletion
	if len(m.responses) > 0 {
		next := m.responses[0]
		m.responses = m.responses[1:]
		if next.Err != nil {
			return nil, next.Err
		}
		content = next.Content
	}

	return &LLMResponse{Content: content}, nil
}

// Prompts returns the prompts received so far.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
