package ai

import (
	"context"
	"errors"
	"fmt"
	neturl "net/url"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
	"google.golang.org/genai"

	"github.com/uzbeknews/core/internal/config"
)

// provider is a single text-generation backend. wantJSON asks the
// backend for a structured response where the API supports it; the
// prompt carries the JSON instruction either way.
type provider interface {
	generate(ctx context.Context, prompt string, wantJSON bool) (string, error)
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "openaicompatible" || t == "openai" {
		return "openai-compatible"
	}
	return t
}

func newProvider(cfg config.AIConfig) (provider, error) {
	switch normalizeProviderType(cfg.Provider) {
	case "", "gemini":
		return newGeminiProvider(cfg)
	case "anthropic", "openai-compatible":
		return newLanguageModelProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown ai provider type %q", cfg.Provider)
	}
}

// geminiProvider talks to the Gemini API directly. It is the only
// backend with native structured output, requested via the response
// MIME type.
type geminiProvider struct {
	client *genai.Client
	model  string
}

func newGeminiProvider(cfg config.AIConfig) (*geminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	gcfg := &genai.GenerateContentConfig{}
	if wantJSON {
		gcfg.ResponseMIMEType = "application/json"
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), gcfg)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// languageModelProvider serves the anthropic and openai-compatible
// types through one language-model abstraction over the native SDK
// clients.
type languageModelProvider struct {
	model jetapi.LanguageModel
}

func newLanguageModelProvider(cfg config.AIConfig) (*languageModelProvider, error) {
	modelID := strings.TrimSpace(cfg.Model)
	endpoint := strings.TrimSpace(cfg.Endpoint)

	if normalizeProviderType(cfg.Provider) == "anthropic" {
		if modelID == "" {
			modelID = "claude-haiku-4-5-20251001"
		}
		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(cfg.APIKey),
			anthropicoption.WithMaxRetries(0),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}
		client := anthropicclient.NewClient(opts...)
		return &languageModelProvider{
			model: jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client)),
		}, nil
	}

	if modelID == "" {
		modelID = "gpt-4o-mini"
	}
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}
	client := openaiclient.NewClient(opts...)
	return &languageModelProvider{
		model: jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client)),
	}, nil
}

func (p *languageModelProvider) generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	_ = wantJSON // carried by the prompt for these backends

	resp, err := jetai.GenerateText(
		ctx,
		[]jetapi.Message{
			&jetapi.UserMessage{Content: jetapi.ContentFromText(prompt)},
		},
		jetai.WithModel(p.model),
		jetai.WithMaxOutputTokens(4096),
	)
	if err != nil {
		return "", err
	}
	return extractResponseText(resp)
}

func extractResponseText(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", errors.New("empty response from model")
	}

	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}

	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// normalizeOpenAIBaseURL ensures a /v1 suffix on custom endpoints so
// bare hosts and full base URLs both work.
func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return parsed.String()
}
