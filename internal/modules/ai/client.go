// Package ai wraps the generative-text provider used for article
// drafting, channel posts, translation and summaries.
//
// Provider failures never escape this package as crashes: structured
// operations return typed errors the caller absorbs, and Summarize
// degrades to a deterministic prefix of its input.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/uzbeknews/core/internal/config"
	"go.uber.org/zap"
)

// ErrUnavailable marks operations short-circuited because the provider
// was never configured or failed to initialize.
var ErrUnavailable = errors.New("ai provider not available")

// Client talks to one configured provider. Availability is decided once
// at construction; every operation checks it first so a disabled client
// never attempts a network call.
type Client struct {
	cfg       config.AIConfig
	log       *zap.Logger
	provider  provider
	available bool
}

// New builds a Client for the configured provider type. A missing API
// key or failed client init produces a working but disabled Client.
func New(cfg config.AIConfig, log *zap.Logger) *Client {
	c := &Client{cfg: cfg, log: log}

	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("ai api key not set, generation disabled")
		return c
	}

	p, err := newProvider(cfg)
	if err != nil {
		log.Warn("ai provider init failed, generation disabled", zap.Error(err))
		return c
	}
	c.provider = p
	c.available = true
	return c
}

// Available reports whether the provider can be called at all.
func (c *Client) Available() bool { return c.available }

// GenerateArticle produces a structured bilingual draft for a topic.
func (c *Client) GenerateArticle(ctx context.Context, topic, category, region string) (*Draft, error) {
	if !c.available {
		return nil, ErrUnavailable
	}

	prompt := fmt.Sprintf(newsPromptTemplate, topic, category, region)
	raw, err := c.provider.generate(ctx, prompt, true)
	if err != nil {
		c.log.Error("article generation failed", zap.String("topic", topic), zap.Error(err))
		return nil, fmt.Errorf("generate article: %w", err)
	}

	var draft Draft
	if err := unmarshalStrict(raw, &draft); err != nil {
		c.log.Error("article generation returned malformed JSON", zap.Error(err))
		return nil, fmt.Errorf("generate article: %w", err)
	}
	if strings.TrimSpace(draft.TitleUz) == "" || strings.TrimSpace(draft.ContentUz) == "" {
		return nil, errors.New("generate article: draft missing required fields")
	}
	return &draft, nil
}

// GenerateChannelPost produces short-form Telegram text for an article.
func (c *Client) GenerateChannelPost(ctx context.Context, title, preview string) (string, error) {
	if !c.available {
		return "", ErrUnavailable
	}

	preview = truncateRunes(preview, 200)
	raw, err := c.provider.generate(ctx, fmt.Sprintf(channelPostPromptTemplate, title, preview), false)
	if err != nil {
		c.log.Error("channel post generation failed", zap.Error(err))
		return "", fmt.Errorf("generate channel post: %w", err)
	}
	return strings.TrimSpace(raw), nil
}

// Translate renders Uzbek article content into Russian.
func (c *Client) Translate(ctx context.Context, titleUz, contentUz string) (*Translation, error) {
	if !c.available {
		return nil, ErrUnavailable
	}

	raw, err := c.provider.generate(ctx, fmt.Sprintf(translationPromptTemplate, titleUz, contentUz), true)
	if err != nil {
		c.log.Error("translation failed", zap.Error(err))
		return nil, fmt.Errorf("translate: %w", err)
	}

	var tr Translation
	if err := unmarshalStrict(raw, &tr); err != nil {
		c.log.Error("translation returned malformed JSON", zap.Error(err))
		return nil, fmt.Errorf("translate: %w", err)
	}
	return &tr, nil
}

// Summarize produces a short preview of content. It never fails: when
// the provider is unavailable or errors, the deterministic fallback is
// the first 200 runes of the input, reported with degraded = true.
func (c *Client) Summarize(ctx context.Context, content, lang string) (summary string, degraded bool) {
	fallback := truncateRunes(content, summaryFallbackRunes)
	if !c.available {
		return fallback, true
	}

	tpl := summaryPromptUz
	if lang != "uz" {
		tpl = summaryPromptEn
	}
	raw, err := c.provider.generate(ctx, fmt.Sprintf(tpl, truncateRunes(content, 500)), false)
	if err != nil || strings.TrimSpace(raw) == "" {
		c.log.Warn("summarization failed, returning prefix fallback", zap.Error(err))
		return fallback, true
	}
	return strings.TrimSpace(raw), false
}

// unmarshalStrict parses a structured provider response, tolerating
// only a markdown code fence around the JSON body. Any other shape is
// treated the same as a transport failure.
func unmarshalStrict(raw string, v interface{}) error {
	return json.Unmarshal([]byte(stripCodeFence(raw)), v)
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
