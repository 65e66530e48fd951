package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uzbeknews/core/internal/config"
)

// cannedProvider replays a scripted response.
type cannedProvider struct {
	response string
	err      error
	prompts  []string
}

func (p *cannedProvider) generate(_ context.Context, prompt string, _ bool) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.response, p.err
}

func testClient(p provider) *Client {
	return &Client{log: zap.NewNop(), provider: p, available: p != nil}
}

const draftJSON = `{
	"title_uz": "Toshkentda texnopark ochildi",
	"title_ru": "В Ташкенте открылся технопарк",
	"content_uz": "Poytaxtda yangi texnopark ishga tushdi.",
	"content_ru": "В столице запущен новый технопарк.",
	"meta_title": "Texnopark ochilishi",
	"meta_description": "Toshkentdagi yangi texnopark haqida",
	"keywords": "texnopark, toshkent"
}`

func TestNewWithoutKeyIsDisabled(t *testing.T) {
	c := New(config.AIConfig{Provider: "gemini"}, zap.NewNop())
	assert.False(t, c.Available())

	_, err := c.GenerateArticle(context.Background(), "mavzu", "Sport", "")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Translate(context.Background(), "sarlavha", "matn")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateArticleParsesDraft(t *testing.T) {
	c := testClient(&cannedProvider{response: draftJSON})

	draft, err := c.GenerateArticle(context.Background(), "texnopark", "Texnologiya", "Toshkent")
	require.NoError(t, err)

	assert.Equal(t, "Toshkentda texnopark ochildi", draft.TitleUz)
	assert.Equal(t, "В Ташкенте открылся технопарк", draft.TitleRu)
	assert.Equal(t, "texnopark, toshkent", draft.Keywords)
}

func TestGenerateArticleToleratesCodeFence(t *testing.T) {
	c := testClient(&cannedProvider{response: "```json\n" + draftJSON + "\n```"})

	draft, err := c.GenerateArticle(context.Background(), "texnopark", "Texnologiya", "")
	require.NoError(t, err)
	assert.Equal(t, "Toshkentda texnopark ochildi", draft.TitleUz)
}

func TestGenerateArticleRejectsMalformedJSON(t *testing.T) {
	c := testClient(&cannedProvider{response: "bu JSON emas"})

	_, err := c.GenerateArticle(context.Background(), "mavzu", "Sport", "")
	assert.Error(t, err)
}

func TestGenerateArticleRejectsEmptyDraft(t *testing.T) {
	c := testClient(&cannedProvider{response: `{"title_uz": "", "content_uz": ""}`})

	_, err := c.GenerateArticle(context.Background(), "mavzu", "Sport", "")
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	c := testClient(&cannedProvider{
		response: `{"title_ru": "Заголовок", "content_ru": "Текст"}`,
	})

	tr, err := c.Translate(context.Background(), "Sarlavha", "Matn")
	require.NoError(t, err)
	assert.Equal(t, "Заголовок", tr.TitleRu)
	assert.Equal(t, "Текст", tr.ContentRu)
}

func TestSummarizeFallbackWhenUnavailable(t *testing.T) {
	c := New(config.AIConfig{}, zap.NewNop())

	content := strings.Repeat("a", 300)
	summary, degraded := c.Summarize(context.Background(), content, "uz")

	assert.True(t, degraded)
	assert.Equal(t, strings.Repeat("a", 200), summary)
}

func TestSummarizeFallbackOnProviderError(t *testing.T) {
	c := testClient(&cannedProvider{err: errors.New("quota exceeded")})

	content := strings.Repeat("b", 250)
	summary, degraded := c.Summarize(context.Background(), content, "uz")

	assert.True(t, degraded)
	assert.Equal(t, strings.Repeat("b", 200), summary)
}

func TestSummarizeUsesProviderText(t *testing.T) {
	c := testClient(&cannedProvider{response: "Qisqa xulosa."})

	summary, degraded := c.Summarize(context.Background(), "uzun matn", "uz")

	assert.False(t, degraded)
	assert.Equal(t, "Qisqa xulosa.", summary)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
