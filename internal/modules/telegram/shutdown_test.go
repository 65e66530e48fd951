package telegram

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/uzbeknews/core/internal/models"
)

func configuredPublisher() *Publisher {
	return &Publisher{
		bot:     &tgbotapi.BotAPI{},
		channel: "@uzbeknews",
		baseURL: "https://uzbeknews.uz",
		log:     zap.NewNop(),
		jobs:    make(chan job, 16),
	}
}

func TestSendAfterCloseResolvesFalse(t *testing.T) {
	p := configuredPublisher()
	p.Close()

	a := &models.ArticleModel{
		TitleUz:   "Kech qolgan yuborish",
		ContentUz: "Server to'xtayotganda kelgan maqola.",
		Slug:      "kech-qolgan-yuborish",
		Category:  "Sport",
	}

	select {
	case ok := <-p.Send(a):
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send future never resolved")
	}
}

func TestCloseAfterCloseWithConfiguredBot(t *testing.T) {
	p := configuredPublisher()
	p.Close()
	p.Close()
}
