// Package telegram delivers channel posts through the Telegram bot API.
package telegram

import (
	"context"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/uzbeknews/core/internal/config"
	"github.com/uzbeknews/core/internal/models"
	"go.uber.org/zap"
)

// Publisher sends formatted article posts to a configured channel.
//
// Delivery always happens on a single dedicated worker goroutine that
// owns the bot transport; callers never drive the network call on their
// own goroutine. Send hands a job to the worker and returns a result
// future, SendBlocking waits on that future. This is the bridge between
// the blocking request-handling context and the non-blocking delivery
// primitive.
type Publisher struct {
	bot     *tgbotapi.BotAPI
	channel string
	baseURL string
	log     *zap.Logger

	mu        sync.Mutex
	closed    bool
	jobs      chan job
	closeOnce sync.Once
}

type job struct {
	msg    tgbotapi.Chattable
	slug   string
	result chan bool
}

// New builds a Publisher. Missing credentials are a normal state: the
// publisher constructs fine, reports Enabled() == false and resolves
// every send to false without touching the network.
func New(cfg config.TelegramConfig, baseURL string, log *zap.Logger) *Publisher {
	p := &Publisher{
		channel: cfg.ChannelID,
		baseURL: baseURL,
		log:     log,
		jobs:    make(chan job, 16),
	}

	if cfg.BotToken != "" && cfg.ChannelID != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			log.Warn("telegram bot init failed, publisher disabled", zap.Error(err))
		} else {
			p.bot = bot
		}
	} else {
		log.Warn("telegram bot token or channel id not set, publisher disabled")
	}

	go p.worker()
	return p
}

// Enabled reports whether the publisher holds working credentials.
func (p *Publisher) Enabled() bool {
	return p.bot != nil && p.channel != ""
}

// Send is the asynchronous primitive: it enqueues delivery onto the
// worker and returns a future carrying the outcome. An unconfigured or
// already-closed publisher resolves the future to false immediately.
func (p *Publisher) Send(a *models.ArticleModel) <-chan bool {
	result := make(chan bool, 1)
	if !p.Enabled() {
		result <- false
		return result
	}

	text := FormatMessage(a, p.baseURL, time.Now())
	msg := p.newChannelMessage(text)

	// Enqueue under the lock so a concurrent Close cannot pull the
	// channel out from under us.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.log.Warn("publisher closed, dropping channel post", zap.String("slug", a.Slug))
		result <- false
		return result
	}
	p.jobs <- job{msg: msg, slug: a.Slug, result: result}
	return result
}

// SendBlocking adapts Send for synchronous callers: it delegates to the
// worker and waits for the outcome, bounded by ctx. A timed-out wait is
// reported as a failed delivery.
func (p *Publisher) SendBlocking(ctx context.Context, a *models.ArticleModel) bool {
	select {
	case ok := <-p.Send(a):
		return ok
	case <-ctx.Done():
		p.log.Warn("channel post wait cancelled", zap.String("slug", a.Slug), zap.Error(ctx.Err()))
		return false
	}
}

// Close stops the delivery worker. In-flight jobs finish first; sends
// arriving after Close resolve to false instead of panicking.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.jobs)
	})
}

func (p *Publisher) worker() {
	for j := range p.jobs {
		sent, err := p.bot.Send(j.msg)
		if err != nil {
			p.log.Error("telegram send failed", zap.String("slug", j.slug), zap.Error(err))
			j.result <- false
			continue
		}
		p.log.Info("message sent to telegram",
			zap.String("slug", j.slug), zap.Int("message_id", sent.MessageID))
		j.result <- true
	}
}

func (p *Publisher) newChannelMessage(text string) tgbotapi.Chattable {
	var msg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(p.channel, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(p.channel, text)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// ChannelInfo describes the configured channel for the admin panel.
type ChannelInfo struct {
	Title       string `json:"title"`
	Username    string `json:"username"`
	MemberCount int    `json:"member_count"`
}

// GetChannelInfo fetches channel metadata. Returns nil when the
// publisher is unconfigured or the lookup fails.
func (p *Publisher) GetChannelInfo(ctx context.Context) *ChannelInfo {
	if !p.Enabled() {
		return nil
	}

	cc := p.chatConfig()
	chat, err := p.bot.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: cc})
	if err != nil {
		p.log.Error("failed to fetch channel info", zap.Error(err))
		return nil
	}
	count, err := p.bot.GetChatMembersCount(tgbotapi.ChatMemberCountConfig{ChatConfig: cc})
	if err != nil {
		p.log.Warn("failed to fetch channel member count", zap.Error(err))
	}
	return &ChannelInfo{Title: chat.Title, Username: chat.UserName, MemberCount: count}
}

func (p *Publisher) chatConfig() tgbotapi.ChatConfig {
	if chatID, err := strconv.ParseInt(p.channel, 10, 64); err == nil {
		return tgbotapi.ChatConfig{ChatID: chatID}
	}
	return tgbotapi.ChatConfig{SuperGroupUsername: p.channel}
}
