// Package publish coordinates the article write with the best-effort
// channel post. The store write always commits first; a failed channel
// delivery never undoes or fails the save.
package publish

import (
	"context"
	"fmt"
	"strings"

	"github.com/uzbeknews/core/internal/models"
	"github.com/uzbeknews/core/internal/modules/article"
	"go.uber.org/zap"
)

// Outcome describes what happened on the channel-publish step of a
// submission. It is reported alongside the saved article so callers can
// always tell "saved, channel post failed" apart from "save failed".
type Outcome string

const (
	// OutcomeSkipped: the article was saved as a draft; no publish attempt.
	OutcomeSkipped Outcome = "skipped"
	// OutcomePosted: delivery confirmed, telegram_posted set.
	OutcomePosted Outcome = "posted"
	// OutcomeFailed: delivery attempted and failed; article stays released.
	OutcomeFailed Outcome = "failed"
	// OutcomeDisabled: publisher unconfigured; no network attempt made.
	OutcomeDisabled Outcome = "disabled"
)

// ValidationError reports required fields missing from a submission.
// Nothing is written when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("majburiy maydonlar to'ldirilmagan: %s", strings.Join(e.Fields, ", "))
}

// Publisher is the channel delivery dependency.
type Publisher interface {
	Enabled() bool
	SendBlocking(ctx context.Context, a *models.ArticleModel) bool
}

// Service is the publication orchestrator.
type Service struct {
	articles  *article.Service
	publisher Publisher
	log       *zap.Logger
}

func NewService(articles *article.Service, publisher Publisher, log *zap.Logger) *Service {
	return &Service{articles: articles, publisher: publisher, log: log}
}

// SubmitInput is a validated admin submission.
type SubmitInput struct {
	TitleUz           string `json:"title_uz"`
	TitleRu           string `json:"title_ru"`
	ContentUz         string `json:"content_uz"`
	ContentRu         string `json:"content_ru"`
	TelegramContentUz string `json:"telegram_content_uz"`
	TelegramContentRu string `json:"telegram_content_ru"`
	MetaTitle         string `json:"meta_title"`
	MetaDescription   string `json:"meta_description"`
	Slug              string `json:"slug"`
	Category          string `json:"category"`
	Region            string `json:"region"`
	Keywords          string `json:"keywords"`
	Published         bool   `json:"published"`
	Featured          bool   `json:"featured"`
}

// Submit persists the submission and, iff it is released, makes exactly
// one channel-publish attempt. The returned error covers the store
// write only; the channel outcome is reported separately and is never
// an error.
func (s *Service) Submit(ctx context.Context, in SubmitInput, authorID uint) (*models.ArticleModel, Outcome, error) {
	if err := validate(in); err != nil {
		return nil, OutcomeSkipped, err
	}

	a := &models.ArticleModel{
		TitleUz:           strings.TrimSpace(in.TitleUz),
		TitleRu:           strings.TrimSpace(in.TitleRu),
		ContentUz:         in.ContentUz,
		ContentRu:         in.ContentRu,
		TelegramContentUz: in.TelegramContentUz,
		TelegramContentRu: in.TelegramContentRu,
		MetaTitle:         in.MetaTitle,
		MetaDescription:   in.MetaDescription,
		Slug:              strings.TrimSpace(in.Slug),
		Category:          in.Category,
		Region:            in.Region,
		Keywords:          in.Keywords,
		Published:         in.Published,
		Featured:          in.Featured,
		AuthorID:          authorID,
	}

	if err := s.articles.Create(a); err != nil {
		return nil, OutcomeSkipped, err
	}

	// The row is committed at this point, so the link embedded in the
	// channel message is guaranteed to resolve.
	outcome := s.publishReleased(ctx, a)
	return a, outcome, nil
}

// Republish drives the draft→released transition for an existing
// article: at most one publish attempt, gated by telegram_posted.
func (s *Service) Republish(ctx context.Context, a *models.ArticleModel) Outcome {
	if a.TelegramPosted {
		return OutcomeSkipped
	}
	return s.publishReleased(ctx, a)
}

func (s *Service) publishReleased(ctx context.Context, a *models.ArticleModel) Outcome {
	if !a.Published {
		return OutcomeSkipped
	}
	if !s.publisher.Enabled() {
		s.log.Info("telegram publisher not configured, skipping channel post",
			zap.Uint("article_id", a.ID))
		return OutcomeDisabled
	}

	if !s.publisher.SendBlocking(ctx, a) {
		s.log.Warn("channel post failed, article stays released",
			zap.Uint("article_id", a.ID), zap.String("slug", a.Slug))
		return OutcomeFailed
	}

	if err := s.articles.MarkTelegramPosted(a.ID); err != nil {
		// Delivery went out; surface the bookkeeping failure but keep
		// the submission successful.
		s.log.Error("failed to record telegram_posted", zap.Uint("article_id", a.ID), zap.Error(err))
		return OutcomeFailed
	}
	a.TelegramPosted = true
	return OutcomePosted
}

func validate(in SubmitInput) error {
	var missing []string
	if strings.TrimSpace(in.TitleUz) == "" {
		missing = append(missing, "title_uz")
	}
	if strings.TrimSpace(in.ContentUz) == "" {
		missing = append(missing, "content_uz")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
