// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/polls/config"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/visibility"
)

var (
	// ErrNotFound means the question is missing or not published yet.
	// Callers answer with their not-found outcome.
	ErrNotFound = errors.New("question not found")

	// ErrQuestionNotFound is returned by a Repository for an unknown ID
	ErrQuestionNotFound = errors.New("no such question")
)

// Repository supplies question and choice snapshots
type Repository interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error)
}

// Clock returns the reference instant for visibility checks
type Clock func() time.Time

type Service struct {
	repo  Repository
	cfg   config.Config
	clock Clock
}

func NewService(repo Repository, cfg config.Config) *Service {
	return &Service{repo: repo, cfg: cfg, clock: time.Now}
}

// WithClock returns a copy of the service that reads time from clock.
// The receiver keeps its own clock.
func (s *Service) WithClock(clock Clock) *Service {
	c := *s
	c.clock = clock
	return &c
}

// Index returns the latest visible questions, newest first
func (s *Service) Index(ctx context.Context) (models.IndexPage, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		return models.IndexPage{}, fmt.Errorf("could not list questions: %w", err)
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return models.IndexPage{}, err
		}
	}

	now := s.clock()
	latest := visibility.Latest(questions, now, s.cfg.IndexLimit)

	page := models.IndexPage{
		LatestQuestionList: make([]models.QuestionSummary, 0, len(latest)),
		Empty:              len(latest) == 0,
	}
	for _, q := range latest {
		page.LatestQuestionList = append(page.LatestQuestionList, models.QuestionSummary{
			Question:          q,
			RecentlyPublished: visibility.WasPublishedRecently(q, now),
			PublishedLabel:    visibility.PublishedLabel(q, now),
		})
	}

	return page, nil
}

// Detail returns a published question with its choices
func (s *Service) Detail(ctx context.Context, id int64) (models.DetailPage, error) {
	q, choices, err := s.visibleQuestion(ctx, id)
	if err != nil {
		return models.DetailPage{}, err
	}

	return models.DetailPage{Question: q, Choices: choices}, nil
}

// Results returns a published question with vote tallies per choice
func (s *Service) Results(ctx context.Context, id int64) (models.ResultsPage, error) {
	q, choices, err := s.visibleQuestion(ctx, id)
	if err != nil {
		return models.ResultsPage{}, err
	}

	page := models.ResultsPage{
		Question: q,
		Results:  make([]models.ChoiceResult, 0, len(choices)),
	}
	for _, c := range choices {
		page.Results = append(page.Results, models.ChoiceResult{
			Choice:    c,
			VoteLabel: visibility.FormatVoteLabel(c),
			VoteCount: visibility.FormatVoteCount(c),
		})
		page.TotalVotes += c.Votes
	}

	return page, nil
}

func (s *Service) visibleQuestion(ctx context.Context, id int64) (models.Question, []models.Choice, error) {
	q, err := s.repo.GetQuestion(ctx, id)
	if errors.Is(err, ErrQuestionNotFound) {
		return models.Question{}, nil, ErrNotFound
	}
	if err != nil {
		slog.Error("failed to get question", "question_id", id, "error", err)
		return models.Question{}, nil, fmt.Errorf("could not retrieve question: %w", err)
	}
	if err := q.Validate(); err != nil {
		return models.Question{}, nil, err
	}

	now := s.clock()
	if !visibility.IsDetailVisible(q, now) {
		slog.Debug("question not published yet", "question_id", id, "pub_date", q.PubDate)
		return models.Question{}, nil, ErrNotFound
	}

	choices, err := s.repo.ListChoices(ctx, id)
	if err != nil {
		slog.Error("failed to list choices", "question_id", id, "error", err)
		return models.Question{}, nil, fmt.Errorf("could not list choices: %w", err)
	}
	for _, c := range choices {
		if err := c.Validate(); err != nil {
			return models.Question{}, nil, err
		}
	}

	return q, visibility.VisibleChoices(q, choices, now), nil
}
