// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/polls/config"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/views"
)

var appLabelPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// driverNames maps config database types to database/sql driver names
var driverNames = map[string]string{
	config.DatabaseSQLite:   "sqlite",
	config.DatabasePostgres: "postgres",
}

// Store reads questions and choices from the tables owned by the polls app.
// It never writes.
type Store struct {
	db            *sql.DB
	questionTable string
	choiceTable   string
}

// Open connects to the configured database and returns a Store over it
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	driver, ok := driverNames[cfg.DatabaseType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store, err := NewStore(conn, cfg.AppLabel)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	slog.Debug("database connected", "type", cfg.DatabaseType, "app", cfg.AppLabel)
	return store, nil
}

// NewStore wraps an open connection. appLabel prefixes the table names,
// e.g. "polls" reads polls_question and polls_choice.
func NewStore(conn *sql.DB, appLabel string) (*Store, error) {
	if !appLabelPattern.MatchString(appLabel) {
		return nil, fmt.Errorf("invalid app label %q", appLabel)
	}
	return &Store{
		db:            conn,
		questionTable: appLabel + "_question",
		choiceTable:   appLabel + "_choice",
	}, nil
}

// Close closes the underlying connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ListQuestions returns every question in primary key order
func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, question_text, pub_date
		FROM %s
		ORDER BY id
	`, s.questionTable))
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// GetQuestion returns views.ErrQuestionNotFound when no row matches
func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, question_text, pub_date
		FROM %s
		WHERE id = $1
	`, s.questionTable), id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, views.ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	q.PubDate = q.PubDate.UTC()
	return q, nil
}

// ListChoices returns the choices of one question in primary key order
func (s *Store) ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, question_id, choice_text, votes
		FROM %s
		WHERE question_id = $1
		ORDER BY id
	`, s.choiceTable), questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}
