// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/polls/config"
	"github.com/danielhkuo/polls/models"
)

// TestDBURL is an in-memory sqlite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the polls tables,
// laid out the way the web framework creates them
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would otherwise see its own empty database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE polls_question (
			id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
			question_text VARCHAR(200) NOT NULL,
			pub_date DATETIME NOT NULL
		);

		CREATE TABLE polls_choice (
			id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
			choice_text VARCHAR(200) NOT NULL,
			votes INTEGER NOT NULL,
			question_id BIGINT NOT NULL REFERENCES polls_question (id)
		);

		CREATE INDEX polls_choice_question_id ON polls_choice (question_id);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() config.Config {
	return config.Config{
		DatabaseURL:  TestDBURL,
		DatabaseType: config.DatabaseSQLite,
		AppLabel:     config.DefaultAppLabel,
		IndexLimit:   config.DefaultIndexLimit,
	}
}

// CreateQuestion creates a question published the given number of days
// offset to now (negative for questions published in the past, positive
// for questions that have not been published yet)
func CreateQuestion(t *testing.T, db *sql.DB, questionText string, days int) models.Question {
	t.Helper()
	return CreateQuestionAt(t, db, questionText, time.Now().AddDate(0, 0, days))
}

// CreateQuestionAt creates a question with an exact pub_date
func CreateQuestionAt(t *testing.T, db *sql.DB, questionText string, pubDate time.Time) models.Question {
	t.Helper()

	pubDate = pubDate.UTC()
	res, err := db.Exec(`
		INSERT INTO polls_question (question_text, pub_date)
		VALUES ($1, $2)
	`, questionText, pubDate)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read question ID: %v", err)
	}

	return models.Question{ID: id, QuestionText: questionText, PubDate: pubDate}
}

// AddChoice adds a choice with a vote tally to a question
func AddChoice(t *testing.T, db *sql.DB, questionID int64, choiceText string, votes int) models.Choice {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO polls_choice (question_id, choice_text, votes)
		VALUES ($1, $2, $3)
	`, questionID, choiceText, votes)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read choice ID: %v", err)
	}

	return models.Choice{ID: id, QuestionID: questionID, ChoiceText: choiceText, Votes: votes}
}
