// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument marks a record that breaks a model precondition
var ErrInvalidArgument = errors.New("invalid argument")

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// Validate reports a question without a publication date
func (q Question) Validate() error {
	if q.PubDate.IsZero() {
		return fmt.Errorf("question %d: pub_date is required: %w", q.ID, ErrInvalidArgument)
	}
	return nil
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// Validate checks the vote counter and question reference
func (c Choice) Validate() error {
	if c.QuestionID == 0 {
		return fmt.Errorf("choice %d: question_id is required: %w", c.ID, ErrInvalidArgument)
	}
	if c.Votes < 0 {
		return fmt.Errorf("choice %d: negative votes %d: %w", c.ID, c.Votes, ErrInvalidArgument)
	}
	return nil
}

// View types

type QuestionSummary struct {
	Question          Question `json:"question"`
	RecentlyPublished bool     `json:"recently_published"`
	PublishedLabel    string   `json:"published_label"`
}

type IndexPage struct {
	LatestQuestionList []QuestionSummary `json:"latest_question_list"`
	Empty              bool              `json:"empty"`
}

type DetailPage struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

type ChoiceResult struct {
	Choice    Choice `json:"choice"`
	VoteLabel string `json:"vote_label"`
	VoteCount string `json:"vote_count"`
}

type ResultsPage struct {
	Question   Question       `json:"question"`
	Results    []ChoiceResult `json:"results"`
	TotalVotes int            `json:"total_votes"`
}
