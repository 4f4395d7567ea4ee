// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visibility

import (
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/polls/models"
)

// RecentWindow is the trailing window, ending at now, that counts as recent
const RecentWindow = 24 * time.Hour

// WasPublishedRecently reports whether now-RecentWindow <= pub_date <= now.
// Both ends are inclusive.
func WasPublishedRecently(q models.Question, now time.Time) bool {
	if q.PubDate.After(now) {
		return false
	}
	return !q.PubDate.Before(now.Add(-RecentWindow))
}

// IsDetailVisible reports whether the question is published at now
func IsDetailVisible(q models.Question, now time.Time) bool {
	return !q.PubDate.After(now)
}

// LatestVisibleQuestions returns the questions published at or before now,
// most recent first. The input slice is left untouched.
func LatestVisibleQuestions(all []models.Question, now time.Time) []models.Question {
	visible := make([]models.Question, 0, len(all))
	for _, q := range all {
		if IsDetailVisible(q, now) {
			visible = append(visible, q)
		}
	}

	slices.SortStableFunc(visible, func(a, b models.Question) int {
		return b.PubDate.Compare(a.PubDate)
	})

	return visible
}

// Latest is LatestVisibleQuestions capped at limit entries (limit <= 0 keeps all)
func Latest(all []models.Question, now time.Time, limit int) []models.Question {
	visible := LatestVisibleQuestions(all, now)
	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	return visible
}

// VisibleChoices returns the choices that belong to q, or none when q is not
// published yet.
func VisibleChoices(q models.Question, choices []models.Choice, now time.Time) []models.Choice {
	visible := []models.Choice{}
	if !IsDetailVisible(q, now) {
		return visible
	}
	for _, c := range choices {
		if c.QuestionID == q.ID {
			visible = append(visible, c)
		}
	}
	return visible
}

// FormatVoteLabel returns "vote" for exactly one vote and "votes" otherwise
func FormatVoteLabel(c models.Choice) string {
	return english.PluralWord(c.Votes, "vote", "votes")
}

// FormatVoteCount renders the tally with its label, e.g. "1,024 votes"
func FormatVoteCount(c models.Choice) string {
	return humanize.Comma(int64(c.Votes)) + " " + FormatVoteLabel(c)
}

// PublishedLabel describes the question's age relative to now ("3 days ago")
func PublishedLabel(q models.Question, now time.Time) string {
	return humanize.RelTime(q.PubDate, now, "ago", "from now")
}
