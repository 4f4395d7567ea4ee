// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
	"github.com/danielhkuo/polls/views"
)

func setupService(t *testing.T) (*views.Service, func(text string, days int) models.Question) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	store, err := db.NewStore(conn, cfg.AppLabel)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	create := func(text string, days int) models.Question {
		return testutil.CreateQuestion(t, conn, text, days)
	}
	return views.NewService(store, cfg), create
}

func indexIDs(t *testing.T, svc *views.Service) []int64 {
	t.Helper()

	page, err := svc.Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	ids := []int64{}
	for _, s := range page.LatestQuestionList {
		ids = append(ids, s.Question.ID)
	}
	if page.Empty != (len(ids) == 0) {
		t.Errorf("Expected Empty=%v, got %v", len(ids) == 0, page.Empty)
	}
	return ids
}

func assertIDs(t *testing.T, got, expected []int64) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("Expected questions %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected questions %v, got %v", expected, got)
			return
		}
	}
}

func TestIndexView(t *testing.T) {
	t.Run("no questions", func(t *testing.T) {
		svc, _ := setupService(t)
		assertIDs(t, indexIDs(t, svc), []int64{})
	})

	t.Run("future question", func(t *testing.T) {
		svc, create := setupService(t)
		create("Future question", 30)
		assertIDs(t, indexIDs(t, svc), []int64{})
	})

	t.Run("past question", func(t *testing.T) {
		svc, create := setupService(t)
		q := create("Past question", -10)
		assertIDs(t, indexIDs(t, svc), []int64{q.ID})
	})

	t.Run("future question and past question", func(t *testing.T) {
		svc, create := setupService(t)
		past := create("Past question", -30)
		create("Future question", 30)
		assertIDs(t, indexIDs(t, svc), []int64{past.ID})
	})

	t.Run("two past questions", func(t *testing.T) {
		svc, create := setupService(t)
		q1 := create("Past question 1", -30)
		q2 := create("Past question 2", -40)
		assertIDs(t, indexIDs(t, svc), []int64{q1.ID, q2.ID})
	})

	t.Run("two future questions", func(t *testing.T) {
		svc, create := setupService(t)
		create("Future question 1", 30)
		create("Future question 2", 40)
		assertIDs(t, indexIDs(t, svc), []int64{})
	})

	t.Run("present question is recent", func(t *testing.T) {
		svc, create := setupService(t)
		create("Present question", 0)

		page, err := svc.Index(context.Background())
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}
		if len(page.LatestQuestionList) != 1 || !page.LatestQuestionList[0].RecentlyPublished {
			t.Errorf("Expected one recently published question, got %+v", page.LatestQuestionList)
		}
	})
}

func TestDetailView(t *testing.T) {
	svc, create := setupService(t)
	future := create("Future question", 30)
	past := create("Past question", -30)

	if _, err := svc.Detail(context.Background(), future.ID); !errors.Is(err, views.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for future question, got %v", err)
	}

	page, err := svc.Detail(context.Background(), past.ID)
	if err != nil {
		t.Fatalf("Detail failed: %v", err)
	}
	if page.Question.QuestionText != "Past question" {
		t.Errorf("Expected 'Past question', got '%s'", page.Question.QuestionText)
	}
}

func TestResultsView(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store, err := db.NewStore(conn, cfg.AppLabel)
	if err != nil {
		t.Fatal(err)
	}
	svc := views.NewService(store, cfg)

	q := testutil.CreateQuestion(t, conn, "What's up?", -1)
	testutil.AddChoice(t, conn, q.ID, "Not much", 1)
	testutil.AddChoice(t, conn, q.ID, "The sky", 4)
	hidden := testutil.CreateQuestion(t, conn, "Later", 2)
	testutil.AddChoice(t, conn, hidden.ID, "Soon", 0)

	page, err := svc.Results(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if page.TotalVotes != 5 {
		t.Errorf("Expected 5 total votes, got %d", page.TotalVotes)
	}
	if len(page.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(page.Results))
	}
	if page.Results[0].VoteCount != "1 vote" || page.Results[1].VoteCount != "4 votes" {
		t.Errorf("Unexpected vote counts: %q, %q", page.Results[0].VoteCount, page.Results[1].VoteCount)
	}

	if _, err := svc.Results(context.Background(), hidden.ID); !errors.Is(err, views.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for future question, got %v", err)
	}
}
