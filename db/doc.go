// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db reads questions and choices from the polls database.

The tables belong to the web application that owns the polls app; this
package only queries them and never creates or migrates anything.

# Opening a Store

Open picks the driver from the configured database type:

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

  - sqlite: modernc.org/sqlite (pure Go)
  - postgres: github.com/lib/pq

# Tables

With the default app label "polls":

	polls_question (id, question_text, pub_date)
	polls_choice   (id, question_id, choice_text, votes)

	question 1──* choice

Store implements views.Repository.
*/
package db
