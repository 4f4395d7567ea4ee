// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and view types shared by the polls packages.

# Domain Types

Records loaded from the polls database:

  - Question: question_text and a timezone-aware pub_date
  - Choice: choice_text and a votes counter, referencing one Question

Both carry a Validate method that reports malformed records as
ErrInvalidArgument.

# View Types

Data handed to the rendering layer:

  - IndexPage: latest_question_list of QuestionSummary entries
  - DetailPage: question with its choices
  - ResultsPage: question with per-choice vote labels and a total
*/
package models
