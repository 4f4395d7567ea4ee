// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package visibility decides which questions and choices end users may see.

Every function is pure and takes the reference instant explicitly, so
callers control the clock:

	now := time.Now()
	if visibility.WasPublishedRecently(q, now) {
		...
	}

# Rules

  - Visible: pub_date <= now
  - Recently published: now - 24h <= pub_date <= now, both ends inclusive
  - Choices are visible only when their question is

LatestVisibleQuestions orders visible questions by pub_date, most recent
first. Latest additionally caps the list, the way the index page shows
only the five newest polls.

# Labels

FormatVoteLabel picks "vote" or "votes" for a tally; FormatVoteCount and
PublishedLabel produce the display strings used on results and index pages.
*/
package visibility
