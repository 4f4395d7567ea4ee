// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views builds the data behind the index, detail and results pages.

A Service loads snapshots through a Repository and applies the visibility
rules. It does not speak HTTP; the serving layer maps its results:

	page, err := svc.Detail(ctx, id)
	if errors.Is(err, views.ErrNotFound) {
		// respond 404
	}

# Pages

  - Index: latest visible questions, capped by the configured limit
  - Detail: a published question with its choices
  - Results: a published question with vote tallies

Future-dated questions behave exactly like missing ones.

# Clock

The service reads the current time from time.Now. WithClock returns a copy
bound to another clock and leaves the original untouched.
*/
package views
