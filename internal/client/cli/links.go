package cli

import (
	"context"
	"fmt"
	"time"
)

const longColumnWidth = 48

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// List refreshes the feed in the foreground and prints it. A fetch failure
// is shown inline; the last known list is printed anyway.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}

	if err := a.feed.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, a.feed.Err())
	}

	links := a.feed.Links()
	if len(links) == 0 {
		fmt.Fprintln(a.out, "No links yet. Use 'shorten' to create one.")
		return nil
	}

	now := time.Now()
	for _, l := range links {
		fmt.Fprintf(a.out, "%-10s %-8s %6d clicks  %-*s expires %s\n",
			l.Short,
			l.State(now),
			l.Clicks,
			longColumnWidth, truncate(l.Long, longColumnWidth),
			l.Expiry.Local().Format("2006-01-02 15:04"),
		)
		fmt.Fprintf(a.out, "           id=%s  %s/%s\n", l.ID, a.config.APIBaseURL, l.Short)
	}
	return nil
}

// Shorten prompts for the link parameters and creates it. Validation
// failures (bad custom code, past expiry) are reported before any request
// is made, and the user simply retries.
func (a *App) Shorten(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}

	long, err := GetSimpleText(a.reader, "Enter the URL to shorten", a.out)
	if err != nil {
		return err
	}
	custom, err := GetSimpleText(a.reader, "Custom short code (optional, press Enter to skip)", a.out)
	if err != nil {
		return err
	}
	expiryText, err := GetSimpleText(a.reader, "Expiry, RFC3339 e.g. 2026-01-02T15:04:05Z (optional, server default 30 days)", a.out)
	if err != nil {
		return err
	}

	var expiry *time.Time
	if expiryText != "" {
		parsed, err := time.Parse(time.RFC3339, expiryText)
		if err != nil {
			fmt.Fprintln(a.out, "Could not parse expiry date:", err)
			return err
		}
		expiry = &parsed
	}

	link, err := a.feed.Create(ctx, long, custom, expiry)
	if err != nil {
		fmt.Fprintln(a.out, errMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Created: %s/%s -> %s\n", a.config.APIBaseURL, link.Short, link.Long)
	return nil
}

// Delete removes a link by id.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter link id to delete", a.out)
	if err != nil {
		return err
	}

	if err := a.feed.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, errMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
