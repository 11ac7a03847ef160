// Package dashboard maintains the transient in-memory list of the user's
// links and keeps it fresh with a fixed-interval background poll. The list
// is never cached durably; it is rebuilt on every login.
package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/shortlink/internal/client/api"
	"github.com/dmitrijs2005/shortlink/internal/client/models"
	"github.com/dmitrijs2005/shortlink/internal/logging"
)

const defaultInterval = 10 * time.Second

// API is the slice of the transport client the feed needs.
type API interface {
	ListLinks(ctx context.Context) ([]models.ShortLink, error)
	CreateLink(ctx context.Context, long, customShort string, expiry *time.Time) (*models.ShortLink, error)
	DeleteLink(ctx context.Context, id string) error
}

// Feed holds the link list, newest first. The initial Refresh surfaces its
// error to the caller; background ticks are best-effort and swallow theirs,
// so a blip in connectivity never disturbs what the user is looking at.
type Feed struct {
	api      API
	log      logging.Logger
	interval time.Duration

	mu      sync.Mutex
	links   []models.ShortLink
	lastErr string
	subs    []func()
}

func NewFeed(api API, log logging.Logger, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Feed{api: api, log: log, interval: interval}
}

// Refresh performs a foreground fetch. Failures are stored for display and
// returned.
func (f *Feed) Refresh(ctx context.Context) error {
	links, err := f.api.ListLinks(ctx)
	if err != nil {
		f.mu.Lock()
		f.lastErr = displayMessage(err)
		f.mu.Unlock()
		f.notify()
		return err
	}
	f.setLinks(links)
	return nil
}

// Start runs the initial foreground fetch, then polls in the background
// until ctx is cancelled. Each tick also re-notifies subscribers so derived
// expiry states are recomputed as time passes, fetch or no fetch.
func (f *Feed) Start(ctx context.Context) error {
	err := f.Refresh(ctx)

	go func() {
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				f.refreshBackground(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	return err
}

// refreshBackground is the best-effort poll body: on failure the visible
// list and error state stay exactly as they were.
func (f *Feed) refreshBackground(ctx context.Context) {
	links, err := f.api.ListLinks(ctx)
	if err != nil {
		f.log.Debug(ctx, "background refresh failed", "error", err)
		f.notify()
		return
	}
	f.setLinks(links)
}

// Create shortens a URL and places the result at the top of the list.
func (f *Feed) Create(ctx context.Context, long, customShort string, expiry *time.Time) (*models.ShortLink, error) {
	link, err := f.api.CreateLink(ctx, long, customShort, expiry)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.links = append([]models.ShortLink{*link}, f.links...)
	f.mu.Unlock()
	f.notify()
	return link, nil
}

// Delete removes a link remotely and from the list.
func (f *Feed) Delete(ctx context.Context, id string) error {
	if err := f.api.DeleteLink(ctx, id); err != nil {
		return err
	}

	f.mu.Lock()
	kept := f.links[:0]
	for _, l := range f.links {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	f.links = kept
	f.mu.Unlock()
	f.notify()
	return nil
}

// Links returns a copy of the current list, newest first.
func (f *Feed) Links() []models.ShortLink {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ShortLink, len(f.links))
	copy(out, f.links)
	return out
}

// Err returns the message of the last foreground failure, empty when none.
func (f *Feed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Subscribe registers fn to run after every list change and on every poll
// tick. Callbacks run synchronously and must be fast.
func (f *Feed) Subscribe(fn func()) {
	f.mu.Lock()
	f.subs = append(f.subs, fn)
	f.mu.Unlock()
}

func (f *Feed) setLinks(links []models.ShortLink) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})

	f.mu.Lock()
	f.links = links
	f.lastErr = ""
	f.mu.Unlock()
	f.notify()
}

func (f *Feed) notify() {
	f.mu.Lock()
	subs := make([]func(), len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func displayMessage(err error) string {
	var ae *api.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return "Failed to load your links. Please try again."
}
