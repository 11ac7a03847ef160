// Package resolver turns a short code into a navigation decision.
//
// Resolution deliberately bypasses the typed API client: it needs the raw
// status code and Location header of the server's redirect response, which a
// normalized envelope client would discard. Redirect following is disabled
// on the underlying transport so a cross-origin 3xx can be observed instead
// of auto-followed.
//
// The procedure never returns an error. Every run ends in an explicit
// Effect the hosting shell executes; ambiguous failures resolve to a direct
// navigation to the resolution endpoint so the user still reaches their
// destination when client-side classification is impossible.
package resolver

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/dmitrijs2005/shortlink/internal/logging"
)

// codePattern is the shape of a server-generated short code: fixed length,
// base62. Anything else is not ours to resolve and defers to the default
// route, so application paths of the same depth are never swallowed.
var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{7}$`)

// Outcome tags the terminal states of one resolution run.
type Outcome int

const (
	// Deferred: no short code to resolve (bad shape, or the run was
	// cancelled). The shell falls through to its default route and no
	// network request was, or will be, issued for this code.
	Deferred Outcome = iota

	// Navigate: leave for Target. Either the redirect was observed
	// directly, or classification was impossible and Target is the
	// resolution endpoint itself for the server to redirect natively.
	Navigate

	// NotFound: the code does not exist. Terminal, user-visible.
	NotFound

	// Expired: the link exists but its expiry has passed. Terminal,
	// user-visible.
	Expired
)

func (o Outcome) String() string {
	switch o {
	case Deferred:
		return "deferred"
	case Navigate:
		return "navigate"
	case NotFound:
		return "not found"
	case Expired:
		return "expired"
	default:
		return "invalid"
	}
}

// Effect is the explicit result of a resolution run. The shell performs the
// actual navigation (or shows the terminal message); the procedure itself
// touches no global state.
type Effect struct {
	Outcome Outcome
	Target  string // set only for Navigate
	Message string // set only for NotFound/Expired
}

// Resolver resolves short codes against one service base URL.
type Resolver struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New constructs a Resolver. The transport observes raw 3xx responses
// rather than following them.
func New(baseURL string, log logging.Logger) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// Resolve runs the resolution procedure once for code. It honors ctx: a
// cancelled run produces no navigation.
func (r *Resolver) Resolve(ctx context.Context, code string) Effect {
	if !codePattern.MatchString(code) {
		return Effect{Outcome: Deferred}
	}

	target := r.baseURL + "/" + code

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Effect{Outcome: Navigate, Target: target}
	}

	resp, err := r.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Effect{Outcome: Deferred}
		}
		// Manual-redirect fetch failed; hand the whole exchange to the
		// server and let its redirect execute natively.
		r.log.Debug(ctx, "manual resolution failed, falling back to direct navigation", "code", code, "error", err)
		return Effect{Outcome: Navigate, Target: target}
	}
	defer resp.Body.Close()

	switch {
	case isRedirect(resp.StatusCode):
		if loc := resp.Header.Get("Location"); loc != "" {
			return Effect{Outcome: Navigate, Target: loc}
		}
		return Effect{Outcome: Navigate, Target: target}

	case resp.StatusCode == http.StatusGone:
		return Effect{Outcome: Expired, Message: "This short link has expired"}

	case resp.StatusCode == http.StatusNotFound:
		return Effect{Outcome: NotFound, Message: "Short link not found"}

	default:
		return Effect{Outcome: Navigate, Target: target}
	}
}
