package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shortlink/internal/client/api"
	"github.com/dmitrijs2005/shortlink/internal/client/resolver"
)

// Open resolves a short code and executes the resulting navigation effect:
// in a terminal, "navigating" means printing the destination for the user
// to follow.
func (a *App) Open(ctx context.Context, code string) error {
	eff := a.resolver.Resolve(ctx, code)

	switch eff.Outcome {
	case resolver.Navigate:
		fmt.Fprintf(a.out, "-> %s\n", eff.Target)

	case resolver.NotFound, resolver.Expired:
		fmt.Fprintln(a.out, eff.Message)
		fmt.Fprintln(a.out, "Use 'list' to go back to your dashboard.")

	case resolver.Deferred:
		fmt.Fprintf(a.out, "'%s' is not a short link code\n", code)
	}

	return nil
}

// errMessage extracts a classified message for display, falling back to the
// raw error text.
func errMessage(err error) string {
	var ae *api.Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
