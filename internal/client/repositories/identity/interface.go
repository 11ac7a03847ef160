// Package identity persists the cached authenticated identity between runs.
// The session manager is the sole writer; every mutation is written through
// so memory and storage never disagree.
package identity

import (
	"context"

	"github.com/dmitrijs2005/shortlink/internal/client/models"
)

type Repository interface {
	// Load returns the stored identity, or (nil, nil) when none is stored.
	Load(ctx context.Context) (*models.Identity, error)

	// Save overwrites the stored identity.
	Save(ctx context.Context, id *models.Identity) error

	// Clear removes the stored identity. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
