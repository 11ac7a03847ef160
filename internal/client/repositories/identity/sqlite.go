package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shortlink/internal/client/models"
	"github.com/dmitrijs2005/shortlink/internal/dbx"
)

// storageKey is the fixed metadata key the serialized identity lives under.
const storageKey = "identity"

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Identity, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}

	var id models.Identity
	if err := json.Unmarshal(value, &id); err != nil {
		return nil, fmt.Errorf("failed to decode stored identity: %w", err)
	}
	return &id, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, id *models.Identity) error {
	value, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey, value)
	if err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, storageKey)
	if err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}
