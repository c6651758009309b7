package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/models/entities"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

// GetByKey resolves an API key to its owner and status
func (r *KeysRepo) GetByKey(ctx context.Context, key string) (*entities.ApiKey, error) {
	var keyRes entities.ApiKey

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.GetAPIKeyByKey), key).StructScan(&keyRes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	return &keyRes, nil
}

// Create issues a new active key for userID and returns it
func (r *KeysRepo) Create(ctx context.Context, userID uint) (*entities.ApiKey, error) {
	keyRes := entities.ApiKey{
		Key:    uuid.NewString(),
		UserID: userID,
		Status: true,
	}

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.InsertAPIKey), keyRes.Key, userID, true).Scan(&keyRes.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api key: %w", err)
	}

	return &keyRes, nil
}
