// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"logokit/internal/models"
)

// AssetStore handles reusable icon, photo, and background resources.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore with the given database connection.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

const assetColumns = `id, kind, url, width, height, vector, category, tags, created_at`

func scanAsset(row interface{ Scan(...any) error }) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(&a.ID, &a.Kind, &a.URL, &a.Width, &a.Height, &a.Vector, &a.Category, &a.Tags, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns assets newest first, optionally filtered by kind. An empty
// kind returns everything.
func (s *AssetStore) List(kind models.AssetKind, limit, offset int) ([]models.Asset, int, error) {
	where, args := "", []any{}
	if kind != "" {
		where = "WHERE kind = $1"
		args = append(args, kind)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM assets `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assets: %w", err)
	}

	args = append(args, limit, offset)
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT %s FROM assets %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, assetColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, total, rows.Err()
}

// FindByID retrieves an asset by its UUID. Returns nil if not found.
func (s *AssetStore) FindByID(id uuid.UUID) (*models.Asset, error) {
	a, err := scanAsset(s.db.QueryRow(`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find asset by id: %w", err)
	}
	return a, nil
}

// Create inserts a new asset and returns the stored row.
func (s *AssetStore) Create(a *models.Asset) (*models.Asset, error) {
	created, err := scanAsset(s.db.QueryRow(`
		INSERT INTO assets (kind, url, width, height, vector, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+assetColumns,
		a.Kind, a.URL, a.Width, a.Height, a.Vector, a.Category, nullJSON(a.Tags),
	))
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return created, nil
}

// Delete removes an asset. Layers referencing it keep a dangling NULL via
// ON DELETE SET NULL.
func (s *AssetStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
