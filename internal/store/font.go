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

// FontStore handles the typeface catalog referenced by text layers.
type FontStore struct {
	db *sql.DB
}

// NewFontStore creates a new FontStore with the given database connection.
func NewFontStore(db *sql.DB) *FontStore {
	return &FontStore{db: db}
}

const fontColumns = `id, family, style, weight, url, fallbacks, created_at`

func scanFont(row interface{ Scan(...any) error }) (*models.Font, error) {
	f := &models.Font{}
	err := row.Scan(&f.ID, &f.Family, &f.Style, &f.Weight, &f.URL, &f.Fallbacks, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List returns the full font catalog ordered by family.
func (s *FontStore) List() ([]models.Font, error) {
	rows, err := s.db.Query(`SELECT ` + fontColumns + ` FROM fonts ORDER BY family ASC, weight ASC`)
	if err != nil {
		return nil, fmt.Errorf("list fonts: %w", err)
	}
	defer rows.Close()

	var fonts []models.Font
	for rows.Next() {
		f, err := scanFont(rows)
		if err != nil {
			return nil, fmt.Errorf("scan font: %w", err)
		}
		fonts = append(fonts, *f)
	}
	return fonts, rows.Err()
}

// FindByID retrieves a font by its UUID. Returns nil if not found.
func (s *FontStore) FindByID(id uuid.UUID) (*models.Font, error) {
	f, err := scanFont(s.db.QueryRow(`SELECT `+fontColumns+` FROM fonts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find font by id: %w", err)
	}
	return f, nil
}

// Create inserts a new font and returns the stored row.
func (s *FontStore) Create(f *models.Font) (*models.Font, error) {
	created, err := scanFont(s.db.QueryRow(`
		INSERT INTO fonts (family, style, weight, url, fallbacks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+fontColumns,
		f.Family, f.Style, f.Weight, f.URL, nullJSON(f.Fallbacks),
	))
	if err != nil {
		return nil, fmt.Errorf("create font: %w", err)
	}
	return created, nil
}
