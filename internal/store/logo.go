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

const logoColumns = `id, owner_id, category_id,
	title, title_en, title_ar, description, description_en, description_ar,
	width, height, dpi,
	background_type, background_color, background_gradient, background_image,
	colors_used, alignment, export_prefs, tags,
	responsive_version, mobile_optimized, legacy_format_supported, legacy_compatibility_version,
	created_at, updated_at`

// LogoStore handles all logo-related database operations. It covers the
// editing surface only; the assembled mobile read path has its own queries.
type LogoStore struct {
	db *sql.DB
}

// NewLogoStore creates a new LogoStore with the given database connection.
func NewLogoStore(db *sql.DB) *LogoStore {
	return &LogoStore{db: db}
}

func scanLogo(row interface{ Scan(...any) error }) (*models.Logo, error) {
	l := &models.Logo{}
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.CategoryID,
		&l.Title, &l.TitleEn, &l.TitleAr, &l.Description, &l.DescriptionEn, &l.DescriptionAr,
		&l.Width, &l.Height, &l.DPI,
		&l.BackgroundType, &l.BackgroundColor, &l.BackgroundGradient, &l.BackgroundImage,
		&l.ColorsUsed, &l.Alignment, &l.ExportPrefs, &l.Tags,
		&l.ResponsiveVersion, &l.MobileOptimized, &l.LegacyFormatSupported, &l.LegacyCompatibilityVersion,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// FindByID retrieves a logo by its UUID. Returns nil if not found.
func (s *LogoStore) FindByID(id uuid.UUID) (*models.Logo, error) {
	l, err := scanLogo(s.db.QueryRow(`SELECT `+logoColumns+` FROM logos WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find logo by id: %w", err)
	}
	return l, nil
}

// ListByOwner returns a page of the owner's logos, newest first, plus the
// total count for pagination.
func (s *LogoStore) ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Logo, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM logos WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count logos: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT `+logoColumns+`
		FROM logos
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list logos: %w", err)
	}
	defer rows.Close()

	var logos []models.Logo
	for rows.Next() {
		l, err := scanLogo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan logo: %w", err)
		}
		logos = append(logos, *l)
	}
	return logos, total, rows.Err()
}

// Create inserts a new logo. Fields left zero on the input take their
// database defaults; the stored row is returned.
func (s *LogoStore) Create(l *models.Logo) (*models.Logo, error) {
	bgType := l.BackgroundType
	if bgType == "" {
		bgType = models.BackgroundSolid
	}
	width, height := l.Width, l.Height
	if width == 0 {
		width = 1024
	}
	if height == 0 {
		height = 1024
	}

	created, err := scanLogo(s.db.QueryRow(`
		INSERT INTO logos (
			owner_id, category_id,
			title, title_en, title_ar, description, description_en, description_ar,
			width, height, dpi,
			background_type, background_color, background_gradient, background_image,
			colors_used, alignment, export_prefs, tags,
			responsive_version, mobile_optimized, legacy_format_supported, legacy_compatibility_version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING `+logoColumns,
		l.OwnerID, l.CategoryID,
		l.Title, l.TitleEn, l.TitleAr, l.Description, l.DescriptionEn, l.DescriptionAr,
		width, height, l.DPI,
		bgType, l.BackgroundColor, nullJSON(l.BackgroundGradient), nullJSON(l.BackgroundImage),
		nullJSON(l.ColorsUsed), nullJSON(l.Alignment), nullJSON(l.ExportPrefs), nullJSON(l.Tags),
		l.ResponsiveVersion, l.MobileOptimized, l.LegacyFormatSupported, l.LegacyCompatibilityVersion,
	))
	if err != nil {
		return nil, fmt.Errorf("create logo: %w", err)
	}
	return created, nil
}

// Update overwrites the mutable fields of a logo and returns the stored row.
// Returns nil if the logo does not exist.
func (s *LogoStore) Update(l *models.Logo) (*models.Logo, error) {
	updated, err := scanLogo(s.db.QueryRow(`
		UPDATE logos SET
			category_id = $2,
			title = $3, title_en = $4, title_ar = $5,
			description = $6, description_en = $7, description_ar = $8,
			width = $9, height = $10, dpi = $11,
			background_type = $12, background_color = $13, background_gradient = $14, background_image = $15,
			colors_used = $16, alignment = $17, export_prefs = $18, tags = $19,
			responsive_version = $20, mobile_optimized = $21,
			legacy_format_supported = $22, legacy_compatibility_version = $23,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+logoColumns,
		l.ID, l.CategoryID,
		l.Title, l.TitleEn, l.TitleAr,
		l.Description, l.DescriptionEn, l.DescriptionAr,
		l.Width, l.Height, l.DPI,
		l.BackgroundType, l.BackgroundColor, nullJSON(l.BackgroundGradient), nullJSON(l.BackgroundImage),
		nullJSON(l.ColorsUsed), nullJSON(l.Alignment), nullJSON(l.ExportPrefs), nullJSON(l.Tags),
		l.ResponsiveVersion, l.MobileOptimized,
		l.LegacyFormatSupported, l.LegacyCompatibilityVersion,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update logo: %w", err)
	}
	return updated, nil
}

// Delete removes a logo and, via cascading constraints, its layers.
func (s *LogoStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM logos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete logo: %w", err)
	}
	return nil
}

// nullJSON maps an empty raw message to NULL so the database default and
// the NULL-means-derive read semantics stay intact.
func nullJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
