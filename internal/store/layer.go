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

const layerColumns = `id, logo_id, type, z_index,
	x, y, scale, rotation, opacity, flip_x, flip_y, visible, locked,
	created_at, updated_at`

// LayerStore handles layer rows and their per-type detail rows. A layer and
// its detail row are created and deleted together inside a transaction.
type LayerStore struct {
	db *sql.DB
}

// NewLayerStore creates a new LayerStore with the given database connection.
func NewLayerStore(db *sql.DB) *LayerStore {
	return &LayerStore{db: db}
}

func scanLayer(row interface{ Scan(...any) error }) (*models.Layer, error) {
	l := &models.Layer{}
	err := row.Scan(
		&l.ID, &l.LogoID, &l.Type, &l.ZIndex,
		&l.X, &l.Y, &l.Scale, &l.Rotation, &l.Opacity,
		&l.FlipX, &l.FlipY, &l.Visible, &l.Locked,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListByLogo returns the logo's layers in stacking order.
func (s *LayerStore) ListByLogo(logoID uuid.UUID) ([]models.Layer, error) {
	rows, err := s.db.Query(`
		SELECT `+layerColumns+`
		FROM layers
		WHERE logo_id = $1
		ORDER BY z_index ASC, created_at ASC
	`, logoID)
	if err != nil {
		return nil, fmt.Errorf("list layers: %w", err)
	}
	defer rows.Close()

	var layers []models.Layer
	for rows.Next() {
		l, err := scanLayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan layer: %w", err)
		}
		layers = append(layers, *l)
	}
	return layers, rows.Err()
}

// FindByID retrieves a layer by its UUID. Returns nil if not found.
func (s *LayerStore) FindByID(id uuid.UUID) (*models.Layer, error) {
	l, err := scanLayer(s.db.QueryRow(`SELECT `+layerColumns+` FROM layers WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find layer by id: %w", err)
	}
	return l, nil
}

// Create inserts a layer together with the detail row matching its type.
// detail must be the models detail struct for layer.Type; its LayerID is
// filled in from the created layer. The type discriminant and the detail
// table stay consistent because both inserts share one transaction.
func (s *LayerStore) Create(layer *models.Layer, detail any) (*models.Layer, error) {
	if !layer.Type.Valid() {
		return nil, fmt.Errorf("create layer: unknown type %q", layer.Type)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create layer: %w", err)
	}
	defer tx.Rollback()

	scale := layer.Scale
	if scale == 0 {
		scale = 1
	}

	created, err := scanLayer(tx.QueryRow(`
		INSERT INTO layers (logo_id, type, z_index, x, y, scale, rotation, opacity, flip_x, flip_y, visible, locked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+layerColumns,
		layer.LogoID, layer.Type, layer.ZIndex,
		layer.X, layer.Y, scale, layer.Rotation, layer.Opacity,
		layer.FlipX, layer.FlipY, layer.Visible, layer.Locked,
	))
	if err != nil {
		return nil, fmt.Errorf("create layer: %w", err)
	}

	if err := insertDetail(tx, created.ID, layer.Type, detail); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create layer: %w", err)
	}
	return created, nil
}

func insertDetail(tx *sql.Tx, layerID uuid.UUID, t models.LayerType, detail any) error {
	var err error
	switch d := detail.(type) {
	case *models.TextDetail:
		if t != models.LayerText {
			return fmt.Errorf("detail mismatch: text detail for %q layer", t)
		}
		_, err = tx.Exec(`
			INSERT INTO layer_text (layer_id, content, font_id, fill_hex, stroke_hex, stroke_width, letter_spacing, line_height, bold, italic, underline)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, layerID, d.Content, d.FontID, d.FillHex, d.StrokeHex, d.StrokeWidth, d.LetterSpace, d.LineHeight, d.Bold, d.Italic, d.Underline)
	case *models.ShapeDetail:
		if t != models.LayerShape {
			return fmt.Errorf("detail mismatch: shape detail for %q layer", t)
		}
		_, err = tx.Exec(`
			INSERT INTO layer_shape (layer_id, kind, points, fill_hex, stroke_hex, stroke_width)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, layerID, d.Kind, nullJSON(d.Points), d.FillHex, d.StrokeHex, d.StrokeWidth)
	case *models.IconDetail:
		if t != models.LayerIcon {
			return fmt.Errorf("detail mismatch: icon detail for %q layer", t)
		}
		_, err = tx.Exec(`
			INSERT INTO layer_icon (layer_id, asset_id, tint_hex)
			VALUES ($1, $2, $3)
		`, layerID, d.AssetID, d.TintHex)
	case *models.ImageDetail:
		if t != models.LayerImage {
			return fmt.Errorf("detail mismatch: image detail for %q layer", t)
		}
		_, err = tx.Exec(`
			INSERT INTO layer_image (layer_id, asset_id, tint_hex)
			VALUES ($1, $2, $3)
		`, layerID, d.AssetID, d.TintHex)
	case *models.BackgroundDetail:
		if t != models.LayerBackground {
			return fmt.Errorf("detail mismatch: background detail for %q layer", t)
		}
		mode := d.Mode
		if mode == "" {
			mode = "fill"
		}
		_, err = tx.Exec(`
			INSERT INTO layer_background (layer_id, mode, fill_hex, asset_id, tile_x, tile_y)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, layerID, mode, d.FillHex, d.AssetID, d.TileX, d.TileY)
	default:
		return fmt.Errorf("create layer: unsupported detail %T", detail)
	}
	if err != nil {
		return fmt.Errorf("insert %s detail: %w", t, err)
	}
	return nil
}

// UpdateShared overwrites the shared geometric fields of a layer and returns
// the stored row. Returns nil if the layer does not exist. The type and the
// detail row are immutable; replacing a layer's type means delete + create.
func (s *LayerStore) UpdateShared(l *models.Layer) (*models.Layer, error) {
	updated, err := scanLayer(s.db.QueryRow(`
		UPDATE layers SET
			z_index = $2, x = $3, y = $4, scale = $5, rotation = $6, opacity = $7,
			flip_x = $8, flip_y = $9, visible = $10, locked = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+layerColumns,
		l.ID, l.ZIndex, l.X, l.Y, l.Scale, l.Rotation, l.Opacity,
		l.FlipX, l.FlipY, l.Visible, l.Locked,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update layer: %w", err)
	}
	return updated, nil
}

// Delete removes a layer; the detail row goes with it via the cascading
// foreign key.
func (s *LayerStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM layers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete layer: %w", err)
	}
	return nil
}

// Reorder assigns z_index 0..n-1 to the given layers in order. IDs not
// belonging to the logo are ignored by the WHERE clause.
func (s *LayerStore) Reorder(logoID uuid.UUID, orderedIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder layers: %w", err)
	}
	defer tx.Rollback()

	for i, id := range orderedIDs {
		if _, err := tx.Exec(`
			UPDATE layers SET z_index = $1, updated_at = NOW()
			WHERE id = $2 AND logo_id = $3
		`, i, id, logoID); err != nil {
			return fmt.Errorf("reorder layers: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder layers: %w", err)
	}
	return nil
}
