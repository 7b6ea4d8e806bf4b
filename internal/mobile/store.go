// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mobile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Store runs the read queries the assembler composes. Two round-trips per
// document: the base row with its category, and the wide layer join.
type Store struct {
	db *sql.DB
}

// NewStore creates a mobile read store on the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// FetchLogo returns the logo base row left-joined with its category, or
// nil when no logo matches.
func (s *Store) FetchLogo(ctx context.Context, id uuid.UUID) (*logoRow, error) {
	r := &logoRow{}
	err := s.db.QueryRowContext(ctx, `
		SELECT l.id, l.owner_id,
		       l.title, l.title_en, l.title_ar,
		       l.description, l.description_en, l.description_ar,
		       l.width, l.height, l.dpi,
		       l.background_type, l.background_color, l.background_gradient, l.background_image,
		       l.colors_used, l.alignment, l.export_prefs, l.tags,
		       l.responsive_version, l.mobile_optimized,
		       l.legacy_format_supported, l.legacy_compatibility_version,
		       l.created_at, l.updated_at,
		       c.name, c.name_en, c.name_ar
		FROM logos l
		LEFT JOIN categories c ON c.id = l.category_id
		WHERE l.id = $1
	`, id).Scan(
		&r.ID, &r.OwnerID,
		&r.Title, &r.TitleEn, &r.TitleAr,
		&r.Description, &r.DescriptionEn, &r.DescriptionAr,
		&r.Width, &r.Height, &r.DPI,
		&r.BackgroundType, &r.BackgroundColor, &r.BackgroundGradient, &r.BackgroundImage,
		&r.ColorsUsed, &r.Alignment, &r.ExportPrefs, &r.Tags,
		&r.ResponsiveVersion, &r.MobileOptimized,
		&r.LegacyFormatSupported, &r.LegacyCompatibilityVersion,
		&r.CreatedAt, &r.UpdatedAt,
		&r.CategoryName, &r.CategoryNameEn, &r.CategoryNameAr,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}
	return r, nil
}

// FetchLayers returns every layer of a logo left-joined against all five
// detail tables and the assets and fonts they reference, ordered by z-index
// ascending with creation time breaking ties. That ordering is the
// z-stacking order and must survive into the response array untouched.
func (s *Store) FetchLayers(ctx context.Context, logoID uuid.UUID) ([]layerRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ly.id, ly.type, ly.z_index,
		       ly.x, ly.y, ly.scale, ly.rotation, ly.opacity,
		       ly.flip_x, ly.flip_y, ly.visible, ly.locked,
		       lt.layer_id, lt.content, lt.fill_hex, lt.stroke_hex, lt.stroke_width,
		       lt.letter_spacing, lt.line_height, lt.bold, lt.italic, lt.underline,
		       f.id, f.family, f.style, f.weight, f.url, f.fallbacks,
		       ls.layer_id, ls.kind, ls.points, ls.fill_hex, ls.stroke_hex, ls.stroke_width,
		       li.layer_id, li.tint_hex,
		       ia.id, ia.url, ia.width, ia.height, ia.vector,
		       lm.layer_id, lm.tint_hex,
		       ma.id, ma.url, ma.width, ma.height, ma.vector,
		       lb.layer_id, lb.mode, lb.fill_hex, lb.tile_x, lb.tile_y,
		       ba.id, ba.url, ba.width, ba.height, ba.vector
		FROM layers ly
		LEFT JOIN layer_text lt ON lt.layer_id = ly.id
		LEFT JOIN fonts f ON f.id = lt.font_id
		LEFT JOIN layer_shape ls ON ls.layer_id = ly.id
		LEFT JOIN layer_icon li ON li.layer_id = ly.id
		LEFT JOIN assets ia ON ia.id = li.asset_id
		LEFT JOIN layer_image lm ON lm.layer_id = ly.id
		LEFT JOIN assets ma ON ma.id = lm.asset_id
		LEFT JOIN layer_background lb ON lb.layer_id = ly.id
		LEFT JOIN assets ba ON ba.id = lb.asset_id
		WHERE ly.logo_id = $1
		ORDER BY ly.z_index ASC, ly.created_at ASC
	`, logoID)
	if err != nil {
		return nil, fmt.Errorf("fetch layers: %w", err)
	}
	defer rows.Close()

	var layers []layerRow
	for rows.Next() {
		var r layerRow
		if err := rows.Scan(
			&r.ID, &r.Type, &r.ZIndex,
			&r.X, &r.Y, &r.Scale, &r.Rotation, &r.Opacity,
			&r.FlipX, &r.FlipY, &r.Visible, &r.Locked,
			&r.TextLayerID, &r.TextContent, &r.TextFill, &r.TextStroke, &r.TextStrokeW,
			&r.TextLetterSp, &r.TextLineH, &r.TextBold, &r.TextItalic, &r.TextUnderline,
			&r.FontID, &r.FontFamily, &r.FontStyle, &r.FontWeight, &r.FontURL, &r.FontFallbacks,
			&r.ShapeLayerID, &r.ShapeKind, &r.ShapePoints, &r.ShapeFill, &r.ShapeStroke, &r.ShapeStrokeW,
			&r.IconLayerID, &r.IconTint,
			&r.IconAssetID, &r.IconAssetURL, &r.IconAssetWidth, &r.IconAssetHeight, &r.IconAssetVector,
			&r.ImageLayerID, &r.ImageTint,
			&r.ImageAssetID, &r.ImageAssetURL, &r.ImageAssetWidth, &r.ImageAssetHeight, &r.ImageAssetVector,
			&r.BgLayerID, &r.BgMode, &r.BgFill, &r.BgTileX, &r.BgTileY,
			&r.BgAssetID, &r.BgAssetURL, &r.BgAssetWidth, &r.BgAssetHeight, &r.BgAssetVector,
		); err != nil {
			return nil, fmt.Errorf("scan layer: %w", err)
		}
		layers = append(layers, r)
	}
	return layers, rows.Err()
}

// ListLegacyIDs returns one page of logo ids that support the legacy
// format, newest first, plus the total count for pagination metadata.
func (s *Store) ListLegacyIDs(ctx context.Context, limit, offset int) ([]uuid.UUID, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM logos WHERE legacy_format_supported`,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count legacy logos: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM logos
		WHERE legacy_format_supported
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list legacy logos: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, 0, fmt.Errorf("scan legacy logo id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, total, rows.Err()
}
