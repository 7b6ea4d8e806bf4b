// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// row.go holds the wide scan targets for the mobile queries and the
// projection from a joined row into exactly one typed layer variant. The
// projection happens at the data-access boundary so the rest of the
// assembler never re-checks string discriminants.
package mobile

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"logokit/internal/models"
)

// logoRow is the scan target for the logo base row joined with its category.
type logoRow struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	Title         string
	TitleEn       sql.NullString
	TitleAr       sql.NullString
	Description   sql.NullString
	DescriptionEn sql.NullString
	DescriptionAr sql.NullString

	Width  any
	Height any
	DPI    any

	BackgroundType     sql.NullString
	BackgroundColor    sql.NullString
	BackgroundGradient []byte
	BackgroundImage    []byte

	ColorsUsed  []byte
	Alignment   []byte
	ExportPrefs []byte
	Tags        []byte

	ResponsiveVersion          sql.NullString
	MobileOptimized            bool
	LegacyFormatSupported      bool
	LegacyCompatibilityVersion sql.NullString

	CreatedAt time.Time
	UpdatedAt time.Time

	CategoryName   sql.NullString
	CategoryNameEn sql.NullString
	CategoryNameAr sql.NullString
}

// layerRow is the scan target for one row of the wide layer join: shared
// layer columns left-joined against every per-type detail table plus the
// assets and fonts those details reference. Columns from detail tables not
// matching the layer's type are present but ignored by the projection.
//
// Numeric columns scan into `any` on purpose: depending on driver
// configuration a numeric can surface as float64, int64, []byte, or string,
// and maybeNumber coerces all of them at this boundary so clients never see
// mixed representations.
type layerRow struct {
	ID       uuid.UUID
	Type     string
	ZIndex   int
	X        any
	Y        any
	Scale    any
	Rotation any
	Opacity  any
	FlipX    bool
	FlipY    bool
	Visible  bool
	Locked   bool

	TextLayerID   uuid.NullUUID
	TextContent   sql.NullString
	TextFill      sql.NullString
	TextStroke    sql.NullString
	TextStrokeW   any
	TextLetterSp  any
	TextLineH     any
	TextBold      sql.NullBool
	TextItalic    sql.NullBool
	TextUnderline sql.NullBool

	FontID        uuid.NullUUID
	FontFamily    sql.NullString
	FontStyle     sql.NullString
	FontWeight    sql.NullInt64
	FontURL       sql.NullString
	FontFallbacks []byte

	ShapeLayerID uuid.NullUUID
	ShapeKind    sql.NullString
	ShapePoints  []byte
	ShapeFill    sql.NullString
	ShapeStroke  sql.NullString
	ShapeStrokeW any

	IconLayerID     uuid.NullUUID
	IconTint        sql.NullString
	IconAssetID     uuid.NullUUID
	IconAssetURL    sql.NullString
	IconAssetWidth  any
	IconAssetHeight any
	IconAssetVector sql.NullString

	ImageLayerID     uuid.NullUUID
	ImageTint        sql.NullString
	ImageAssetID     uuid.NullUUID
	ImageAssetURL    sql.NullString
	ImageAssetWidth  any
	ImageAssetHeight any
	ImageAssetVector sql.NullString

	BgLayerID     uuid.NullUUID
	BgMode        sql.NullString
	BgFill        sql.NullString
	BgTileX       sql.NullBool
	BgTileY       sql.NullBool
	BgAssetID     uuid.NullUUID
	BgAssetURL    sql.NullString
	BgAssetWidth  any
	BgAssetHeight any
	BgAssetVector sql.NullString
}

// maybeNumber coerces a scanned value to a float pointer. It is total: nil
// comes back only for NULL or unparseable input. A stored zero stays zero —
// defaults are never substituted for falsy-but-valid values.
func maybeNumber(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case int:
		f = float64(n)
	case []byte:
		parsed, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

// toLayer projects a wide joined row into the assembled layer value. The
// shared fields are built once; exactly one variant sub-object is attached
// based on the type discriminant. A layer whose detail row is missing (or
// whose type is unknown) keeps only the shared fields.
func (r *layerRow) toLayer() Layer {
	layer := Layer{
		ID:       r.ID.String(),
		Type:     r.Type,
		ZIndex:   r.ZIndex,
		X:        maybeNumber(r.X),
		Y:        maybeNumber(r.Y),
		Scale:    maybeNumber(r.Scale),
		Rotation: maybeNumber(r.Rotation),
		Opacity:  maybeNumber(r.Opacity),
		FlipX:    r.FlipX,
		FlipY:    r.FlipY,
		Visible:  r.Visible,
		Locked:   r.Locked,
	}

	switch models.LayerType(r.Type) {
	case models.LayerText:
		if r.TextLayerID.Valid {
			layer.Text = r.textDetail()
		}
	case models.LayerShape:
		if r.ShapeLayerID.Valid {
			layer.Shape = r.shapeDetail()
		}
	case models.LayerIcon:
		if r.IconLayerID.Valid {
			layer.Icon = &IconDetail{
				Asset: assetRef(r.IconAssetID, r.IconAssetURL, r.IconAssetWidth, r.IconAssetHeight, r.IconAssetVector),
				Tint:  nullStr(r.IconTint),
			}
		}
	case models.LayerImage:
		if r.ImageLayerID.Valid {
			layer.Image = &ImageDetail{
				Asset: assetRef(r.ImageAssetID, r.ImageAssetURL, r.ImageAssetWidth, r.ImageAssetHeight, r.ImageAssetVector),
				Tint:  nullStr(r.ImageTint),
			}
		}
	case models.LayerBackground:
		if r.BgLayerID.Valid {
			layer.Background = &BackgroundDetail{
				Mode:  r.BgMode.String,
				Fill:  nullStr(r.BgFill),
				Asset: assetRef(r.BgAssetID, r.BgAssetURL, r.BgAssetWidth, r.BgAssetHeight, r.BgAssetVector),
				TileX: r.BgTileX.Bool,
				TileY: r.BgTileY.Bool,
			}
		}
	}

	return layer
}

func (r *layerRow) textDetail() *TextDetail {
	detail := &TextDetail{
		Content:     r.TextContent.String,
		Fill:        nullStr(r.TextFill),
		Stroke:      nullStr(r.TextStroke),
		StrokeWidth: maybeNumber(r.TextStrokeW),
		LetterSpace: maybeNumber(r.TextLetterSp),
		LineHeight:  maybeNumber(r.TextLineH),
		Bold:        r.TextBold.Bool,
		Italic:      r.TextItalic.Bool,
		Underline:   r.TextUnderline.Bool,
	}

	if r.FontID.Valid {
		font := &FontRef{
			ID:     r.FontID.UUID.String(),
			Family: r.FontFamily.String,
			Style:  r.FontStyle.String,
			Weight: int(r.FontWeight.Int64),
			URL:    r.FontURL.String,
		}
		if len(r.FontFallbacks) > 0 {
			// Best effort — a corrupt fallback list is not worth failing
			// the whole document over.
			_ = json.Unmarshal(r.FontFallbacks, &font.Fallbacks)
		}
		detail.Font = font
	}

	return detail
}

func (r *layerRow) shapeDetail() *ShapeDetail {
	detail := &ShapeDetail{
		Kind:        r.ShapeKind.String,
		Fill:        nullStr(r.ShapeFill),
		Stroke:      nullStr(r.ShapeStroke),
		StrokeWidth: maybeNumber(r.ShapeStrokeW),
	}
	if len(r.ShapePoints) > 0 {
		var points any
		if err := json.Unmarshal(r.ShapePoints, &points); err == nil {
			detail.Points = points
		}
	}
	return detail
}

// assetRef builds the embedded asset view from joined asset columns, or nil
// when the detail row references no asset.
func assetRef(id uuid.NullUUID, url sql.NullString, width, height any, vector sql.NullString) *AssetRef {
	if !id.Valid {
		return nil
	}
	return &AssetRef{
		ID:     id.UUID.String(),
		URL:    url.String,
		Width:  maybeNumber(width),
		Height: maybeNumber(height),
		Vector: nullStr(vector),
	}
}

func nullStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
