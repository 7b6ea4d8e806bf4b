package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: an admin
// account, a couple of categories, a small font and asset catalog, and one
// fully layered demo logo with legacy support switched on so the mobile
// endpoints have something to serve.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "admin@logokit.local", string(hash), "Admin", "admin").Scan(&adminID)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	var categoryID string
	err = db.QueryRow(`
		INSERT INTO categories (name, name_en, name_ar)
		VALUES ('Restaurant', 'Restaurant', 'مطعم')
		RETURNING id
	`).Scan(&categoryID)
	if err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}
	if _, err := db.Exec(`
		INSERT INTO categories (name, name_en, name_ar) VALUES
		('Technology', 'Technology', 'تقنية'),
		('Fashion', 'Fashion', 'أزياء')
	`); err != nil {
		return fmt.Errorf("seed insert categories: %w", err)
	}

	var fontID string
	err = db.QueryRow(`
		INSERT INTO fonts (family, style, weight, url, fallbacks)
		VALUES ('Cairo', 'normal', 700, 'https://fonts.logokit.local/cairo-700.woff2', '["Tahoma","sans-serif"]')
		RETURNING id
	`).Scan(&fontID)
	if err != nil {
		return fmt.Errorf("seed insert font: %w", err)
	}
	if _, err := db.Exec(`
		INSERT INTO fonts (family, style, weight, url, fallbacks) VALUES
		('Inter', 'normal', 400, 'https://fonts.logokit.local/inter-400.woff2', '["Arial","sans-serif"]')
	`); err != nil {
		return fmt.Errorf("seed insert fonts: %w", err)
	}

	var iconAssetID string
	err = db.QueryRow(`
		INSERT INTO assets (kind, url, width, height, category, tags)
		VALUES ('icon', 'https://cdn.logokit.local/icons/chef-hat.svg', 64, 64, 'Restaurant', '["food","kitchen"]')
		RETURNING id
	`).Scan(&iconAssetID)
	if err != nil {
		return fmt.Errorf("seed insert asset: %w", err)
	}

	var logoID string
	err = db.QueryRow(`
		INSERT INTO logos (
			owner_id, category_id, title, title_en, title_ar,
			width, height, dpi,
			background_type, background_gradient,
			export_prefs, tags,
			responsive_version, mobile_optimized,
			legacy_format_supported, legacy_compatibility_version
		)
		VALUES (
			$1, $2, 'Demo Cafe', 'Demo Cafe', 'مقهى تجريبي',
			1024, 1024, 300,
			'gradient', '{"angle": 45, "stops": [{"hex": "#FF8800", "offset": 0}, {"hex": "#FFD400", "offset": 1}]}',
			'{"format": "png", "quality": 90, "transparent": true}', '["cafe","demo"]',
			'2.0', TRUE,
			TRUE, '1.4'
		)
		RETURNING id
	`, adminID, categoryID).Scan(&logoID)
	if err != nil {
		return fmt.Errorf("seed insert logo: %w", err)
	}

	var textLayerID string
	err = db.QueryRow(`
		INSERT INTO layers (logo_id, type, z_index, x, y, opacity)
		VALUES ($1, 'text', 1, 0.5, 0.7, 1)
		RETURNING id
	`, logoID).Scan(&textLayerID)
	if err != nil {
		return fmt.Errorf("seed insert text layer: %w", err)
	}
	if _, err := db.Exec(`
		INSERT INTO layer_text (layer_id, content, font_id, fill_hex, bold)
		VALUES ($1, 'مقهى تجريبي', $2, '#3B2314', TRUE)
	`, textLayerID, fontID); err != nil {
		return fmt.Errorf("seed insert text detail: %w", err)
	}

	var iconLayerID string
	err = db.QueryRow(`
		INSERT INTO layers (logo_id, type, z_index, x, y, scale, opacity)
		VALUES ($1, 'icon', 2, 0.5, 0.35, 1.2, 1)
		RETURNING id
	`, logoID).Scan(&iconLayerID)
	if err != nil {
		return fmt.Errorf("seed insert icon layer: %w", err)
	}
	if _, err := db.Exec(`
		INSERT INTO layer_icon (layer_id, asset_id, tint_hex)
		VALUES ($1, $2, '#3B2314')
	`, iconLayerID, iconAssetID); err != nil {
		return fmt.Errorf("seed insert icon detail: %w", err)
	}

	slog.Info("database seeded with demo data",
		"email", "admin@logokit.local",
		"password", "admin",
		"demo_logo_id", logoID,
	)
	return nil
}
