package database

import (
	"database/sql"
	"testing"
)

func seededDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return db
}

func TestSeedIdempotent(t *testing.T) {
	db := seededDB(t)

	// Calling Seed again must be a no-op once users exist.
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var admins int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE email = 'admin@logokit.local'",
	).Scan(&admins); err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if admins != 1 {
		t.Errorf("admin rows: got %d, want 1", admins)
	}
}

func TestSeedDemoLogo(t *testing.T) {
	db := seededDB(t)

	var legacySupported bool
	var legacyVersion string
	err := db.QueryRow(`
		SELECT legacy_format_supported, legacy_compatibility_version
		FROM logos WHERE title = 'Demo Cafe'
	`).Scan(&legacySupported, &legacyVersion)
	if err != nil {
		t.Fatalf("find demo logo: %v", err)
	}
	if !legacySupported {
		t.Error("demo logo should support the legacy format")
	}
	if legacyVersion != "1.4" {
		t.Errorf("legacy version: got %q, want %q", legacyVersion, "1.4")
	}

	var layers int
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM layers l
		JOIN logos g ON g.id = l.logo_id
		WHERE g.title = 'Demo Cafe'
	`).Scan(&layers); err != nil {
		t.Fatalf("count demo layers: %v", err)
	}
	if layers != 2 {
		t.Errorf("demo layers: got %d, want 2", layers)
	}

	var fonts int
	if err := db.QueryRow("SELECT COUNT(*) FROM fonts").Scan(&fonts); err != nil {
		t.Fatalf("count fonts: %v", err)
	}
	if fonts < 2 {
		t.Errorf("fonts: got %d, want at least 2", fonts)
	}
}
