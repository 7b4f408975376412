package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/migrate"
)

func TestValidateMigrationsDir(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestSeedMigrationMatchesGiftBundles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_seed_catalog.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no seed migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	// The compiled bundle presets resolve against these rows, so the seed
	// has to keep the product names and option texts they pin onto.
	checks := []string{
		"'Bučno olje'",
		"'Bučna semena'",
		"'Med'",
		"'0,25', 'l'",
		"'0,5', 'l'",
		"'100', 'g'",
		"'200', 'g'",
		"'450', 'g'",
		"'900', 'g'",
		"(4, 'Paket oranžko'",
		"16.00",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected seed value %q", sub)
		}
	}
}
