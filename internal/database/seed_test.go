package database

import "testing"

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed only writes when the sections table is empty. Calling it twice
	// verifies idempotency without clearing the database first.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var sectionCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM sections").Scan(&sectionCount); err != nil {
		t.Fatalf("count sections: %v", err)
	}
	if sectionCount < 5 {
		t.Errorf("expected at least 5 sections, got %d", sectionCount)
	}

	var heroCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM heroes").Scan(&heroCount); err != nil {
		t.Fatalf("count heroes: %v", err)
	}
	if heroCount < 3 {
		t.Errorf("expected at least 3 heroes, got %d", heroCount)
	}
}
