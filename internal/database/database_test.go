package database

import (
	"context"
	"log"
	"testing"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

func TestMain(m *testing.M) {
	teardown, _, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func TestNew(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	if db == nil {
		t.Fatal("expected a database instance")
	}
}

func TestHealth(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	stats := db.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrateSeededData(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}

	if TestJobFrontend.Title != "Frontend Engineer" {
		t.Fatalf("expected seeded frontend job, got %q", TestJobFrontend.Title)
	}
	if TestJobBackend.Title != "Backend Engineer" {
		t.Fatalf("expected seeded backend job, got %q", TestJobBackend.Title)
	}

	var count int64
	if err := db.Table("candidates").Count(&count).Error; err != nil {
		t.Fatalf("failed to count candidates: %s", err)
	}
	if count < 3 {
		t.Fatalf("expected at least 3 seeded candidates, got %d", count)
	}
}
