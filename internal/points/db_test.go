package points

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB builds an in-memory SQLite database with the swap schema. The
// production schema is owned by the goose migrations; this mirrors just the
// columns the repositories touch.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	statements := []string{
		`PRAGMA foreign_keys = ON`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			points INTEGER NOT NULL DEFAULT 0,
			profile_pic TEXT,
			bio TEXT,
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			system_role TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE items (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users (id),
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '{}',
			category TEXT NOT NULL DEFAULT '',
			size TEXT NOT NULL DEFAULT '',
			condition TEXT NOT NULL DEFAULT 'GOOD',
			status TEXT NOT NULL DEFAULT 'AVAILABLE',
			points INTEGER NOT NULL DEFAULT 0,
			tags TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE swaps (
			id TEXT PRIMARY KEY,
			item1_id TEXT NOT NULL REFERENCES items (id),
			item2_id TEXT NOT NULL REFERENCES items (id),
			user1_id TEXT NOT NULL REFERENCES users (id),
			user2_id TEXT NOT NULL REFERENCES users (id),
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE points_transactions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			amount INTEGER NOT NULL,
			type TEXT NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}
	return conn
}
