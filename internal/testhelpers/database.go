package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite cannot parse the models' gen_random_uuid() column defaults, so
// the test schema is spelled out by hand. Services always set IDs
// explicitly, so the missing defaults never matter.
var testSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		subscription_active BOOLEAN NOT NULL DEFAULT FALSE,
		subscription_end DATETIME
	);`,
	`CREATE TABLE trial_users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		trial_start DATETIME NOT NULL,
		trial_end DATETIME NOT NULL,
		has_converted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME
	);`,
	`CREATE TABLE wellness_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		age INTEGER,
		height REAL,
		weight REAL,
		goals TEXT,
		dietary_restrictions TEXT,
		activity_level TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`,
	`CREATE TABLE meal_preferences (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		preferred_time TEXT,
		calories_target INTEGER NOT NULL DEFAULT 0,
		protein_target INTEGER NOT NULL DEFAULT 0,
		carbs_target INTEGER NOT NULL DEFAULT 0,
		fat_target INTEGER NOT NULL DEFAULT 0,
		excluded_ingredients TEXT NOT NULL DEFAULT '[]',
		available_ingredients TEXT NOT NULL DEFAULT '[]',
		preferred_cuisine TEXT DEFAULT 'any',
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, meal_type)
	);`,
	`CREATE TABLE meal_plans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		plan_data TEXT NOT NULL,
		shopping_list TEXT NOT NULL,
		created_at DATETIME
	);`,
	`CREATE TABLE wellness_plans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		meal_plan TEXT NOT NULL,
		workout_plan TEXT NOT NULL,
		created_at DATETIME
	);`,
	`CREATE TABLE workout_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		workout_type TEXT,
		duration INTEGER,
		intensity TEXT,
		exercises TEXT NOT NULL DEFAULT '[]',
		calories_burned INTEGER,
		notes TEXT,
		completed_at DATETIME
	);`,
	`CREATE TABLE exercise_progress (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		weight REAL,
		reps INTEGER,
		sets INTEGER,
		recorded_at DATETIME
	);`,
	`CREATE TABLE wellness_tips (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		tip_content TEXT NOT NULL,
		motivation_quote TEXT NOT NULL,
		category TEXT,
		is_viewed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME
	);`,
}

// SetupTestDB opens an in-memory SQLite database with the full schema.
// Each call gets its own database, so tests stay isolated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	return db
}
