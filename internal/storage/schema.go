package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Note: WAL mode is configured in db.go.
func InitSchema(db *sql.DB) error {
	statements := []struct {
		name  string
		query string
	}{
		{"timetable_slots", `
	CREATE TABLE IF NOT EXISTS timetable_slots (
		day TEXT NOT NULL,
		department TEXT NOT NULL,
		ordinal INTEGER NOT NULL,
		time TEXT NOT NULL,
		subject TEXT NOT NULL,
		room TEXT,
		faculty TEXT,
		PRIMARY KEY (day, department, ordinal)
	);
	CREATE INDEX IF NOT EXISTS idx_timetable_day ON timetable_slots(day);
	`},
		{"exams", `
	CREATE TABLE IF NOT EXISTS exams (
		department TEXT NOT NULL,
		ordinal INTEGER NOT NULL,
		subject TEXT NOT NULL,
		date TEXT NOT NULL,
		day TEXT,
		time TEXT,
		room TEXT,
		type TEXT,
		PRIMARY KEY (department, ordinal)
	);
	CREATE INDEX IF NOT EXISTS idx_exams_date ON exams(date);
	`},
		{"exam_rules", `
	CREATE TABLE IF NOT EXISTS exam_rules (
		ordinal INTEGER PRIMARY KEY,
		rule TEXT NOT NULL
	);
	`},
		{"departments", `
	CREATE TABLE IF NOT EXISTS departments (
		code TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		hod TEXT,
		hod_contact TEXT,
		office TEXT,
		phone TEXT,
		established INTEGER,
		total_faculty INTEGER,
		total_students INTEGER,
		labs TEXT,
		average_package TEXT,
		highest_package TEXT,
		placement_rate TEXT
	);
	`},
		{"facilities", `
	CREATE TABLE IF NOT EXISTS facilities (
		key TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		timings TEXT,
		incharge TEXT,
		contact TEXT,
		services TEXT,
		notes TEXT
	);
	`},
		{"events", `
	CREATE TABLE IF NOT EXISTS events (
		ordinal INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT,
		venue TEXT,
		description TEXT
	);
	`},
		{"faqs", `
	CREATE TABLE IF NOT EXISTS faqs (
		ordinal INTEGER PRIMARY KEY,
		keywords TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL
	);
	`},
		{"important_contacts", `
	CREATE TABLE IF NOT EXISTS important_contacts (
		ordinal INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		number TEXT NOT NULL
	);
	`},
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(context.Background(), stmt.query); err != nil {
			return fmt.Errorf("failed to create %s table: %w", stmt.name, err)
		}
	}

	return nil
}
