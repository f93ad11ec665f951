package database

import (
	"context"
	"fmt"
)

// InitSchema creates the tables if they do not exist yet.
//
// Two constraints carry correctness guarantees the application relies on:
//   - CHECK (available_seats >= 0): the seat counter can never go negative,
//     even if a buggy write slips past the conditional update.
//   - UNIQUE (class_id, student_email): at most one active booking per
//     student and class. The pre-insert existence check alone has a
//     check-then-insert race; this index closes it at the store level.
func InitSchema(ctx context.Context, db PgxIface) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		photo_url TEXT,
		role TEXT NOT NULL DEFAULT 'student',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		instructor_name TEXT NOT NULL,
		instructor_email TEXT NOT NULL,
		image TEXT,
		price NUMERIC NOT NULL CHECK (price >= 0),
		total_seats INT NOT NULL CHECK (total_seats >= 0),
		available_seats INT NOT NULL CHECK (available_seats >= 0),
		enrolled_students INT NOT NULL CHECK (enrolled_students >= 0),
		status TEXT NOT NULL DEFAULT 'pending',
		feedback TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		student_name TEXT NOT NULL,
		student_email TEXT NOT NULL,
		student_photo TEXT,
		class_id UUID NOT NULL REFERENCES classes(id),
		payment_status TEXT NOT NULL DEFAULT 'unpaid',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (class_id, student_email)
	);
	`

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	return nil
}
