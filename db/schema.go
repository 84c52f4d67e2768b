package db

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id uuid PRIMARY KEY,
	started_at timestamptz NOT NULL,
	colleges integer NOT NULL,
	majors integer NOT NULL,
	courses integer NOT NULL,
	faculty integer NOT NULL,
	organizations integer NOT NULL,
	unparsed_prerequisites integer NOT NULL
);

CREATE TABLE IF NOT EXISTS colleges (
	name text PRIMARY KEY,
	run_id uuid NOT NULL REFERENCES runs (id)
);

CREATE TABLE IF NOT EXISTS majors (
	college_name text NOT NULL REFERENCES colleges (name),
	name text NOT NULL,
	run_id uuid NOT NULL REFERENCES runs (id),
	PRIMARY KEY (college_name, name)
);

CREATE TABLE IF NOT EXISTS courses (
	code_name text PRIMARY KEY,
	proper_name text NOT NULL,
	credits integer NOT NULL,
	college_name text NOT NULL,
	major_name text NOT NULL,
	prerequisites jsonb NOT NULL,
	required text[] NOT NULL,
	run_id uuid NOT NULL REFERENCES runs (id),
	FOREIGN KEY (college_name, major_name) REFERENCES majors (college_name, name)
);

CREATE TABLE IF NOT EXISTS faculty (
	college_name text NOT NULL REFERENCES colleges (name),
	name text NOT NULL,
	email text NOT NULL,
	titles text[],
	department text,
	interests text,
	phone text,
	run_id uuid NOT NULL REFERENCES runs (id),
	PRIMARY KEY (college_name, name, email)
);

CREATE TABLE IF NOT EXISTS organizations (
	name text PRIMARY KEY,
	description text NOT NULL,
	link text,
	run_id uuid NOT NULL REFERENCES runs (id)
);

CREATE INDEX IF NOT EXISTS courses_required_idx ON courses USING gin (required);
`

// Migrate creates any missing tables.
func (d *Database) Migrate(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to migrate: %w", err)
	}
	return nil
}
