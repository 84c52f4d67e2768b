package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const insertRun = `INSERT INTO runs (id, started_at, colleges, majors, courses, faculty, organizations, unparsed_prerequisites) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
const listRuns = `SELECT id, started_at, colleges, majors, courses, faculty, organizations, unparsed_prerequisites FROM runs ORDER BY started_at DESC LIMIT $1`

const insertCollege = `INSERT INTO colleges (name, run_id) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET run_id=EXCLUDED.run_id`
const insertMajor = `INSERT INTO majors (college_name, name, run_id) VALUES ($1, $2, $3) ON CONFLICT (college_name, name) DO UPDATE SET run_id=EXCLUDED.run_id`
const insertCourse = `INSERT INTO courses (code_name, proper_name, credits, college_name, major_name, prerequisites, required, run_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (code_name) DO UPDATE SET proper_name=EXCLUDED.proper_name, credits=EXCLUDED.credits, college_name=EXCLUDED.college_name, major_name=EXCLUDED.major_name, prerequisites=EXCLUDED.prerequisites, required=EXCLUDED.required, run_id=EXCLUDED.run_id`
const insertFaculty = `INSERT INTO faculty (college_name, name, email, titles, department, interests, phone, run_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (college_name, name, email) DO UPDATE SET titles=EXCLUDED.titles, department=EXCLUDED.department, interests=EXCLUDED.interests, phone=EXCLUDED.phone, run_id=EXCLUDED.run_id`
const insertOrganization = `INSERT INTO organizations (name, description, link, run_id) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO UPDATE SET description=EXCLUDED.description, link=EXCLUDED.link, run_id=EXCLUDED.run_id`

func requiredCodes(course catalog.Course) []string {
	codes := []string{}
	for _, required := range course.Prerequisites.Required() {
		codes = append(codes, required.Code)
	}
	return codes
}

// facultyTitles folds the single title some directories publish into the
// titles column.
func facultyTitles(member catalog.Faculty) []string {
	if len(member.Titles) > 0 {
		return member.Titles
	}
	if member.Title != "" {
		return []string{member.Title}
	}
	return nil
}

// queueDocument queues the run and an upsert for every record of the
// document, parents before children.
func queueDocument(batch *pgx.Batch, run Run, doc *catalog.Document, callback func(pgconn.CommandTag) error) error {
	var queuedQueries []*pgx.QueuedQuery

	stats := run.Stats
	queuedQueries = append(queuedQueries, batch.Queue(
		insertRun,
		run.Id, run.StartedAt,
		stats.Colleges, stats.Majors, stats.Courses, stats.Faculty, stats.Organizations, stats.UnparsedPrerequisites,
	))

	for _, college := range doc.Colleges {
		queuedQueries = append(queuedQueries, batch.Queue(insertCollege, clean(college.Name), run.Id))

		for _, major := range college.Majors {
			queuedQueries = append(queuedQueries, batch.Queue(insertMajor, clean(college.Name), clean(major.Name), run.Id))
		}
	}

	for _, college := range doc.Colleges {
		for _, major := range college.Majors {
			for _, course := range major.Courses {
				prerequisites, err := json.Marshal(course.Prerequisites)
				if err != nil {
					return fmt.Errorf("unable to encode prerequisites of %v: %w", course.CodeName, err)
				}
				queuedQueries = append(queuedQueries, batch.Queue(
					insertCourse,
					course.CodeName,
					clean(course.ProperName),
					course.Credits,
					clean(college.Name),
					clean(major.Name),
					string(prerequisites),
					requiredCodes(course),
					run.Id,
				))
			}
		}

		for _, member := range college.Faculty {
			queuedQueries = append(queuedQueries, batch.Queue(
				insertFaculty,
				clean(college.Name),
				clean(member.Name),
				clean(member.Email),
				facultyTitles(member),
				optional(clean(member.Department)),
				optional(clean(member.Interests)),
				optional(clean(member.Phone)),
				run.Id,
			))
		}
	}

	for _, organization := range doc.Organizations {
		queuedQueries = append(queuedQueries, batch.Queue(
			insertOrganization,
			clean(organization.Name),
			clean(organization.Description),
			optional(clean(organization.Link)),
			run.Id,
		))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(callback)
	}
	return nil
}

// SaveDocument writes the document in one transaction and returns the run it
// was recorded under.
func (d *Database) SaveDocument(ctx context.Context, doc *catalog.Document) (Run, error) {
	run := NewRun(doc)

	var affected int64
	batch := pgx.Batch{}
	err := queueDocument(&batch, run, doc, func(ct pgconn.CommandTag) error {
		affected += ct.RowsAffected()
		return nil
	})
	if err != nil {
		return Run{}, err
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, &batch).Close(); err != nil {
		return Run{}, fmt.Errorf("unable to save document: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Run{}, err
	}

	slog.Info("saved document", "run", run.Id, "statements", batch.Len(), "rows", affected)
	return run, nil
}

func (d *Database) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := d.Pool.Query(ctx, listRuns, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		stats := &run.Stats
		if err := rows.Scan(
			&run.Id, &run.StartedAt,
			&stats.Colleges, &stats.Majors, &stats.Courses, &stats.Faculty, &stats.Organizations, &stats.UnparsedPrerequisites,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
