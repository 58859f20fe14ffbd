// Package catalog keeps a SQLite index of validated logbooks and their
// findings, keyed by the SHA-256 of the document content.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/logbook"
	"github.com/FocuswithJustin/uddf/core/sqlite"
	"github.com/FocuswithJustin/uddf/core/validate"
	"github.com/FocuswithJustin/uddf/internal/logging"
)

var migrations = []string{
	`CREATE TABLE documents (
		sha256     TEXT PRIMARY KEY,
		blake3     TEXT NOT NULL,
		path       TEXT NOT NULL,
		size       INTEGER NOT NULL,
		version    TEXT NOT NULL,
		generator  TEXT NOT NULL,
		dives      INTEGER NOT NULL,
		valid      INTEGER NOT NULL,
		errors     INTEGER NOT NULL,
		warnings   INTEGER NOT NULL,
		indexed_at TEXT NOT NULL
	);
	CREATE TABLE issues (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		sha256   TEXT NOT NULL REFERENCES documents(sha256) ON DELETE CASCADE,
		severity TEXT NOT NULL,
		field    TEXT NOT NULL,
		message  TEXT NOT NULL
	);
	CREATE INDEX issues_sha256 ON issues(sha256);`,
	`ALTER TABLE documents ADD COLUMN archived INTEGER NOT NULL DEFAULT 0;`,
}

// timeLayout has a fixed width so that indexed_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one catalogued document.
type Entry struct {
	SHA256    string    `json:"sha256"`
	BLAKE3    string    `json:"blake3"`
	Path      string    `json:"path"`
	Size      int       `json:"size"`
	Version   string    `json:"version"`
	Generator string    `json:"generator"`
	Dives     int       `json:"dives"`
	Valid     bool      `json:"valid"`
	Errors    int       `json:"errors"`
	Warnings  int       `json:"warnings"`
	Archived  bool      `json:"archived"`
	IndexedAt time.Time `json:"indexed_at"`

	// Issues is filled by Lookup only.
	Issues []validate.ValidationError `json:"issues,omitempty"`
}

// ListOptions filters List.
type ListOptions struct {
	InvalidOnly bool
	Limit       int // zero means no limit
}

// Catalog is an open catalog database.
type Catalog struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the catalog at path and brings its schema up to
// date.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open catalog", path, err)
	}
	if err := sqlite.Migrate(ctx, db, migrations); err != nil {
		db.Close()
		return nil, errors.NewIO("migrate catalog", path, err)
	}
	logging.Debug("catalog_open", "path", path, "driver", sqlite.DriverName())
	return &Catalog{db: db, path: path, now: time.Now}, nil
}

// OpenReadOnly opens an existing catalog for queries. The schema must be
// current; it is never migrated.
func OpenReadOnly(ctx context.Context, path string) (*Catalog, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open catalog", path, err)
	}
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		db.Close()
		return nil, errors.NewIO("open catalog", path, err)
	}
	if version != len(migrations) {
		db.Close()
		return nil, errors.NewUnsupported("catalog schema", fmt.Sprintf("%s has version %d, want %d", path, version, len(migrations)))
	}
	return &Catalog{db: db, path: path, now: time.Now}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// Record stores a validated file and replaces any earlier findings for the
// same content. Reports of files that failed to decode are rejected.
func (c *Catalog) Record(ctx context.Context, report logbook.FileReport, archived bool) error {
	if report.Err != nil || report.Result == nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot record %s: no validation result", report.Path)
	}
	if report.Digest.SHA256 == "" {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot record %s: missing digest", report.Path)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res := report.Result
	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (sha256, blake3, path, size, version, generator, dives, valid, errors, warnings, indexed_at, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sha256) DO UPDATE SET
			path = excluded.path,
			valid = excluded.valid,
			errors = excluded.errors,
			warnings = excluded.warnings,
			indexed_at = excluded.indexed_at,
			archived = MAX(documents.archived, excluded.archived)`,
		report.Digest.SHA256, report.Digest.BLAKE3, report.Path, report.Size,
		report.Version, report.Generator, report.Dives, boolInt(res.IsValid()),
		len(res.Errors), len(res.Warnings), c.now().UTC().Format(timeLayout), boolInt(archived))
	if err != nil {
		return fmt.Errorf("recording %s: %w", report.Path, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM issues WHERE sha256 = ?`, report.Digest.SHA256); err != nil {
		return fmt.Errorf("clearing issues: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO issues (sha256, severity, field, message) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, issue := range append(append([]validate.ValidationError{}, res.Errors...), res.Warnings...) {
		if _, err := stmt.ExecContext(ctx, report.Digest.SHA256, string(issue.Severity), issue.Field, issue.Message); err != nil {
			return fmt.Errorf("recording issue: %w", err)
		}
	}

	return tx.Commit()
}

const selectEntry = `SELECT sha256, blake3, path, size, version, generator, dives, valid, errors, warnings, archived, indexed_at FROM documents`

// Lookup returns the entry for a SHA-256 digest, including its issues.
func (c *Catalog) Lookup(ctx context.Context, sha256 string) (*Entry, error) {
	row := c.db.QueryRowContext(ctx, selectEntry+` WHERE sha256 = ?`, sha256)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFound("document", sha256)
	}
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `SELECT severity, field, message FROM issues WHERE sha256 = ? ORDER BY id`, sha256)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var issue validate.ValidationError
		var severity string
		if err := rows.Scan(&severity, &issue.Field, &issue.Message); err != nil {
			return nil, err
		}
		issue.Severity = validate.Severity(severity)
		entry.Issues = append(entry.Issues, issue)
	}
	return entry, rows.Err()
}

// LookupBLAKE3 is Lookup by the BLAKE3 digest.
func (c *Catalog) LookupBLAKE3(ctx context.Context, b3 string) (*Entry, error) {
	var sha string
	err := c.db.QueryRowContext(ctx, `SELECT sha256 FROM documents WHERE blake3 = ?`, b3).Scan(&sha)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFound("document", b3)
	}
	if err != nil {
		return nil, err
	}
	return c.Lookup(ctx, sha)
}

// List returns catalogued documents, most recently indexed first.
func (c *Catalog) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	query := selectEntry
	if opts.InvalidOnly {
		query += ` WHERE valid = 0`
	}
	query += ` ORDER BY indexed_at DESC, path`
	var args []any
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var e Entry
	var valid, archived int
	var indexedAt string
	if err := s.Scan(&e.SHA256, &e.BLAKE3, &e.Path, &e.Size, &e.Version, &e.Generator,
		&e.Dives, &valid, &e.Errors, &e.Warnings, &archived, &indexedAt); err != nil {
		return nil, err
	}
	e.Valid = valid != 0
	e.Archived = archived != 0
	t, err := time.Parse(timeLayout, indexedAt)
	if err != nil {
		return nil, fmt.Errorf("bad indexed_at %q: %w", indexedAt, err)
	}
	e.IndexedAt = t
	return &e, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
