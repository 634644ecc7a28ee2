// Package store exports the cleaned dataset into a SQLite database so the
// table can be queried with ordinary SQL afterwards.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-gota/gota/series"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

const tableName = "Track"

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// WriteDataset (re)creates the Track table from the dataset's columns and
// inserts every row. Returns the number of rows written.
func (s *Store) WriteDataset(d *dataset.Dataset) (int, error) {
	names := d.DF.Names()
	types := d.DF.Types()
	if len(names) == 0 {
		return 0, fmt.Errorf("dataset has no columns")
	}

	if _, err := s.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)); err != nil {
		return 0, fmt.Errorf("dropping table: %w", err)
	}

	defs := make([]string, len(names))
	for i, name := range names {
		defs[i] = fmt.Sprintf("%q %s", name, sqlType(types[i]))
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", tableName, strings.Join(defs, ", "))
	if _, err := s.db.Exec(create); err != nil {
		return 0, fmt.Errorf("creating table: %w", err)
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(names)), ",")
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(quoted, ", "), placeholders)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	records := d.DF.Records()
	written := 0
	for _, rec := range records[1:] { // records[0] is the header
		args := make([]interface{}, len(rec))
		for i, v := range rec {
			args[i] = sqlValue(v, types[i])
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting row %d: %w", written+1, err)
		}
		written++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return written, nil
}

// CountTracks returns the number of exported rows.
func (s *Store) CountTracks() (int, error) {
	var count int
	err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", tableName)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tracks: %w", err)
	}
	return count, nil
}

// Exists reports whether the Track table is present.
func (s *Store) Exists() (bool, error) {
	row := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", tableName)
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking table existence: %w", err)
	}
	return true, nil
}

// sqlValue maps a gota record to a driver value of the column's SQL type.
// Missing values become NULL.
func sqlValue(rec string, t series.Type) interface{} {
	if dataset.IsMissing(rec) {
		return nil
	}
	switch t {
	case series.Float, series.Int:
		return dataset.ParseNumber(rec)
	case series.Bool:
		if rec == "true" {
			return 1
		}
		return 0
	default:
		return rec
	}
}

func sqlType(t series.Type) string {
	switch t {
	case series.Float:
		return "REAL"
	case series.Int:
		return "INTEGER"
	case series.Bool:
		return "INTEGER"
	default:
		return "TEXT"
	}
}
