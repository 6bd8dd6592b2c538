package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/citytour/cities"
	"github.com/katalvlaran/citytour/geom"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// SetTableDDL returns the DDL for the table of set names.
func SetTableDDL() string {
	return `CREATE TABLE IF NOT EXISTS city_set (
    name TEXT PRIMARY KEY
);`
}

// CityTableDDL returns the DDL for city rows. seq keeps visitation order.
func CityTableDDL() string {
	return `CREATE TABLE IF NOT EXISTS city (
    set_name TEXT    NOT NULL REFERENCES city_set(name) ON DELETE CASCADE,
    seq      INTEGER NOT NULL,
    name     TEXT    NOT NULL,
    x        REAL    NOT NULL,
    y        REAL    NOT NULL,
    PRIMARY KEY(set_name, seq)
);`
}

// SQLite is a Store backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database at dsn and ensures the
// schema. dsn may be a file path or ":memory:". The pool is capped at one
// connection: SQLite has a single writer and each :memory: connection would
// otherwise see its own empty database.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	s, err := NewSQLite(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// NewSQLite wraps an existing handle and ensures the schema exists.
func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	if db == nil {
		return nil, errors.New("catalog: db is nil")
	}
	for _, ddl := range []string{`PRAGMA foreign_keys = ON`, SetTableDDL(), CityTableDDL()} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("catalog: ensure schema: %w", err)
		}
	}

	return &SQLite{db: db}, nil
}

// Put replaces the named set in one transaction.
func (s *SQLite) Put(ctx context.Context, set cities.Set) error {
	if err := checkSet(set); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO city_set(name) VALUES(?)`, set.Name); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM city WHERE set_name = ?`, set.Name); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO city(set_name, seq, name, x, y) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range set.Cities {
		if _, err = stmt.ExecContext(ctx, set.Name, i, c.Name, c.Location.X(), c.Location.Y()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Get loads the named set with cities in stored order.
func (s *SQLite) Get(ctx context.Context, name string) (cities.Set, error) {
	var found string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM city_set WHERE name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return cities.Set{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return cities.Set{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, x, y FROM city WHERE set_name = ? ORDER BY seq`, name)
	if err != nil {
		return cities.Set{}, err
	}
	defer rows.Close()

	out := cities.Set{Name: found}
	for rows.Next() {
		var (
			c    cities.City
			x, y float64
		)
		if err = rows.Scan(&c.Name, &x, &y); err != nil {
			return cities.Set{}, err
		}
		c.Location = geom.Pt(x, y)
		out.Cities = append(out.Cities, c)
	}
	if err = rows.Err(); err != nil {
		return cities.Set{}, err
	}

	return out, nil
}

// Delete removes the named set and its cities.
func (s *SQLite) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM city WHERE set_name = ?`, name); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM city_set WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return tx.Commit()
}

// List returns all set names in ascending order.
func (s *SQLite) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM city_set ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
