package site

import (
	"database/sql"
	"fmt"

	"cogentcore.org/core/math32"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sites (
	ord         INTEGER PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	url         TEXT NOT NULL,
	color       INTEGER NOT NULL,
	x           REAL,
	y           REAL,
	z           REAL,
	category    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
)`

// DB wraps a SQLite site catalog
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens or creates a SQLite catalog
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &DB{conn: conn, Path: path}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// Catalog reads all sites in stored order
func (d *DB) Catalog() (*Catalog, error) {
	rows, err := d.conn.Query(`SELECT id, name, url, color, x, y, z, category, description FROM sites ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("query sites: %w", err)
	}
	defer rows.Close()

	c := &Catalog{}
	for rows.Next() {
		var (
			n       Node
			color   int64
			x, y, z sql.NullFloat64
		)
		if err := rows.Scan(&n.ID, &n.Name, &n.URL, &color, &x, &y, &z, &n.Category, &n.Description); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		n.Color = Color(color)
		if x.Valid && y.Valid && z.Valid {
			n.Position = math32.Vec3(float32(x.Float64), float32(y.Float64), float32(z.Float64))
			n.HasPosition = true
		}
		c.Sites = append(c.Sites, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sites: %w", err)
	}
	return c, nil
}

// Replace swaps the stored catalog for c in one transaction, preserving c's order
func (d *DB) Replace(c *Catalog) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sites`); err != nil {
		return fmt.Errorf("clear sites: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO sites (ord, id, name, url, color, x, y, z, category, description) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, n := range c.Sites {
		var x, y, z sql.NullFloat64
		if n.HasPosition {
			x = sql.NullFloat64{Float64: float64(n.Position.X), Valid: true}
			y = sql.NullFloat64{Float64: float64(n.Position.Y), Valid: true}
			z = sql.NullFloat64{Float64: float64(n.Position.Z), Valid: true}
		}
		if _, err := stmt.Exec(i, n.ID, n.Name, n.URL, int64(n.Color), x, y, z, n.Category, n.Description); err != nil {
			return fmt.Errorf("insert %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}
