package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"pricecomp/internal"
)

// DB keeps the run history: one summary row per completed
// reconciliation. Result entries themselves are never stored.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  catalogA TEXT NOT NULL,
  catalogB TEXT NOT NULL,
  categories INTEGER NOT NULL,
  products INTEGER NOT NULL,
  bothCount INTEGER NOT NULL,
  priceCount INTEGER NOT NULL,
  stockCount INTEGER NOT NULL,
  exportPath TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_createdAt ON runs(createdAt);
`
	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(run internal.RunRow) (int, error) {
	res, err := d.conn.Exec(`
INSERT INTO runs (traceId, catalogA, catalogB, categories, products, bothCount, priceCount, stockCount, exportPath)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.TraceID, run.CatalogA, run.CatalogB,
		run.Categories, run.Products,
		run.BothCount, run.PriceCount, run.StockCount,
		run.ExportPath,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(`
SELECT id, traceId, catalogA, catalogB, categories, products, bothCount, priceCount, stockCount, exportPath, createdAt
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []internal.RunRow{}
	for rows.Next() {
		var run internal.RunRow
		if err := rows.Scan(
			&run.ID, &run.TraceID, &run.CatalogA, &run.CatalogB,
			&run.Categories, &run.Products,
			&run.BothCount, &run.PriceCount, &run.StockCount,
			&run.ExportPath, &run.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
