// internal/catalogdb/catalogdb.go
//
// SQLite export of a built catalog, for offline inspection.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Replacing the stored catalog in a single transaction.
//   - Reading per-language summaries back.
//
// The server never reads this database; every start still rebuilds the
// catalog from the corpus.

package catalogdb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/langgame/internal/catalog"
)

//go:embed migrations/*.sql
var migrations embed.FS

/**
 * Open opens (and creates if missing) a SQLite database file.
 *
 * - Ensures the parent directory exists.
 * - Configures busy timeout, WAL journaling and foreign keys.
 */
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

/**
 * Migrate applies the embedded migrations in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs in its own transaction.
 */
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// Export replaces whatever catalog is stored in db with cat.
func Export(ctx context.Context, db *sql.DB, cat *catalog.Catalog) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, q := range []string{`DELETE FROM words`, `DELETE FROM valid_answers`, `DELETE FROM languages`} {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}

	langStmt, err := tx.PrepareContext(ctx, `INSERT INTO languages (position, code, base, name) VALUES (?,?,?,?)`)
	if err != nil {
		return err
	}
	defer langStmt.Close()
	ansStmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO valid_answers (language_id, answer) VALUES (?,?)`)
	if err != nil {
		return err
	}
	defer ansStmt.Close()
	wordStmt, err := tx.PrepareContext(ctx, `INSERT INTO words (language_id, position, word) VALUES (?,?,?)`)
	if err != nil {
		return err
	}
	defer wordStmt.Close()

	for i, l := range cat.Languages() {
		res, err := langStmt.ExecContext(ctx, i, l.Code, l.Base, l.Name)
		if err != nil {
			return fmt.Errorf("insert language %s: %w", l.Code, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, a := range l.ValidAnswers {
			if _, err := ansStmt.ExecContext(ctx, id, a); err != nil {
				return fmt.Errorf("insert answer %s/%s: %w", l.Code, a, err)
			}
		}
		for j, w := range l.Words {
			if _, err := wordStmt.ExecContext(ctx, id, j, w); err != nil {
				return fmt.Errorf("insert word %s/%d: %w", l.Code, j, err)
			}
		}
	}

	return tx.Commit()
}

// Summaries returns one Stat per stored language, in catalog order.
func Summaries(ctx context.Context, db *sql.DB) ([]catalog.Stat, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT l.code, l.base, l.name, COUNT(w.word)
        FROM languages l
        LEFT JOIN words w ON w.language_id = l.id
        GROUP BY l.id
        ORDER BY l.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Stat
	for rows.Next() {
		var s catalog.Stat
		if err := rows.Scan(&s.Code, &s.Base, &s.Name, &s.Words); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ValidAnswers returns the stored answers for the first language with code.
func ValidAnswers(ctx context.Context, db *sql.DB, code string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT a.answer
        FROM valid_answers a
        JOIN languages l ON l.id = a.language_id
        WHERE l.id = (SELECT id FROM languages WHERE code=? ORDER BY position LIMIT 1)
        ORDER BY a.answer`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
