package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fontdex/fontdex/internal/record"
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WriteFile persists one file's font row followed by its name and error rows
// in a single transaction. Either all rows are written or none.
func (s *Store) WriteFile(ctx context.Context, f record.File) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write file %s: begin tx: %w", f.Font.Path, err)
	}
	defer tx.Rollback() // No-op if committed

	if err := writeFont(ctx, tx, f.Font); err != nil {
		return err
	}
	for _, n := range f.Names {
		if err := writeName(ctx, tx, n); err != nil {
			return err
		}
	}
	for _, e := range f.Errors {
		if err := writeError(ctx, tx, e); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write file %s: commit: %w", f.Font.Path, err)
	}
	return nil
}

// WriteFont inserts a font row. The path must not exist yet.
func (s *Store) WriteFont(ctx context.Context, f record.Font) error {
	return writeFont(ctx, s.db, f)
}

// WriteName inserts a name row. The referenced font row must exist
// (foreign key constraint).
func (s *Store) WriteName(ctx context.Context, n record.Name) error {
	return writeName(ctx, s.db, n)
}

// WriteError inserts an error row. The referenced font row must exist
// (foreign key constraint). Only the path is stored.
func (s *Store) WriteError(ctx context.Context, e record.Error) error {
	return writeError(ctx, s.db, e)
}

func writeFont(ctx context.Context, db execer, f record.Font) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO font (path, size)
		VALUES (?, ?)
	`,
		f.Path,
		int64(f.Size),
	)
	if err != nil {
		return fmt.Errorf("write font %s: %w", f.Path, err)
	}
	return nil
}

func writeName(ctx context.Context, db execer, n record.Name) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO name
		(path, face_index, platform_id, encoding_id, name_id, name)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		n.Path,
		int64(n.FaceIndex),
		int64(n.PlatformID),
		int64(n.EncodingID),
		int64(n.NameID),
		n.Value,
	)
	if err != nil {
		return fmt.Errorf("write name %s[%d]: %w", n.Path, n.FaceIndex, err)
	}
	return nil
}

func writeError(ctx context.Context, db execer, e record.Error) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO error (path)
		VALUES (?)
	`,
		e.Path,
	)
	if err != nil {
		return fmt.Errorf("write error %s[%d]: %w", e.Path, e.FaceIndex, err)
	}
	return nil
}
