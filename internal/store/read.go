package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fontdex/fontdex/internal/record"
	"github.com/fontdex/fontdex/internal/sfnt"
)

// Counts holds the number of rows in each table.
type Counts struct {
	Fonts  int
	Names  int
	Errors int
}

// CountRows returns the row count of every table.
func (s *Store) CountRows(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM font),
			(SELECT COUNT(*) FROM name),
			(SELECT COUNT(*) FROM error)
	`).Scan(&c.Fonts, &c.Names, &c.Errors)
	if err != nil {
		return Counts{}, fmt.Errorf("count rows: %w", err)
	}
	return c, nil
}

// ReadFonts returns all font rows ordered by path.
// Returns an empty slice (not nil) if the table is empty.
func (s *Store) ReadFonts(ctx context.Context) ([]record.Font, error) {
	rows, err := s.Query(ctx, `
		SELECT path, size
		FROM font
		ORDER BY path COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query fonts: %w", err)
	}
	defer rows.Close()

	fonts := []record.Font{}
	for rows.Next() {
		var f record.Font
		var size int64
		if err := rows.Scan(&f.Path, &size); err != nil {
			return nil, fmt.Errorf("scan font: %w", err)
		}
		f.Size = uint64(size)
		fonts = append(fonts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fonts: %w", err)
	}
	return fonts, nil
}

// ReadNames returns all name rows ordered by path, then face index, then
// insertion order. Insertion order within a face is name table order.
func (s *Store) ReadNames(ctx context.Context) ([]record.Name, error) {
	rows, err := s.Query(ctx, `
		SELECT path, face_index, platform_id, encoding_id, name_id, name
		FROM name
		ORDER BY path COLLATE BINARY ASC, face_index ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer rows.Close()

	names := []record.Name{}
	for rows.Next() {
		n, err := scanName(rows)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate names: %w", err)
	}
	return names, nil
}

// ReadNamesForPath returns the name rows of one file in face and table order.
func (s *Store) ReadNamesForPath(ctx context.Context, path string) ([]record.Name, error) {
	rows, err := s.Query(ctx, `
		SELECT path, face_index, platform_id, encoding_id, name_id, name
		FROM name
		WHERE path = ?
		ORDER BY face_index ASC, rowid ASC
	`, path)
	if err != nil {
		return nil, fmt.Errorf("query names for %s: %w", path, err)
	}
	defer rows.Close()

	names := []record.Name{}
	for rows.Next() {
		n, err := scanName(rows)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate names for %s: %w", path, err)
	}
	return names, nil
}

// ReadErrorPaths returns the path of every error row ordered by path.
// Duplicates are kept: a collection with several broken faces has one row
// per face.
func (s *Store) ReadErrorPaths(ctx context.Context) ([]string, error) {
	rows, err := s.Query(ctx, `
		SELECT path
		FROM error
		ORDER BY path COLLATE BINARY ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query errors: %w", err)
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate errors: %w", err)
	}
	return paths, nil
}

// scanName scans a row into a record.Name.
func scanName(rows *sql.Rows) (record.Name, error) {
	var n record.Name
	var faceIndex, platformID, encodingID, nameID int64
	if err := rows.Scan(&n.Path, &faceIndex, &platformID, &encodingID, &nameID, &n.Value); err != nil {
		return record.Name{}, fmt.Errorf("scan name: %w", err)
	}
	n.FaceIndex = uint32(faceIndex)
	n.PlatformID = sfnt.Platform(platformID)
	n.EncodingID = uint16(encodingID)
	n.NameID = sfnt.NameID(nameID)
	return n, nil
}
