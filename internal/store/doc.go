// Package store provides the SQLite database fontdex writes its index into.
//
// A store holds three tables:
//   - font: one row per scanned file (path, size)
//   - name: one row per kept name record (path, face_index, platform_id,
//     encoding_id, name_id, name)
//   - error: one row per face that failed to parse (path)
//
// Every run creates a fresh store. Create fails if the target database already
// contains any of these tables; rows are only ever inserted.
//
// # Database Configuration
//
//   - WAL mode with synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON: name and error rows must reference an existing font row
//   - user_version records the schema version
//
// The store is used by a single writer. WriteFile persists one file's rows in
// one transaction, font row first.
package store
