// Package record defines the rows fontdex persists.
//
// All record kinds are keyed by Path, the file's location relative to the
// scanned root with forward-slash separators.
package record

import "github.com/fontdex/fontdex/internal/sfnt"

// Font is one scanned file.
type Font struct {
	Path string
	Size uint64
}

// Name is one kept name entry of a successfully parsed face.
type Name struct {
	Path       string
	FaceIndex  uint32
	PlatformID sfnt.Platform
	EncodingID uint16
	NameID     sfnt.NameID
	Value      []byte
}

// Error marks a face that could not be parsed.
// Only Path is persisted; FaceIndex and Reason are kept for logging.
type Error struct {
	Path      string
	FaceIndex uint32
	Reason    string
}

// File is everything one input file contributes to the store.
type File struct {
	Font   Font
	Names  []Name
	Errors []Error
}

// NewName builds a Name row from an extracted name record.
func NewName(path string, faceIndex uint32, n sfnt.NameRecord) Name {
	return Name{
		Path:       path,
		FaceIndex:  faceIndex,
		PlatformID: n.Platform,
		EncodingID: n.EncodingID,
		NameID:     n.NameID,
		Value:      n.Value,
	}
}
