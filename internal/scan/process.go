package scan

import (
	"github.com/fontdex/fontdex/internal/record"
	"github.com/fontdex/fontdex/internal/sfnt"
)

// ProcessFile turns one file's bytes into the rows it contributes: the font
// row, a name row per kept name record of every parsed face, and an error row
// per face that failed to parse. Faces are handled independently; a broken
// face does not affect the others.
func ProcessFile(path string, size uint64, data []byte) record.File {
	f := record.File{
		Font: record.Font{Path: path, Size: size},
	}
	for _, face := range sfnt.Faces(data) {
		names, err := sfnt.ExtractNames(data, face)
		if err != nil {
			f.Errors = append(f.Errors, record.Error{
				Path:      path,
				FaceIndex: face,
				Reason:    err.Error(),
			})
			continue
		}
		for _, n := range names {
			f.Names = append(f.Names, record.NewName(path, face, n))
		}
	}
	return f
}
