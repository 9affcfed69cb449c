package sfnt

const (
	tagCollection = "ttcf"

	// ttcHeaderSize covers tag, major/minor version and numFonts.
	ttcHeaderSize = 12
)

// NumFaces reports the number of faces declared by a TTC collection header.
// ok is false unless data starts with a well-formed collection header: the
// "ttcf" tag, major version 1 or 2, at least one face, and an offset table
// that fits inside data.
func NumFaces(data []byte) (n int, ok bool) {
	r := newReader(data)
	if r.ReadTag() != tagCollection {
		return 0, false
	}
	major := r.ReadUint16()
	_ = r.ReadUint16() // minor version
	numFonts := r.ReadUint32()
	if r.err != nil || (major != 1 && major != 2) || numFonts == 0 {
		return 0, false
	}
	if uint64(r.Len()) < 4*uint64(numFonts) {
		return 0, false
	}
	return int(numFonts), true
}

// Faces returns the face indices to try for a file.
// For a collection declaring N faces the result is 0, 1, ..., N-1; for any
// other input, including empty or corrupt data, it is the single index 0.
func Faces(data []byte) []uint32 {
	n, ok := NumFaces(data)
	if !ok {
		return []uint32{0}
	}
	faces := make([]uint32, n)
	for i := range faces {
		faces[i] = uint32(i)
	}
	return faces
}

// faceOffset returns the position of the sfnt header for the given face.
func faceOffset(data []byte, index uint32) (int, error) {
	if n, ok := NumFaces(data); ok {
		if uint64(index) >= uint64(n) {
			return 0, &ParseError{Index: index, Err: ErrFaceIndex}
		}
		r := newReader(data)
		r.Seek(ttcHeaderSize + 4*int(index))
		offset := r.ReadUint32()
		if r.err != nil {
			return 0, &ParseError{Index: index, Err: r.err}
		}
		if uint64(offset) >= uint64(len(data)) {
			return 0, &ParseError{Index: index, Err: ErrTruncated}
		}
		return int(offset), nil
	}
	if index != 0 {
		return 0, &ParseError{Index: index, Err: ErrFaceIndex}
	}
	return 0, nil
}
