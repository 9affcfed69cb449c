package sfnt

import "encoding/binary"

// sfnt version tags accepted for a single face.
const (
	versionTrueType = 0x00010000
	versionCFF      = 0x4F54544F // "OTTO"
	versionApple    = 0x74727565 // "true"
)

const (
	minUnitsPerEm   = 16
	maxUnitsPerEm   = 16384
	minHeadLength   = 54
	minHheaLength   = 36
	minMaxpLength   = 6
	maxpVersion05   = 0x00005000
	maxpVersion10   = 0x00010000
	tableRecordSize = 16
)

type tableRecord struct {
	offset uint32
	length uint32
}

// face is a parsed table directory of one sfnt face.
type face struct {
	index  uint32
	data   []byte
	tables map[string]tableRecord
}

// openFace reads the sfnt header and table directory of the given face and
// checks the tables every valid face must carry: head (unitsPerEm in
// 16..16384, indexToLocFormat 0 or 1), hhea (at least 36 bytes) and maxp
// (version 0.5 or 1.0, at least one glyph).
func openFace(data []byte, index uint32) (*face, error) {
	start, err := faceOffset(data, index)
	if err != nil {
		return nil, err
	}

	r := newReader(data)
	r.Seek(start)
	version := r.ReadUint32()
	numTables := r.ReadUint16()
	_ = r.ReadBytes(6) // searchRange, entrySelector, rangeShift
	if r.err != nil {
		return nil, &ParseError{Index: index, Err: r.err}
	}
	switch version {
	case versionTrueType, versionCFF, versionApple:
	default:
		return nil, &ParseError{Index: index, Err: ErrVersion}
	}
	if r.Len() < tableRecordSize*int(numTables) {
		return nil, &ParseError{Index: index, Err: ErrTruncated}
	}

	f := &face{
		index:  index,
		data:   data,
		tables: make(map[string]tableRecord, numTables),
	}
	for i := 0; i < int(numTables); i++ {
		tag := r.ReadTag()
		_ = r.ReadUint32() // checksum
		offset := r.ReadUint32()
		length := r.ReadUint32()
		if _, dup := f.tables[tag]; !dup {
			f.tables[tag] = tableRecord{offset: offset, length: length}
		}
	}

	if err := f.checkHead(); err != nil {
		return nil, err
	}
	if err := f.checkHhea(); err != nil {
		return nil, err
	}
	if err := f.checkMaxp(); err != nil {
		return nil, err
	}
	return f, nil
}

// table returns the bytes of a table. ok is false if the face has no such
// table; an error is returned if the table lies outside the data.
func (f *face) table(tag string) (b []byte, ok bool, err error) {
	rec, ok := f.tables[tag]
	if !ok {
		return nil, false, nil
	}
	end := uint64(rec.offset) + uint64(rec.length)
	if end > uint64(len(f.data)) {
		return nil, true, f.tableError(tag, ErrTruncated)
	}
	return f.data[rec.offset:end:end], true, nil
}

func (f *face) requireTable(tag string, minLength int) ([]byte, error) {
	b, ok, err := f.table(tag)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, f.tableError(tag, ErrMissingTable)
	}
	if len(b) < minLength {
		return nil, f.tableError(tag, ErrBadTable)
	}
	return b, nil
}

func (f *face) checkHead() error {
	b, err := f.requireTable("head", minHeadLength)
	if err != nil {
		return err
	}
	// version, revision and magic are not checked
	unitsPerEm := binary.BigEndian.Uint16(b[18:])
	indexToLocFormat := binary.BigEndian.Uint16(b[50:])
	if unitsPerEm < minUnitsPerEm || unitsPerEm > maxUnitsPerEm {
		return f.tableError("head", ErrBadTable)
	}
	if indexToLocFormat != 0 && indexToLocFormat != 1 {
		return f.tableError("head", ErrBadTable)
	}
	return nil
}

// checkHhea only requires the table to be present and long enough; its
// version is not checked.
func (f *face) checkHhea() error {
	_, err := f.requireTable("hhea", minHheaLength)
	return err
}

func (f *face) checkMaxp() error {
	b, err := f.requireTable("maxp", minMaxpLength)
	if err != nil {
		return err
	}
	version := binary.BigEndian.Uint32(b[0:])
	numGlyphs := binary.BigEndian.Uint16(b[4:])
	if (version != maxpVersion05 && version != maxpVersion10) || numGlyphs == 0 {
		return f.tableError("maxp", ErrBadTable)
	}
	return nil
}

func (f *face) tableError(tag string, err error) error {
	return &ParseError{Index: f.index, Table: tag, Err: err}
}
