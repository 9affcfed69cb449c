package testutil

import (
	"encoding/binary"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// NameEntry is one name table entry written by BuildFont.
type NameEntry struct {
	PlatformID uint16 `yaml:"platform"`
	EncodingID uint16 `yaml:"encoding"`
	LanguageID uint16 `yaml:"language"`
	NameID     uint16 `yaml:"name_id"`

	// Value is encoded with EncodeName unless Raw is set.
	Value string `yaml:"value"`
	Raw   bool   `yaml:"raw,omitempty"`
}

// Bytes returns the payload stored in the name table.
func (e NameEntry) Bytes() []byte {
	if e.Raw {
		return []byte(e.Value)
	}
	return EncodeName(e.PlatformID, e.Value)
}

// Face describes one synthetic sfnt face.
type Face struct {
	Names []NameEntry `yaml:"names"`

	// NoNameTable omits the name table entirely.
	NoNameTable bool `yaml:"no_name_table,omitempty"`

	// Broken writes a head table with unitsPerEm 0, which makes the face
	// unparseable.
	Broken bool `yaml:"broken,omitempty"`
}

// EncodeName encodes s the way fonts usually store it: UTF-16BE for the
// Unicode (0) and Windows (3) platforms, raw bytes otherwise.
func EncodeName(platformID uint16, s string) []byte {
	switch platformID {
	case 0, 3:
		b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			panic(err)
		}
		return b
	default:
		return []byte(s)
	}
}

const (
	sfntHeaderSize  = 12
	tableRecordSize = 16
	ttcHeaderSize   = 12
)

// BuildFont returns a minimal TrueType file containing the given face.
// The file carries head, hhea, maxp and (unless omitted) name tables; each
// table is padded to a multiple of four bytes.
func BuildFont(face Face) []byte {
	return buildFace(face, 0)
}

// BuildCollection returns a TTC file (version 1.0) containing the faces in
// order.
func BuildCollection(faces ...Face) []byte {
	out := make([]byte, ttcHeaderSize+4*len(faces))
	copy(out, "ttcf")
	binary.BigEndian.PutUint16(out[4:], 1)
	binary.BigEndian.PutUint32(out[8:], uint32(len(faces)))
	for i, face := range faces {
		binary.BigEndian.PutUint32(out[ttcHeaderSize+4*i:], uint32(len(out)))
		out = append(out, buildFace(face, len(out))...)
	}
	return out
}

// FontSize returns len(BuildFont(face)) without building the file.
func FontSize(face Face) int {
	n := sfntHeaderSize + 3*tableRecordSize + pad(54) + pad(36) + pad(6)
	if !face.NoNameTable {
		n += tableRecordSize + pad(len(nameTable(face.Names)))
	}
	return n
}

// buildFace lays out one face whose first byte will sit at base in the final
// file; table offsets are absolute.
func buildFace(face Face, base int) []byte {
	tables := map[string][]byte{
		"head": headTable(face.Broken),
		"hhea": hheaTable(),
		"maxp": maxpTable(),
	}
	if !face.NoNameTable {
		tables["name"] = nameTable(face.Names)
	}
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	dirSize := sfntHeaderSize + tableRecordSize*len(tags)
	out := make([]byte, dirSize)
	binary.BigEndian.PutUint32(out[0:], 0x00010000)
	binary.BigEndian.PutUint16(out[4:], uint16(len(tags)))

	for i, tag := range tags {
		data := tables[tag]
		rec := out[sfntHeaderSize+tableRecordSize*i:]
		copy(rec, tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(base+len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(data)))
		out = append(out, data...)
		out = append(out, make([]byte, pad(len(data))-len(data))...)
	}
	return out
}

func headTable(broken bool) []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint16(b[0:], 1)
	binary.BigEndian.PutUint32(b[12:], 0x5F0F3CF5)
	if !broken {
		binary.BigEndian.PutUint16(b[18:], 1000)
	}
	return b
}

func hheaTable() []byte {
	b := make([]byte, 36)
	binary.BigEndian.PutUint16(b[0:], 1)
	return b
}

func maxpTable() []byte {
	b := make([]byte, 6)
	binary.BigEndian.PutUint32(b[0:], 0x00005000)
	binary.BigEndian.PutUint16(b[4:], 1)
	return b
}

func nameTable(names []NameEntry) []byte {
	storageOffset := 6 + 12*len(names)
	b := make([]byte, storageOffset)
	binary.BigEndian.PutUint16(b[2:], uint16(len(names)))
	binary.BigEndian.PutUint16(b[4:], uint16(storageOffset))
	var storage []byte
	for i, n := range names {
		value := n.Bytes()
		rec := b[6+12*i:]
		binary.BigEndian.PutUint16(rec[0:], n.PlatformID)
		binary.BigEndian.PutUint16(rec[2:], n.EncodingID)
		binary.BigEndian.PutUint16(rec[4:], n.LanguageID)
		binary.BigEndian.PutUint16(rec[6:], n.NameID)
		binary.BigEndian.PutUint16(rec[8:], uint16(len(value)))
		binary.BigEndian.PutUint16(rec[10:], uint16(len(storage)))
		storage = append(storage, value...)
	}
	return append(b, storage...)
}

func pad(n int) int {
	return (n + 3) &^ 3
}
