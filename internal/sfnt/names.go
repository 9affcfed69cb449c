package sfnt

import (
	"bytes"
	"encoding/binary"
	"fmt"

	otf "github.com/ConradIrwin/font/sfnt"
)

// Platform is the naming platform of a name record, reduced to the closed
// set the index stores. The numeric values are persisted and must not change.
type Platform uint8

const (
	PlatformUnicode   Platform = 0
	PlatformMacintosh Platform = 1
	PlatformISO       Platform = 2
	PlatformWindows   Platform = 3
	PlatformCustom    Platform = 4
)

// PlatformFromID maps an sfnt platform ID onto a Platform.
// IDs 0-3 map to themselves; every other ID is PlatformCustom.
func PlatformFromID(id uint16) Platform {
	switch id {
	case 0:
		return PlatformUnicode
	case 1:
		return PlatformMacintosh
	case 2:
		return PlatformISO
	case 3:
		return PlatformWindows
	default:
		return PlatformCustom
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformUnicode:
		return "Unicode"
	case PlatformMacintosh:
		return "Macintosh"
	case PlatformISO:
		return "ISO"
	case PlatformWindows:
		return "Windows"
	case PlatformCustom:
		return "Custom"
	default:
		return fmt.Sprintf("Platform(%d)", uint8(p))
	}
}

// NameID identifies the meaning of a name record.
type NameID uint16

// Name IDs kept by ExtractNames.
const (
	FullName       NameID = 4
	PostScriptName NameID = 6
)

func (n NameID) String() string {
	switch n {
	case FullName:
		return "FullName"
	case PostScriptName:
		return "PostScriptName"
	default:
		return fmt.Sprintf("NameID(%d)", uint16(n))
	}
}

// tracked reports whether records with this name ID are kept.
func (n NameID) tracked() bool {
	return n == FullName || n == PostScriptName
}

// NameRecord is one entry of a face's name table.
type NameRecord struct {
	Platform   Platform
	EncodingID uint16
	LanguageID uint16
	NameID     NameID

	// Value is the undecoded string payload.
	Value []byte
}

const nameRecordSize = 12

// ExtractNames parses face index of data and returns its full name and
// PostScript name records in name table order. Records with an empty payload
// are dropped.
//
// The name table is optional: a face without one, or with one that is out of
// bounds or malformed, yields an empty, non-nil slice. Only the first run of
// records whose strings lie inside the table is read.
//
// A non-nil error is always a *ParseError and means the face could not be
// parsed at all.
func ExtractNames(data []byte, index uint32) ([]NameRecord, error) {
	f, err := openFace(data, index)
	if err != nil {
		return nil, err
	}
	name, ok, err := f.table("name")
	if err != nil || !ok {
		return []NameRecord{}, nil
	}
	return listNames(name), nil
}

// usableRecords returns how many leading records of a name table have their
// string inside the table. ok is false if the header or the record array is
// malformed.
func usableRecords(b []byte) (n int, ok bool) {
	r := newReader(b)
	version := r.ReadUint16()
	count := int(r.ReadUint16())
	storageOffset := int(r.ReadUint16())
	if r.err != nil || (version != 0 && version != 1) {
		return 0, false
	}
	if r.Len() < nameRecordSize*count || storageOffset > len(b) {
		return 0, false
	}
	for n = 0; n < count; n++ {
		_ = r.ReadBytes(8) // platform, encoding, language, name IDs
		length := int(r.ReadUint16())
		offset := int(r.ReadUint16())
		if storageOffset+offset+length > len(b) {
			break
		}
	}
	return n, true
}

// listNames decodes the usable records of a name table with the
// ConradIrwin/font name table parser and keeps the tracked ones. Any failure
// there yields no names.
func listNames(name []byte) []NameRecord {
	n, ok := usableRecords(name)
	if !ok || n == 0 {
		return []NameRecord{}
	}
	font, err := otf.Parse(bytes.NewReader(nameFont(name, n)))
	if err != nil {
		return []NameRecord{}
	}
	table, err := font.NameTable()
	if err != nil {
		return []NameRecord{}
	}

	names := []NameRecord{}
	for _, e := range table.List() {
		id := NameID(e.NameID)
		if !id.tracked() || len(e.Value) == 0 {
			continue
		}
		names = append(names, NameRecord{
			Platform:   PlatformFromID(uint16(e.PlatformID)),
			EncodingID: uint16(e.EncodingID),
			LanguageID: uint16(e.LanguageID),
			NameID:     id,
			Value:      e.Value,
		})
	}
	return names
}

// nameFont wraps a name table in a standalone TrueType file whose name table
// declares count records. Collection faces use absolute table offsets, so the
// table is copied out rather than sliced. The face's own head table has
// already been checked and is replaced by a minimal valid one.
func nameFont(name []byte, count int) []byte {
	const dirSize = 12 + 2*tableRecordSize
	headOffset := dirSize
	nameOffset := headOffset + pad4(minHeadLength)

	out := make([]byte, nameOffset+pad4(len(name)))
	binary.BigEndian.PutUint32(out[0:], versionTrueType)
	binary.BigEndian.PutUint16(out[4:], 2)
	putTableRecord(out[12:], "head", headOffset, minHeadLength)
	putTableRecord(out[12+tableRecordSize:], "name", nameOffset, len(name))

	head := out[headOffset:]
	binary.BigEndian.PutUint16(head[0:], 1)           // majorVersion
	binary.BigEndian.PutUint32(head[12:], 0x5F0F3CF5) // magicNumber
	binary.BigEndian.PutUint16(head[18:], 1000)       // unitsPerEm

	copy(out[nameOffset:], name)
	binary.BigEndian.PutUint16(out[nameOffset+2:], uint16(count))
	return out
}

func putTableRecord(b []byte, tag string, offset, length int) {
	copy(b, tag)
	binary.BigEndian.PutUint32(b[8:], uint32(offset))
	binary.BigEndian.PutUint32(b[12:], uint32(length))
}

func pad4(n int) int {
	return (n + 3) &^ 3
}
