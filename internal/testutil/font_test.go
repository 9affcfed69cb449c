package testutil

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeName(t *testing.T) {
	assert.Equal(t, []byte{0x00, 'A', 0x00, 'b'}, EncodeName(3, "Ab"))
	assert.Equal(t, []byte{0x00, 'A', 0x00, 'b'}, EncodeName(0, "Ab"))
	assert.Equal(t, []byte("Ab"), EncodeName(1, "Ab"))
	assert.Equal(t, []byte{0xD8, 0x3D, 0xDE, 0x00}, EncodeName(3, "\U0001F600"))
}

func TestNameEntryRaw(t *testing.T) {
	e := NameEntry{PlatformID: 3, Value: "x", Raw: true}
	assert.Equal(t, []byte("x"), e.Bytes())
}

func TestBuildFont_Layout(t *testing.T) {
	face := Face{Names: []NameEntry{{PlatformID: 1, NameID: 4, Value: "Example"}}}
	data := BuildFont(face)

	require.Len(t, data, FontSize(face))
	assert.Equal(t, uint32(0x00010000), binary.BigEndian.Uint32(data))
	assert.Equal(t, uint16(4), binary.BigEndian.Uint16(data[4:]))

	var tags []string
	for i := 0; i < 4; i++ {
		rec := data[12+16*i:]
		tags = append(tags, string(rec[:4]))
		off := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		assert.Zero(t, off%4, "table %s not aligned", rec[:4])
		assert.LessOrEqual(t, int(off+length), len(data))
	}
	assert.Equal(t, []string{"head", "hhea", "maxp", "name"}, tags)
}

func TestBuildFont_NoNameTable(t *testing.T) {
	data := BuildFont(Face{NoNameTable: true})
	assert.Len(t, data, 160)
	assert.Equal(t, uint16(3), binary.BigEndian.Uint16(data[4:]))
}

func TestBuildFont_Broken(t *testing.T) {
	good := BuildFont(Face{})
	bad := BuildFont(Face{Broken: true})
	require.Len(t, bad, len(good))

	head := binary.BigEndian.Uint32(good[12+8:])
	assert.Equal(t, uint16(1000), binary.BigEndian.Uint16(good[head+18:]))
	assert.Zero(t, binary.BigEndian.Uint16(bad[head+18:]))
	assert.Equal(t, good[head+12:head+16], bad[head+12:head+16], "magic")
}

func TestBuildCollection(t *testing.T) {
	faces := []Face{{}, {NoNameTable: true}, {Broken: true}}
	data := BuildCollection(faces...)

	assert.Equal(t, "ttcf", string(data[:4]))
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(data[4:]))
	require.Equal(t, uint32(3), binary.BigEndian.Uint32(data[8:]))

	want := 12 + 4*len(faces)
	for i, face := range faces {
		off := binary.BigEndian.Uint32(data[12+4*i:])
		assert.Equal(t, want, int(off), "face %d offset", i)
		// table offsets are absolute
		head := binary.BigEndian.Uint32(data[int(off)+12+8:])
		assert.Greater(t, int(head), int(off))
		want += FontSize(face)
	}
	assert.Len(t, data, want)
}
