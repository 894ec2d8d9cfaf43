// Copyright 2026 The go-nbt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shenjackyuanjie/go-nbt/internal/endian"
	"github.com/shenjackyuanjie/go-nbt/internal/tagio"
)

func beUint16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func beUint32(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }

func TestParseEmptyDocument(t *testing.T) {
	buf := []byte{0} // END
	res, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.NoError(t, err)
	require.Equal(t, tagio.End, res.RootKind)
	require.Nil(t, res.Marks)
}

func TestParseRootScalarHasNoMarks(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(tagio.Int))
	buf = append(buf, beUint16(1)...)
	buf = append(buf, 'x')
	buf = append(buf, beUint32(42)...)

	res, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.NoError(t, err)
	require.Equal(t, tagio.Int, res.RootKind)
	require.Nil(t, res.Marks)
	require.Equal(t, uint32(42), endian.Uint32(buf, res.ValueStart, endian.NativeOrder()))
}

func TestParseEmptyRootCompound(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(tagio.Compound))
	buf = append(buf, beUint16(0)...)
	buf = append(buf, byte(tagio.End))

	res, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.NoError(t, err)
	require.Equal(t, tagio.Compound, res.RootKind)
	require.NotNil(t, res.Marks)
	require.Equal(t, 1, res.Marks.Len())
	require.Equal(t, len(buf), res.Marks.At(0).End())
}

func TestParseCompoundWithOneIntField(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(tagio.Compound))
	buf = append(buf, beUint16(0)...)
	buf = append(buf, byte(tagio.Int))
	buf = append(buf, beUint16(1)...)
	buf = append(buf, 'a')
	buf = append(buf, beUint32(7)...)
	buf = append(buf, byte(tagio.End))

	res, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.NoError(t, err)
	require.Equal(t, 1, res.Marks.Len())
}

func TestParseNestedListInsideCompound(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(tagio.Compound))
	buf = append(buf, beUint16(0)...)

	buf = append(buf, byte(tagio.List))
	buf = append(buf, beUint16(4)...)
	buf = append(buf, []byte("nums")...)
	buf = append(buf, byte(tagio.Int))
	buf = append(buf, beUint32(2)...)
	buf = append(buf, beUint32(1)...)
	buf = append(buf, beUint32(2)...)

	buf = append(buf, byte(tagio.End)) // close compound

	res, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.NoError(t, err)
	require.Equal(t, 2, res.Marks.Len()) // one mark for the compound, one for the list

	// Closing the list replaced its mark's transient element kind/length
	// with the final form, so those are read back from the list header in
	// the source (offset 10), whose length the parse rewrote to host order.
	listMark := res.Marks.At(1)
	require.Equal(t, len(buf)-1, listMark.End())
	require.Equal(t, byte(tagio.Int), buf[10])
	require.Equal(t, uint32(2), endian.Uint32(buf, 11, endian.NativeOrder()))
}

func TestParseListOfEnd(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(tagio.List))
	buf = append(buf, beUint16(0)...)
	buf = append(buf, byte(tagio.End))
	buf = append(buf, beUint32(3)...) // declared length 3, no payload per element

	res, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.NoError(t, err)
	require.Equal(t, 1, res.Marks.Len())
	require.Equal(t, len(buf), res.Marks.At(0).End())
}

func TestParseInvalidTagID(t *testing.T) {
	buf := []byte{200, 0, 0}
	_, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrInvalidTag, pe.Code)
}

func TestParseTruncatedInCheckedMode(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(tagio.Compound))
	buf = append(buf, beUint16(0)...)
	buf = append(buf, byte(tagio.Int))
	buf = append(buf, beUint16(1)...)
	buf = append(buf, 'a')
	buf = append(buf, 0, 0) // only 2 of 4 payload bytes present, no END

	_, err := Parse(buf, Options{Order: endian.Big, Checked: true})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrTruncated, pe.Code)
}

func TestParseLittleEndian(t *testing.T) {
	buf := []byte{byte(tagio.Short), 0x01, 0x00, 'x', 0x34, 0x12}
	res, err := Parse(buf, Options{Order: endian.Little, Checked: true})
	require.NoError(t, err)
	require.Equal(t, tagio.Short, res.RootKind)
	require.Equal(t, uint16(0x1234), endian.Uint16(buf, res.ValueStart, endian.NativeOrder()))
}
