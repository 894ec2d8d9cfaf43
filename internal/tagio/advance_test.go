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

package tagio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shenjackyuanjie/go-nbt/internal/endian"
)

func TestAdvanceScalarSwapsInPlace(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x01} // big-endian int32 == 1
	next, err := Advance(buf, 0, Int, endian.Big, true)
	require.NoError(t, err)
	require.Equal(t, 4, next)
	require.Equal(t, uint32(1), endian.Uint32(buf, 0, endian.NativeOrder()))
}

func TestAdvanceByteArray(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x03, 0xaa, 0xbb, 0xcc, 0xff}
	next, err := Advance(buf, 0, ByteArray, endian.Big, true)
	require.NoError(t, err)
	require.Equal(t, 7, next)
}

func TestAdvanceStringTruncated(t *testing.T) {
	buf := []byte{0x00, 0x05, 'h', 'i'} // declares length 5 but only 2 bytes follow
	_, err := Advance(buf, 0, String, endian.Big, true)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestAdvanceIntArraySwapsEachElement(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x00, 0x02, // length 2
		0x00, 0x00, 0x00, 0x01, // element 0: 1
		0x00, 0x00, 0x00, 0x02, // element 1: 2
	}
	next, err := Advance(buf, 0, IntArray, endian.Big, true)
	require.NoError(t, err)
	require.Equal(t, len(buf), next)
	require.Equal(t, uint32(1), endian.Uint32(buf, 4, endian.NativeOrder()))
	require.Equal(t, uint32(2), endian.Uint32(buf, 8, endian.NativeOrder()))
}

func TestAdvanceUncheckedDoesNotBoundsCheck(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x03, 0xaa} // declares 3 bytes, only 1 present
	next, err := Advance(buf, 0, ByteArray, endian.Big, false)
	require.NoError(t, err)
	require.Equal(t, 7, next)
}

func TestKindValidAndString(t *testing.T) {
	require.True(t, Compound.Valid())
	require.False(t, Kind(13).Valid())
	require.Equal(t, "COMPOUND", Compound.String())
	require.Equal(t, "INVALID", Kind(200).String())
}

func TestSkipMatchesAdvancePosition(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x07} // host-order int32 == 7 already
	got := Skip(buf, 0, Int)
	require.Equal(t, 4, got)

	next, err := Advance(append([]byte(nil), buf...), 0, Int, endian.NativeOrder(), true)
	require.NoError(t, err)
	require.Equal(t, next, got)
}
