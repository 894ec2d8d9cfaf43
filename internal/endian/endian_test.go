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

package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint16RoundTrip(t *testing.T) {
	buf := []byte{0x01, 0x02}
	require.Equal(t, uint16(0x0102), Uint16(buf, 0, Big))
	require.Equal(t, uint16(0x0201), Uint16(buf, 0, Little))
}

func TestUint32RoundTrip(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	require.Equal(t, uint32(0x01020304), Uint32(buf, 0, Big))
	require.Equal(t, uint32(0x04030201), Uint32(buf, 0, Little))
}

func TestUint64RoundTrip(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	require.Equal(t, uint64(0x0102030405060708), Uint64(buf, 0, Big))
	require.Equal(t, uint64(0x0807060504030201), Uint64(buf, 0, Little))
}

func TestSwapUint32RewritesToHostOrder(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	v := SwapUint32(buf, 0, Big)
	require.Equal(t, uint32(0x01020304), v)

	got := Uint32(buf, 0, NativeOrder())
	require.Equal(t, v, got, "buffer must now decode correctly under host order")
}

func TestSwapUint32NoopWhenSourceMatchesHost(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	cp := append([]byte(nil), buf...)

	SwapUint32(buf, 0, NativeOrder())
	require.Equal(t, cp, buf, "no rewrite should occur when src already matches host order")
}

func TestSwapUint64RewritesToHostOrder(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	v := SwapUint64(buf, 0, Big)
	require.Equal(t, uint64(0x0102030405060708), v)

	got := Uint64(buf, 0, NativeOrder())
	require.Equal(t, v, got, "buffer must now decode correctly under host order")
}

func TestSwapUint64DoesNotTransposeHalves(t *testing.T) {
	// A value whose two 32-bit halves are easy to tell apart if swapped:
	// high half 0x00000001, low half 0x00000002.
	const want uint64 = 0x0000000100000002

	big := make([]byte, 8)
	putUint64(big, 0, want, Big)
	require.Equal(t, want, SwapUint64(big, 0, Big))
	require.Equal(t, want, Uint64(big, 0, NativeOrder()))

	little := make([]byte, 8)
	putUint64(little, 0, want, Little)
	require.Equal(t, want, SwapUint64(little, 0, Little))
	require.Equal(t, want, Uint64(little, 0, NativeOrder()))
}

func TestSwapFloat32BitPattern(t *testing.T) {
	buf := make([]byte, 4)
	putUint32(buf, 0, 0x3f800000, Big) // 1.0f big-endian
	got := SwapFloat32(buf, 0, Big)
	require.Equal(t, float32(1.0), got)
}

func TestSwapFloat64BitPattern(t *testing.T) {
	buf := make([]byte, 8)
	putUint64(buf, 0, 0x3ff0000000000000, Big) // 1.0 big-endian
	got := SwapFloat64(buf, 0, Big)
	require.Equal(t, float64(1.0), got)
}
