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

// Package endian implements the load/swap-in-place primitives that sit
// underneath every tag-advance routine in internal/tagio.
//
// For each scalar width the parser cares about (16, 32, 64 bits) there are
// two operations on a byte slice positioned at an offset:
//
//   - Uint16/Uint32/Uint64: decode the bytes as unsigned, swapping if the
//     source order is not the host's, and return the value without touching
//     the buffer.
//   - SwapUint16/SwapUint32/SwapUint64: read unsigned at the offset, swap if needed, write the
//     (possibly swapped) bytes back at the same offset, and return the
//     native value. This is the in-place rewrite the parser performs on
//     every numeric field it crosses.
//
// Floats are swapped as same-width unsigned integers; no arithmetic is ever
// performed on the bit pattern itself. The tag id and the signed 8-bit BYTE
// payload are never swapped (order is meaningless for a single byte).
package endian

import (
	"math"
	"unsafe"
)

// Order is the source document's declared byte order.
type Order uint8

const (
	Big Order = iota
	Little
)

// hostIsLittle is resolved once at startup by inspecting the in-memory
// layout of a known value. This is the one place this package reaches for
// unsafe: there is no portable way to ask the Go runtime for its target's
// byte order short of a per-GOARCH build tag, and this one-line probe is
// the standard idiom for it (the same trick glibc and Go's own internal
// byteorder detection use).
var hostIsLittle = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

func hostOrder() Order {
	if hostIsLittle {
		return Little
	}
	return Big
}

// Uint16 decodes a big/little-endian uint16 at buf[off:off+2] without
// modifying buf.
func Uint16(buf []byte, off int, src Order) uint16 {
	b0, b1 := buf[off], buf[off+1]
	if src == Big {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

// Uint32 decodes a big/little-endian uint32 at buf[off:off+4].
func Uint32(buf []byte, off int, src Order) uint32 {
	b0, b1, b2, b3 := buf[off], buf[off+1], buf[off+2], buf[off+3]
	if src == Big {
		return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
	}
	return uint32(b3)<<24 | uint32(b2)<<16 | uint32(b1)<<8 | uint32(b0)
}

// Uint64 decodes a big/little-endian uint64 at buf[off:off+8].
func Uint64(buf []byte, off int, src Order) uint64 {
	hi := Uint32(buf, off, src)
	lo := Uint32(buf, off+4, src)
	if src == Big {
		return uint64(hi)<<32 | uint64(lo)
	}
	return uint64(lo)<<32 | uint64(hi)
}

// putUint16 writes v to buf[off:off+2] in the given order.
func putUint16(buf []byte, off int, v uint16, order Order) {
	if order == Big {
		buf[off], buf[off+1] = byte(v>>8), byte(v)
		return
	}
	buf[off], buf[off+1] = byte(v), byte(v>>8)
}

func putUint32(buf []byte, off int, v uint32, order Order) {
	if order == Big {
		buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
		return
	}
	buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
}

// putUint64 writes v as two 32-bit words, ordering the words themselves the
// same way Uint64 reads them: most-significant word first at off for Big,
// least-significant word first at off for Little. Getting this backwards
// silently transposes the two halves of every LONG/DOUBLE/LONG_ARRAY element
// swapped on a little-endian host.
func putUint64(buf []byte, off int, v uint64, order Order) {
	hi, lo := uint32(v>>32), uint32(v)
	if order == Big {
		putUint32(buf, off, hi, order)
		putUint32(buf, off+4, lo, order)
		return
	}
	putUint32(buf, off, lo, order)
	putUint32(buf, off+4, hi, order)
}

// SwapUint16 reads the uint16 at buf[off:off+2] as src-ordered, rewrites it
// in host order in place, and returns the native value. When src already
// matches the host the buffer is not written at all.
func SwapUint16(buf []byte, off int, src Order) uint16 {
	v := Uint16(buf, off, src)
	if src != hostOrder() {
		putUint16(buf, off, v, hostOrder())
	}
	return v
}

// SwapUint32 is SwapUint16 for 32-bit fields.
func SwapUint32(buf []byte, off int, src Order) uint32 {
	v := Uint32(buf, off, src)
	if src != hostOrder() {
		putUint32(buf, off, v, hostOrder())
	}
	return v
}

// SwapUint64 is SwapUint16 for 64-bit fields.
func SwapUint64(buf []byte, off int, src Order) uint64 {
	v := Uint64(buf, off, src)
	if src != hostOrder() {
		putUint64(buf, off, v, hostOrder())
	}
	return v
}

// SwapFloat32 swaps the 4-byte bit pattern at buf[off:off+4] exactly like
// SwapUint32, then reinterprets it as an IEEE-754 binary32. No arithmetic
// is performed on the float value itself.
func SwapFloat32(buf []byte, off int, src Order) float32 {
	return math.Float32frombits(SwapUint32(buf, off, src))
}

// SwapFloat64 is SwapFloat32 for binary64.
func SwapFloat64(buf []byte, off int, src Order) float64 {
	return math.Float64frombits(SwapUint64(buf, off, src))
}

// NativeOrder reports the host's byte order, exported for tests that need
// to predict whether a given Order requires any swapping at all.
func NativeOrder() Order { return hostOrder() }
