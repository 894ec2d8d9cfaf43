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
	"errors"

	"github.com/shenjackyuanjie/go-nbt/internal/endian"
)

// ErrTruncated is returned by Advance when a checked-mode read
// would cross the end of the source buffer. Callers attach the offset at
// which this happened; see the root package's EndOfFileError.
var ErrTruncated = errors.New("nbt: read past end of source")

// widths of the fixed-size scalar kinds, indexed by Kind.
var scalarWidth = [...]int{
	Byte:   1,
	Short:  2,
	Int:    4,
	Long:   8,
	Float:  4,
	Double: 8,
}

// Advance swaps the payload of the tag of kind k starting at buf[pos] to
// host endianness in place, and returns the position immediately past it.
//
// k must not be End, List, or Compound: End has no payload, and LIST/
// COMPOUND payloads are handled by the parser's state machine (internal/
// parser), not by a single advance step. checked enables the bounds check
// spec section 4.3 describes as a "running read_length counter" — since a
// buffer position already IS that running counter in this representation,
// checked mode here is simply comparing pos+n against len(buf) before
// each read.
func Advance(buf []byte, pos int, k Kind, order endian.Order, checked bool) (next int, err error) {
	switch k {
	case Byte, Short, Int, Long, Float, Double:
		w := scalarWidth[k]
		if checked && pos+w > len(buf) {
			return pos, ErrTruncated
		}
		swapScalar(buf, pos, k, order)
		return pos + w, nil

	case ByteArray:
		return advanceLengthPrefixed(buf, pos, 4, 1, order, checked)

	case String:
		return advanceLengthPrefixed(buf, pos, 2, 1, order, checked)

	case IntArray:
		return advanceLengthPrefixed(buf, pos, 4, 4, order, checked)

	case LongArray:
		return advanceLengthPrefixed(buf, pos, 4, 8, order, checked)

	default:
		panic("tagio: Advance called with a container or END kind")
	}
}

// swapScalar rewrites the w-byte numeric field at buf[pos] in place.
func swapScalar(buf []byte, pos int, k Kind, order endian.Order) {
	switch k {
	case Byte:
		// Single signed byte: order is meaningless, nothing to swap.
	case Short:
		endian.SwapUint16(buf, pos, order)
	case Int:
		endian.SwapUint32(buf, pos, order)
	case Long:
		endian.SwapUint64(buf, pos, order)
	case Float:
		endian.SwapUint32(buf, pos, order)
	case Double:
		endian.SwapUint64(buf, pos, order)
	}
}

// advanceLengthPrefixed handles BYTE_ARRAY/STRING/INT_ARRAY/LONG_ARRAY: a
// lenWidth-byte element count (2 or 4 bytes), swapped in place, followed by
// count*elemWidth raw/element bytes.
//
// For INT_ARRAY/LONG_ARRAY each element is itself swapped; per spec
// section 4.2, "If source and host endianness agree, the element-by-
// element swap loop is elided" — SwapUint32/64 already no-ops in that case,
// but we skip the loop entirely rather than pay N no-op calls.
func advanceLengthPrefixed(buf []byte, pos, lenWidth, elemWidth int, order endian.Order, checked bool) (int, error) {
	if checked && pos+lenWidth > len(buf) {
		return pos, ErrTruncated
	}

	var count int
	switch lenWidth {
	case 2:
		count = int(endian.SwapUint16(buf, pos, order))
	case 4:
		count = int(int32(endian.SwapUint32(buf, pos, order)))
	}
	pos += lenWidth
	if count < 0 {
		// A negative declared length carries no payload, the same as Skip
		// treats it after the parse.
		count = 0
	}

	payload := count * elemWidth
	if checked && pos+payload > len(buf) {
		return pos, ErrTruncated
	}

	if elemWidth > 1 && order != endian.NativeOrder() {
		for i := 0; i < count; i++ {
			off := pos + i*elemWidth
			switch elemWidth {
			case 4:
				endian.SwapUint32(buf, off, order)
			case 8:
				endian.SwapUint64(buf, off, order)
			}
		}
	}

	return pos + payload, nil
}

// ScalarWidth reports the fixed payload width, in bytes, of a scalar kind
// (BYTE/SHORT/INT/LONG/FLOAT/DOUBLE). Used by the post-parse cursors, which
// only ever read in host order and never need to call Advance again.
func ScalarWidth(k Kind) int { return scalarWidth[k] }

// Skip returns the position immediately past the payload of the tag of
// kind k at buf[pos], reading everything in host order and performing no
// bounds checks and no byte swapping. This is what the compound/list
// cursors use to walk sibling items after a parse: every byte has already
// been validated and swapped once by Advance during Parse, so a second
// checked, order-aware pass would be redundant work.
//
// k must not be End, List, or Compound, same restriction as Advance.
func Skip(buf []byte, pos int, k Kind) int {
	switch k {
	case Byte, Short, Int, Long, Float, Double:
		return pos + scalarWidth[k]
	case ByteArray:
		n := int(int32(endian.Uint32(buf, pos, endian.NativeOrder())))
		return pos + 4 + max(n, 0)
	case String:
		n := int(endian.Uint16(buf, pos, endian.NativeOrder()))
		return pos + 2 + n
	case IntArray:
		n := int(int32(endian.Uint32(buf, pos, endian.NativeOrder())))
		return pos + 4 + max(n, 0)*4
	case LongArray:
		n := int(int32(endian.Uint32(buf, pos, endian.NativeOrder())))
		return pos + 4 + max(n, 0)*8
	default:
		panic("tagio: Skip called with a container or END kind")
	}
}
