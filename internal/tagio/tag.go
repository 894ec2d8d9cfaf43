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

// Package tagio implements the per-tag "advance" routines from spec
// section 4.2: given a cursor positioned at the start of a tag's payload,
// swap every numeric field in that payload to host endianness in place and
// report how far the cursor moved.
//
// Grounded on na_nbt_impl.hpp's three copies of the same id-dispatch
// switch (root dispatch ~line 1365, comp_item_begin ~line 1541,
// list_item_begin ~line 1765) — all three switches share one body, which
// this package collapses into a single Advance function that the parser
// calls from all three places, instead of maintaining it three times over.
// The post-parse compound/list cursors use Skip, which moves past a
// payload without swapping or bounds checks.
package tagio

// Kind is a wire tag id (spec section 3's tag table).
type Kind uint8

const (
	End       Kind = 0
	Byte      Kind = 1
	Short     Kind = 2
	Int       Kind = 3
	Long      Kind = 4
	Float     Kind = 5
	Double    Kind = 6
	ByteArray Kind = 7
	String    Kind = 8
	List      Kind = 9
	Compound  Kind = 10
	IntArray  Kind = 11
	LongArray Kind = 12
)

// Valid reports whether k is one of the 13 legal tag ids (0..12). Any other
// value appearing where a tag id is expected is an "invalid" parse error
// (spec section 4.3, "Invalid tag ids").
func (k Kind) Valid() bool { return k <= LongArray }

// IsContainer reports whether k is LIST or COMPOUND, the two kinds the
// parser re-enters its state machine for instead of delegating to Advance.
func (k Kind) IsContainer() bool { return k == List || k == Compound }

// String implements fmt.Stringer for debugging/error messages.
func (k Kind) String() string {
	switch k {
	case End:
		return "END"
	case Byte:
		return "BYTE"
	case Short:
		return "SHORT"
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case String:
		return "STRING"
	case List:
		return "LIST"
	case Compound:
		return "COMPOUND"
	case IntArray:
		return "INT_ARRAY"
	case LongArray:
		return "LONG_ARRAY"
	default:
		return "INVALID"
	}
}
