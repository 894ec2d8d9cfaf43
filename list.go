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

package nbt

import (
	"iter"
	"unsafe"

	"github.com/shenjackyuanjie/go-nbt/internal/dbg"
	"github.com/shenjackyuanjie/go-nbt/internal/endian"
	"github.com/shenjackyuanjie/go-nbt/internal/tagio"
)

// List is a LIST value: a homogeneous, length-prefixed sequence of one
// declared element kind (spec section 3). A list of END is legal and
// carries no payload for any of its declared-length elements (spec
// section 12.2).
//
// Len and ElementKind read the 5-byte header straight out of the source
// rather than through the mark arena: the mark's transient list-length
// bookkeeping only needs to survive until the parser closes the list (it
// is overwritten by the final end/flat-next-mark form at that point, the
// same union-of-two-interpretations design as the C++ original's mark_t),
// so a List built after parsing re-derives its header the same way
// nbt_list itself does in the original, by reading element_type/length
// back off the wire instead of off the mark.
type List struct {
	doc         *Document
	headerStart int // offset of the 1-byte element kind that starts the header
	start       int // offset of the first element, past the 5-byte header
	markIdx     int
}

// Len reports the list's declared element count.
func (l List) Len() int {
	return int(int32(endian.Uint32(l.doc.source, l.headerStart+1, endian.NativeOrder())))
}

// ElementKind reports the list's declared element kind.
func (l List) ElementKind() Kind {
	return tagio.Kind(l.doc.source[l.headerStart])
}

// All iterates every element in order. Stop ranging early to abandon the
// walk, same as Compound.All.
func (l List) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		elemKind := l.ElementKind()
		total := l.Len()
		pos := l.start
		nested := l.markIdx + 1

		for i := 0; i < total; i++ {
			var val Value
			switch {
			case elemKind == tagio.End:
				val = Value{doc: l.doc, kind: tagio.End}
			case elemKind.IsContainer():
				dbg.Assert(l.doc.marks != nil && nested < l.doc.marks.Len(), "List.All: nested mark %d out of range", nested)
				em := l.doc.marks.At(nested)
				payloadStart := pos
				if elemKind == tagio.List {
					payloadStart += 5
				}
				val = Value{doc: l.doc, kind: elemKind, start: payloadStart, markIdx: nested}
				pos = em.End()
				nested += em.FlatNextMark()
			default:
				val = Value{doc: l.doc, kind: elemKind, start: pos}
				pos = tagio.Skip(l.doc.source, pos, elemKind)
			}

			if !yield(val) {
				return
			}
		}
	}
}

// kindFor reports the tag kind a LIST of T must declare for Elements[T] to
// apply, mirroring the switch Scalar[T] dispatches on.
func kindFor[T numericScalar]() Kind {
	switch any(*new(T)).(type) {
	case int8:
		return tagio.Byte
	case int16:
		return tagio.Short
	case int32:
		return tagio.Int
	case int64:
		return tagio.Long
	case float32:
		return tagio.Float
	default:
		return tagio.Double
	}
}

// Elements returns a zero-copy []T view over a LIST whose declared element
// kind is the fixed-width scalar matching T (spec section 4.7: "LIST of
// scalar -> borrow of a typed contiguous slice (payload is already packed,
// already swapped)"). Unlike BYTE_ARRAY/INT_ARRAY/LONG_ARRAY, a list's
// elements carry no per-element length prefix of their own — the list
// header's declared length already bounds them — so every element is
// tightly packed right after the header exactly like those arrays' inner
// payloads, and this is a direct reinterpretation of that span.
//
// Returns a *TypeError if the list's declared element kind doesn't match T,
// or if the element kind is END, LIST, or COMPOUND (none of which are
// numericScalar).
func Elements[T numericScalar](l List) ([]T, error) {
	want := kindFor[T]()
	got := l.ElementKind()
	if got != want {
		return nil, &TypeError{Want: want, Got: got}
	}
	n := l.Len()
	if n <= 0 {
		return nil, nil
	}
	return elementSliceAt[T](l.doc.source, l.start, n), nil
}

func elementSliceAt[T numericScalar](buf []byte, off, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[off])), n)
}

// At returns the element at index i, scanning from the start of the list.
// Random access into a list's elements costs O(i), not O(1): the mark
// arena records container boundaries, not a per-element index, matching
// spec section 9's lazy-random-access design (navigating INTO a nested
// container is free; indexing a flat run of scalars before it is not).
func (l List) At(i int) (Value, bool) {
	if i < 0 || i >= l.Len() {
		return Value{}, false
	}
	idx := 0
	for v := range l.All() {
		if idx == i {
			return v, true
		}
		idx++
	}
	return Value{}, false
}
