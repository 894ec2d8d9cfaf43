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

	"github.com/shenjackyuanjie/go-nbt/internal/dbg"
	"github.com/shenjackyuanjie/go-nbt/internal/endian"
	"github.com/shenjackyuanjie/go-nbt/internal/tagio"
)

// Compound is a COMPOUND value: an unordered, END-terminated sequence of
// named entries. Entries are walked linearly from the start of the
// compound's payload every time; nested containers are skipped in O(1) by
// jumping straight to their recorded mark instead of being re-parsed
// (spec section 3, the mark arena's whole reason for existing).
type Compound struct {
	doc     *Document
	start   int // offset of the first entry's tag id
	markIdx int
}

// All iterates every entry in source order, matching Testable Property 5
// ("first occurrence in source order" — compounds are never hashed or
// reordered). Stop ranging early to abandon the walk.
func (c Compound) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		walkCompound(c.doc, c.start, c.markIdx, yield)
	}
}

// Find returns the first entry named key, scanning in source order. Per
// spec section 4.4, a compound with a repeated key is not itself an
// error; Find returns the first occurrence only.
func (c Compound) Find(key string) (Value, bool) {
	var found Value
	var ok bool
	walkCompound(c.doc, c.start, c.markIdx, func(k string, v Value) bool {
		if k == key {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// walkCompound is the single entry-walking routine shared by All and
// Find. yield returning false stops the walk early, same contract as
// iter.Seq2.
func walkCompound(doc *Document, start, markIdx int, yield func(string, Value) bool) {
	pos := start
	nested := markIdx + 1
	for {
		id := tagio.Kind(doc.source[pos])
		pos++
		if id == tagio.End {
			return
		}

		nameLen := int(endian.Uint16(doc.source, pos, endian.NativeOrder()))
		pos += 2
		keyStart := pos
		pos += nameLen
		key := bytesToString(doc.source[keyStart : keyStart+nameLen])

		var val Value
		if id.IsContainer() {
			dbg.Assert(doc.marks != nil && nested < doc.marks.Len(), "walkCompound: nested mark %d out of range", nested)
			m := doc.marks.At(nested)
			payloadStart := pos
			if id == tagio.List {
				payloadStart += 5
			}
			val = Value{doc: doc, kind: id, start: payloadStart, markIdx: nested}
			pos = m.End()
			nested += m.FlatNextMark()
		} else {
			val = Value{doc: doc, kind: id, start: pos}
			pos = tagio.Skip(doc.source, pos, id)
		}

		if !yield(key, val) {
			return
		}
	}
}
