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

// Package parser implements the single-pass, iterative parser from spec
// section 4.3: it validates tag structure, byte-swaps every numeric
// payload to host endianness in place, and records one mark per nested
// LIST/COMPOUND into a mark.Arena.
//
// Grounded on na_nbt_impl.hpp's read() (lines 1318-1892): the root
// dispatch, the comp_begin/comp_item_begin/comp_end labels, and the
// list_begin/list_general_begin/list_item_begin/list_end labels. This
// implementation keeps the original's iterative shape rather than
// recursion (spec.md section 9: "explicit parent chain, no recursion"):
// the original's goto labels become one loop in run that dispatches each
// step to compoundItem or listItem, with the open containers chained
// through the mark arena instead of the call stack.
package parser

import (
	"github.com/shenjackyuanjie/go-nbt/internal/dbg"
	"github.com/shenjackyuanjie/go-nbt/internal/endian"
	"github.com/shenjackyuanjie/go-nbt/internal/mark"
	"github.com/shenjackyuanjie/go-nbt/internal/tagio"
)

// ErrCode distinguishes the two parse failure kinds from spec section 7.
type ErrCode int

const (
	_ ErrCode = iota
	ErrTruncated
	ErrInvalidTag
)

// Error is returned by Parse on failure. Offset is the byte position in
// the source at which the problem was detected.
type Error struct {
	Code   ErrCode
	Offset int
}

func (e *Error) Error() string {
	if e.Code == ErrInvalidTag {
		return "nbt: invalid tag id"
	}
	return "nbt: unexpected end of source"
}

// Result is everything a successful parse produces beyond the mutated
// source buffer itself.
type Result struct {
	RootKind        tagio.Kind
	KeyStart, KeyLen int
	ValueStart      int
	Marks           *mark.Arena // nil when the root is not a LIST or COMPOUND
}

// Options configures a parse. Order is the source document's declared byte
// order; Checked enables the bounds-checked read path from spec section
// 4.3.
type Options struct {
	Order   endian.Order
	Checked bool
}

// Parse runs the single-pass parser over buf, mutating it in place (every
// numeric field is rewritten to host endianness as it is crossed), and
// returns the information needed to construct a Document.
func Parse(buf []byte, opts Options) (Result, error) {
	var res Result
	order := opts.Order
	checked := opts.Checked

	if checked && len(buf) < 1 {
		return res, &Error{ErrTruncated, 0}
	}

	rootKind := tagio.Kind(buf[0])
	if !rootKind.Valid() {
		dbg.Log(nil, "root", "invalid tag id %#x at offset 0", buf[0])
		return res, &Error{ErrInvalidTag, 0}
	}
	res.RootKind = rootKind
	dbg.Log(nil, "root", "kind %v, order %v, checked %v", rootKind, order, checked)

	if rootKind == tagio.End {
		// spec section 6: "a single END id at offset 0 is treated as an
		// empty document" — no name, no payload, no marks.
		return res, nil
	}

	pos := 1
	if checked && pos+2 > len(buf) {
		return res, &Error{ErrTruncated, pos}
	}
	nameLen := int(endian.SwapUint16(buf, pos, order))
	namePos := pos + 2
	if checked && namePos+nameLen > len(buf) {
		return res, &Error{ErrTruncated, namePos}
	}
	res.KeyStart, res.KeyLen = namePos, nameLen
	pos = namePos + nameLen
	res.ValueStart = pos

	if !rootKind.IsContainer() {
		next, err := tagio.Advance(buf, pos, rootKind, order, checked)
		if err != nil {
			return res, &Error{ErrTruncated, next}
		}
		return res, nil
	}

	marks, _, err := run(buf, pos, rootKind, order, checked)
	res.Marks = marks
	if err != nil {
		return res, err
	}
	return res, nil
}

// run drives the container state machine starting at a root LIST or
// COMPOUND whose tag id + name have already been consumed and whose
// payload begins at pos. It mirrors na_nbt_impl.hpp's general_start label
// onward.
func run(buf []byte, pos int, rootKind tagio.Kind, order endian.Order, checked bool) (*mark.Arena, int, error) {
	arena := mark.NewArena(len(buf))

	var current, parent int
	var err error

	if rootKind == tagio.List {
		current = arena.Open(0)
		pos, err = openList(arena, current, buf, pos, order, checked)
		if err != nil {
			return arena, pos, err
		}
	} else {
		current = arena.Open(0)
		arena.CompoundInit(current)
	}

	for {
		if arena.At(current).IsCompound() {
			pos, current, parent, err = compoundItem(arena, current, parent, buf, pos, order, checked)
		} else {
			pos, current, parent, err = listItem(arena, current, parent, buf, pos, order, checked)
		}
		if err != nil {
			return arena, pos, err
		}
		if current < 0 {
			// Root container closed; parsing is complete.
			dbg.Log([]any{"%d marks", arena.Len()}, "done", "pos %d", pos)
			return arena, pos, nil
		}
		dbg.Assert(current >= 0 && current < arena.Len(), "current mark %d out of range", current)
	}
}

// compoundItem processes exactly one step of the compound-item loop
// (na_nbt_impl.hpp comp_item_begin). On an END id it closes the compound
// and walks one step up the parent chain (comp_end); on a container id it
// opens a new mark and descends (comp_begin/list_begin); otherwise it
// advances past one scalar/array/string entry.
//
// Returns the new (pos, current, parent). current == -1 signals that the
// root container has just closed and the parse is finished.
func compoundItem(arena *mark.Arena, current, parent int, buf []byte, pos int, order endian.Order, checked bool) (int, int, int, error) {
	if checked && pos+1 > len(buf) {
		return pos, current, parent, &Error{ErrTruncated, pos}
	}
	id := tagio.Kind(buf[pos])
	pos++

	if id == tagio.End {
		return closeContainer(arena, current, parent, pos)
	}

	if !id.Valid() {
		dbg.Log(nil, "comp-item", "invalid tag id %#x at offset %d", buf[pos-1], pos-1)
		return pos, current, parent, &Error{ErrInvalidTag, pos - 1}
	}

	if checked && pos+2 > len(buf) {
		return pos, current, parent, &Error{ErrTruncated, pos}
	}
	nameLen := int(endian.SwapUint16(buf, pos, order))
	pos += 2
	if checked && pos+nameLen > len(buf) {
		return pos, current, parent, &Error{ErrTruncated, pos}
	}
	pos += nameLen

	if id.IsContainer() {
		parent = current
		current = arena.Open(parent)
		dbg.Log([]any{"mark %d", current}, "comp-item", "open %v at pos %d", id, pos)
		var err error
		if id == tagio.List {
			pos, err = openList(arena, current, buf, pos, order, checked)
		} else {
			arena.CompoundInit(current)
		}
		return pos, current, parent, err
	}

	next, err := tagio.Advance(buf, pos, id, order, checked)
	if err != nil {
		return next, current, parent, &Error{ErrTruncated, next}
	}
	return next, current, parent, nil
}

// listItem processes exactly one step of the list-item loop
// (na_nbt_impl.hpp list_item_begin).
func listItem(arena *mark.Arena, current, parent int, buf []byte, pos int, order endian.Order, checked bool) (int, int, int, error) {
	if arena.ListExhausted(current) {
		return closeContainer(arena, current, parent, pos)
	}
	arena.ListIncrement(current)

	m := arena.At(current)
	kind := tagio.Kind(m.ListElementKind())
	dbg.Assert(kind.Valid(), "list %d has invalid declared element kind %#x", current, uint8(kind))

	if kind == tagio.End {
		return pos, current, parent, nil
	}

	if kind.IsContainer() {
		parent = current
		current = arena.Open(parent)
		dbg.Log([]any{"mark %d", current}, "list-item", "open %v at pos %d", kind, pos)
		var err error
		if kind == tagio.List {
			pos, err = openList(arena, current, buf, pos, order, checked)
		} else {
			arena.CompoundInit(current)
		}
		return pos, current, parent, err
	}

	next, err := tagio.Advance(buf, pos, kind, order, checked)
	if err != nil {
		return next, current, parent, &Error{ErrTruncated, next}
	}
	return next, current, parent, nil
}

// openList reads a list header (element kind byte + int32 length) at pos,
// initializes the mark at idx as a list, and returns the position of the
// list's first element payload.
//
// A negative declared length (malformed input, or the "no elements"
// convention some NBT producers use) is clamped to zero rather than
// treated as an error: spec section 4.3's "List of END" edge case already
// establishes that a zero-payload, nonzero-length list is legal, and a
// negative length carries no further payload either way.
func openList(arena *mark.Arena, idx int, buf []byte, pos int, order endian.Order, checked bool) (int, error) {
	if checked && pos+1+4 > len(buf) {
		return pos, &Error{ErrTruncated, pos}
	}
	elemKind := tagio.Kind(buf[pos])
	pos++
	if !elemKind.Valid() {
		dbg.Log(nil, "open-list", "invalid element kind %#x at offset %d", buf[pos-1], pos-1)
		return pos, &Error{ErrInvalidTag, pos - 1}
	}
	length := int(int32(endian.SwapUint32(buf, pos, order)))
	pos += 4
	if length < 0 {
		length = 0
	}
	dbg.Log([]any{"mark %d", idx}, "open-list", "element %v, length %d", elemKind, length)
	arena.ListInit(idx, uint8(elemKind), length)
	return pos, nil
}

// closeContainer writes the final mark for the container at `current`,
// then walks one step up the parent chain, matching na_nbt_impl.hpp's
// comp_end/list_end:
//
//	current->store.end = current_pos
//	current->store.flat_next_mark = use_end - current + 1
//	current = parent
//	parent = parent - parent->cache.general_parrent_offset
//
// If current's own ParentOffset was already zero, this container IS the
// root and the parse is complete; we signal that by returning current=-1.
func closeContainer(arena *mark.Arena, current, parent int, pos int) (int, int, int, error) {
	wasRoot := arena.At(current).ParentOffset() == 0
	arena.Close(current, pos)
	dbg.Log([]any{"mark %d", current}, "close", "end %d, root %v", pos, wasRoot)
	if wasRoot {
		return pos, -1, parent, nil
	}

	nextParent := parent - arena.At(parent).ParentOffset()
	dbg.Assert(nextParent >= 0, "negative parent index %d walking up from %d", nextParent, parent)
	return pos, parent, nextParent, nil
}
