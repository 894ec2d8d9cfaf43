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
	"unsafe"

	"github.com/shenjackyuanjie/go-nbt/internal/endian"
	"github.com/shenjackyuanjie/go-nbt/internal/tagio"
)

// Kind re-exports the wire tag kind so callers never need to import an
// internal package to name one. The LIST and COMPOUND kinds are ListKind
// and CompoundKind, since List and Compound name the container types.
type Kind = tagio.Kind

const (
	End          = tagio.End
	Byte         = tagio.Byte
	Short        = tagio.Short
	Int          = tagio.Int
	Long         = tagio.Long
	Float        = tagio.Float
	Double       = tagio.Double
	ByteArray    = tagio.ByteArray
	String       = tagio.String
	ListKind     = tagio.List
	CompoundKind = tagio.Compound
	IntArray     = tagio.IntArray
	LongArray    = tagio.LongArray
)

// Value is the typed façade over one parsed tag: a (kind, offset) pair
// resolved against the owning Document's already-swapped source. Every
// accessor below is a checked downcast: calling the wrong one for v.Kind()
// returns a *TypeError instead of reinterpreting the bytes.
type Value struct {
	doc     *Document
	kind    tagio.Kind
	start   int
	markIdx int // index into doc.marks; meaningful only when kind is LIST or COMPOUND
}

// Kind reports the wire tag kind this value holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) typeErr(want Kind) error { return &TypeError{Want: want, Got: v.kind} }

// Byte returns the payload of a BYTE value.
func (v Value) Byte() (int8, error) {
	if v.kind != tagio.Byte {
		return 0, v.typeErr(tagio.Byte)
	}
	return int8(v.doc.source[v.start]), nil
}

// Short returns the payload of a SHORT value.
func (v Value) Short() (int16, error) {
	if v.kind != tagio.Short {
		return 0, v.typeErr(tagio.Short)
	}
	return int16(endian.Uint16(v.doc.source, v.start, endian.NativeOrder())), nil
}

// Int returns the payload of an INT value.
func (v Value) Int() (int32, error) {
	if v.kind != tagio.Int {
		return 0, v.typeErr(tagio.Int)
	}
	return int32(endian.Uint32(v.doc.source, v.start, endian.NativeOrder())), nil
}

// Long returns the payload of a LONG value.
func (v Value) Long() (int64, error) {
	if v.kind != tagio.Long {
		return 0, v.typeErr(tagio.Long)
	}
	return int64(endian.Uint64(v.doc.source, v.start, endian.NativeOrder())), nil
}

// Float returns the payload of a FLOAT value.
func (v Value) Float() (float32, error) {
	if v.kind != tagio.Float {
		return 0, v.typeErr(tagio.Float)
	}
	return endian.SwapFloat32(v.doc.source, v.start, endian.NativeOrder()), nil
}

// Double returns the payload of a DOUBLE value.
func (v Value) Double() (float64, error) {
	if v.kind != tagio.Double {
		return 0, v.typeErr(tagio.Double)
	}
	return endian.SwapFloat64(v.doc.source, v.start, endian.NativeOrder()), nil
}

// numericScalar is the set of concrete Go types an NBT scalar payload can
// become, matching spec section 4.7's compile-time-checked-kind intent as
// closely as Go generics allow without a non-type template parameter.
type numericScalar interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Scalar decodes v as T, dispatching to the matching typed accessor above
// and reporting a *TypeError if v.Kind() doesn't agree with T.
func Scalar[T numericScalar](v Value) (T, error) {
	switch any(*new(T)).(type) {
	case int8:
		x, err := v.Byte()
		return any(x).(T), err
	case int16:
		x, err := v.Short()
		return any(x).(T), err
	case int32:
		x, err := v.Int()
		return any(x).(T), err
	case int64:
		x, err := v.Long()
		return any(x).(T), err
	case float32:
		x, err := v.Float()
		return any(x).(T), err
	default:
		x, err := v.Double()
		return any(x).(T), err
	}
}

// Bytes returns a zero-copy view of a BYTE_ARRAY payload.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != tagio.ByteArray {
		return nil, v.typeErr(tagio.ByteArray)
	}
	n := int(int32(endian.Uint32(v.doc.source, v.start, endian.NativeOrder())))
	if n <= 0 {
		return nil, nil
	}
	return v.doc.source[v.start+4 : v.start+4+n], nil
}

// StringValue returns a zero-copy view of a STRING payload. Per spec
// section 1's Non-goals, the bytes are not validated as UTF-8 (NBT's wire
// format calls for "modified UTF-8" but this reader treats it as opaque).
func (v Value) StringValue() (string, error) {
	if v.kind != tagio.String {
		return "", v.typeErr(tagio.String)
	}
	n := int(endian.Uint16(v.doc.source, v.start, endian.NativeOrder()))
	if n == 0 {
		return "", nil
	}
	return bytesToString(v.doc.source[v.start+2 : v.start+2+n]), nil
}

// Ints returns a zero-copy []int32 view of an INT_ARRAY payload. This
// works without any further copying because the parser already
// byte-swapped every element to host order in place (spec section 4.2).
func (v Value) Ints() ([]int32, error) {
	if v.kind != tagio.IntArray {
		return nil, v.typeErr(tagio.IntArray)
	}
	n := int(int32(endian.Uint32(v.doc.source, v.start, endian.NativeOrder())))
	if n <= 0 {
		return nil, nil
	}
	return int32SliceAt(v.doc.source, v.start+4, n), nil
}

// Longs returns a zero-copy []int64 view of a LONG_ARRAY payload.
func (v Value) Longs() ([]int64, error) {
	if v.kind != tagio.LongArray {
		return nil, v.typeErr(tagio.LongArray)
	}
	n := int(int32(endian.Uint32(v.doc.source, v.start, endian.NativeOrder())))
	if n <= 0 {
		return nil, nil
	}
	return int64SliceAt(v.doc.source, v.start+4, n), nil
}

// AsCompound returns v as a Compound, or a *TypeError if v is not one.
func (v Value) AsCompound() (Compound, error) {
	if v.kind != tagio.Compound {
		return Compound{}, v.typeErr(tagio.Compound)
	}
	return Compound{doc: v.doc, start: v.start, markIdx: v.markIdx}, nil
}

// AsList returns v as a List, or a *TypeError if v is not one.
func (v Value) AsList() (List, error) {
	if v.kind != tagio.List {
		return List{}, v.typeErr(tagio.List)
	}
	return List{doc: v.doc, headerStart: v.start - 5, start: v.start, markIdx: v.markIdx}, nil
}

// bytesToString borrows b's storage without copying. Safe here because
// every borrowed string is only ever read back out of a Document whose
// backing array outlives it, the same lifetime contract as Value itself.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

func int32SliceAt(buf []byte, off, n int) []int32 {
	return unsafe.Slice((*int32)(unsafe.Pointer(&buf[off])), n)
}

func int64SliceAt(buf []byte, off, n int) []int64 {
	return unsafe.Slice((*int64)(unsafe.Pointer(&buf[off])), n)
}
