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
	"fmt"

	"github.com/shenjackyuanjie/go-nbt/internal/parser"
)

// EndOfFileError is returned by Read when bounds checking is enabled and a
// tag, name, or payload would read past the end of the source. Offset is
// the byte position at which the read would have crossed the boundary.
type EndOfFileError struct {
	Offset int
}

func (e *EndOfFileError) Error() string {
	return fmt.Sprintf("nbt: unexpected end of source at offset %d", e.Offset)
}

// InvalidTagError is returned by Read when a byte that should be a tag id
// (0-12) holds some other value. Offset is the position of the bad id.
type InvalidTagError struct {
	Offset int
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("nbt: invalid tag id at offset %d", e.Offset)
}

// TypeError is returned by Value's typed accessors when the value's actual
// Kind does not match the one the caller asked for.
type TypeError struct {
	Want, Got Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("nbt: wrong type: want %s, got %s", e.Want, e.Got)
}

// wrapParseError converts the internal parser error into the public error
// types above, preserving the byte offset.
func wrapParseError(err error) error {
	pe, ok := err.(*parser.Error)
	if !ok {
		return err
	}
	switch pe.Code {
	case parser.ErrInvalidTag:
		return &InvalidTagError{Offset: pe.Offset}
	default:
		return &EndOfFileError{Offset: pe.Offset}
	}
}
