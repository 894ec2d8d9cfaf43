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
	"github.com/shenjackyuanjie/go-nbt/internal/endian"
)

// readConfig holds the resolved settings for a single Read call.
// defaultConfig returns the defaults documented on each With* option
// below; the zero value differs from them in having bounds checking off.
type readConfig struct {
	order   endian.Order
	checked bool
	inPlace bool
}

// Option configures a Read call. The functional-options pattern here
// mirrors the one the teacher repo uses for its decoder construction.
type Option func(*readConfig)

// WithByteOrder sets the byte order the source document was encoded with.
// Big endian is the default, matching the format's most common producers.
func WithByteOrder(order ByteOrder) Option {
	return func(c *readConfig) {
		if order == LittleEndian {
			c.order = endian.Little
		} else {
			c.order = endian.Big
		}
	}
}

// WithBoundsCheck enables or disables the bounds-checked read path. It is
// enabled by default; disabling it (WithBoundsCheck(false)) removes every
// length/position check in exchange for speed, and is only safe when the
// source is already known to be well-formed (spec section 4.3's "trusted"
// mode, the runtime analogue of the original's compile-time bound_check
// template parameter).
func WithBoundsCheck(enabled bool) Option {
	return func(c *readConfig) { c.checked = enabled }
}

// WithInPlace lets Read mutate the caller's buf directly instead of taking
// an owned copy first. It is off by default: Read copies buf up front, so
// the caller's slice is untouched and the returned Document owns storage
// that outlives it safely. Pass WithInPlace(true) when the caller already
// owns buf exclusively and wants to avoid the copy, matching spec section
// 2's "in-place" mode; the source bytes are then rewritten to host
// endianness as a side effect of Read, exactly as WithInPlace(false)'s
// internal copy is.
func WithInPlace(enabled bool) Option {
	return func(c *readConfig) { c.inPlace = enabled }
}

// ByteOrder names a document's declared byte order.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func defaultConfig() readConfig {
	return readConfig{order: endian.Big, checked: true}
}
