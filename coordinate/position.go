// Copyright 2026 The omics-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coordinate

import (
	"errors"
	"fmt"
	"strconv"
)

// maxNumber is the largest representable Position value.
const maxNumber = ^Number(0)

// Position is a validated, non-negative coordinate magnitude.
//
// The zero value is position zero.  Positions carry no coordinate system of
// their own: whether a given magnitude is valid depends on the System of the
// Coordinate it is placed in.
type Position struct {
	value Number
}

// NewPosition returns the position with the provided magnitude.
//
// This non-generic constructor is the primary way to build a Position: it
// never forces callers to annotate the type of a numeric literal.  Use
// PositionFrom when converting from another integer type.
func NewPosition(value Number) Position {
	return Position{value: value}
}

// PositionFromInt converts a signed value into a Position.  It fails with
// ErrOutOfRange when value is negative or does not fit the configured width.
func PositionFromInt(value int64) (Position, error) {
	if value < 0 {
		return Position{}, fmt.Errorf("negative value %d: %w", value, ErrOutOfRange)
	}
	if uint64(value) > uint64(maxNumber) {
		return Position{}, fmt.Errorf("value %d exceeds %d-bit width: %w", value, numberBits, ErrOutOfRange)
	}
	return Position{value: Number(value)}, nil
}

// AnyInteger enumerates the integer types accepted by PositionFrom.
type AnyInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// PositionFrom converts any integer value into a Position.  It fails with
// ErrOutOfRange when value is negative or does not fit the configured width.
//
// This generic form exists for interoperability only.  Prefer NewPosition or
// PositionFromInt: at most call sites the unconstrained type parameter makes
// numeric literals ambiguous and forces an annotation.
func PositionFrom[T AnyInteger](value T) (Position, error) {
	if value < 0 {
		return Position{}, fmt.Errorf("negative value %d: %w", value, ErrOutOfRange)
	}
	if uint64(value) > uint64(maxNumber) {
		return Position{}, fmt.Errorf("value %d exceeds %d-bit width: %w", value, numberBits, ErrOutOfRange)
	}
	return Position{value: Number(value)}, nil
}

// ParsePosition attempts to parse input into a Position.  Values outside the
// configured width fail with ErrOutOfRange; malformed text fails with
// ErrInvalidFormat.
func ParsePosition(input string) (Position, error) {
	v, err := strconv.ParseUint(input, 10, numberBits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Position{}, fmt.Errorf("parsing position %q: %w", input, ErrOutOfRange)
		}
		return Position{}, fmt.Errorf("parsing position %q: %w", input, ErrInvalidFormat)
	}
	return Position{value: Number(v)}, nil
}

// Value returns the numeric magnitude of the position.
func (p Position) Value() Number {
	return p.value
}

// String returns the decimal representation of the position.
func (p Position) String() string {
	return strconv.FormatUint(uint64(p.value), 10)
}

// CheckedAdd adds n to the position.  The second return value reports whether
// the addition stayed within the configured width.
func (p Position) CheckedAdd(n Number) (Position, bool) {
	if n > maxNumber-p.value {
		return Position{}, false
	}
	return Position{value: p.value + n}, true
}

// CheckedSub subtracts n from the position.  The second return value reports
// whether the subtraction stayed non-negative.
func (p Position) CheckedSub(n Number) (Position, bool) {
	if n > p.value {
		return Position{}, false
	}
	return Position{value: p.value - n}, true
}

// Distance returns the magnitude of the separation between two positions.
//
// Distance is symmetric and carries no strand or contig information; callers
// comparing positions from different coordinates must check those fields
// themselves, or use Interval.Offset which does.
func (p Position) Distance(o Position) Number {
	if p.value > o.value {
		return p.value - o.value
	}
	return o.value - p.value
}
