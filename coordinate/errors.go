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

import "errors"

// Every fallible constructor or conversion in this package reports one of the
// error kinds below, wrapped with context describing the failing value.  Use
// errors.Is to match a kind.  None of these failures is fatal: each one is a
// caller-correctable input error.
var (
	// ErrOutOfRange indicates a numeric value that cannot be represented as
	// a valid Position for the configured width, or a move or conversion
	// that would leave the valid range of its coordinate system.
	ErrOutOfRange = errors.New("position out of range")

	// ErrEmptyName indicates a Contig constructed from an empty name.
	ErrEmptyName = errors.New("empty contig name")

	// ErrInvalidStrand indicates a strand value other than "+" or "-".
	ErrInvalidStrand = errors.New("invalid strand")

	// ErrInvalidSystem indicates an unknown coordinate system name.
	ErrInvalidSystem = errors.New("invalid coordinate system")

	// ErrInvalidPosition indicates a Coordinate whose position violates the
	// minimum-value rule of its coordinate system.
	ErrInvalidPosition = errors.New("position not valid for coordinate system")

	// ErrMismatchedContig indicates interval endpoints on different contigs.
	ErrMismatchedContig = errors.New("mismatched contigs")

	// ErrMismatchedStrand indicates interval endpoints on different strands.
	ErrMismatchedStrand = errors.New("mismatched strands")

	// ErrMismatchedSystem indicates interval endpoints in different
	// coordinate systems.
	ErrMismatchedSystem = errors.New("mismatched coordinate systems")

	// ErrInvalidOrder indicates interval endpoints whose numeric order
	// violates the strand and system ordering rule.
	ErrInvalidOrder = errors.New("start and end positions out of order")

	// ErrOffsetOutOfBounds indicates an offset at or beyond the interval
	// length.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")

	// ErrInvalidFormat indicates text that does not follow the
	// contig:strand:position notation.
	ErrInvalidFormat = errors.New("invalid format")
)
