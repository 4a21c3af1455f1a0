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

// Package coordinate provides validated genomic coordinate types: positions,
// strands, contigs, single coordinates, and intervals, in both the interbase
// (0-based, half-open) and base (1-based, fully-closed) numbering systems.
//
// All types are immutable values with structural equality; transformations
// return new values.  Every value carries its System tag and every operation
// that combines two values verifies that contig, strand, and system agree, so
// client code can never silently mix the two numbering conventions.  All
// system- and strand-dependent arithmetic lives here; consumers hold
// Coordinate and Interval values as opaque, validated regions.
//
// Coordinates are written in the notation contig:strand:position (for
// example, "chr1:+:100") and intervals as contig:strand:start-end (for
// example, "chr1:-:200-100").  The same notation is used for both systems;
// the system is supplied separately when parsing.
package coordinate

import (
	"fmt"
	"strings"
)

// Coordinate is a single addressable point: a position on a contig, on a
// strand, in a coordinate system.
type Coordinate struct {
	contig   Contig
	position Position
	strand   Strand
	system   System
}

// NewCoordinate returns the coordinate with the provided fields.  It fails
// with ErrInvalidPosition when the position is below the system's minimum
// (1 for Base, 0 for Interbase).
func NewCoordinate(contig Contig, position Position, strand Strand, system System) (Coordinate, error) {
	if position.Value() < system.MinPosition() {
		return Coordinate{}, fmt.Errorf("position %s in %s system: %w", position, system, ErrInvalidPosition)
	}
	return Coordinate{
		contig:   contig,
		position: position,
		strand:   strand,
		system:   system,
	}, nil
}

// ParseCoordinate attempts to parse input, in contig:strand:position
// notation, into a coordinate of the provided system.
func ParseCoordinate(input string, system System) (Coordinate, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", input, ErrInvalidFormat)
	}

	contig, err := NewContig(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", input, err)
	}
	strand, err := ParseStrand(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", input, err)
	}
	position, err := ParsePosition(parts[2])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", input, err)
	}
	return NewCoordinate(contig, position, strand, system)
}

// Contig returns the contig the coordinate sits on.
func (c Coordinate) Contig() Contig {
	return c.contig
}

// Position returns the coordinate's position.
func (c Coordinate) Position() Position {
	return c.position
}

// Strand returns the strand the coordinate sits on.
func (c Coordinate) Strand() Strand {
	return c.strand
}

// System returns the coordinate's numbering system.
func (c Coordinate) System() System {
	return c.system
}

// String returns the coordinate in contig:strand:position notation.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s:%s:%s", c.contig, c.strand, c.position)
}

// WithSystem returns the same point expressed in the target system, applying
// the fixed numeric shift between the two conventions: converting Base to
// Interbase subtracts one from the position and Interbase to Base adds one.
// Contig and strand are preserved.  Converting to the system the coordinate
// is already in returns the coordinate unchanged.
//
// The only possible failure is ErrOutOfRange, when adding one would exceed
// the configured position width.
func (c Coordinate) WithSystem(target System) (Coordinate, error) {
	if target == c.system {
		return c, nil
	}
	switch target {
	case Interbase:
		// Base positions start at 1, so the decrement cannot underflow.
		return Coordinate{
			contig:   c.contig,
			position: Position{value: c.position.value - 1},
			strand:   c.strand,
			system:   Interbase,
		}, nil
	default:
		position, ok := c.position.CheckedAdd(1)
		if !ok {
			return Coordinate{}, fmt.Errorf("converting %s to %s: %w", c, target, ErrOutOfRange)
		}
		return Coordinate{
			contig:   c.contig,
			position: position,
			strand:   c.strand,
			system:   Base,
		}, nil
	}
}

// WithStrand returns the coordinate re-tagged with the target strand.  The
// numeric position is unchanged: re-stranding a lone point is a
// reinterpretation, not an arithmetic operation, and the caller is
// responsible for what reversing the strand of a single point means.
func (c Coordinate) WithStrand(target Strand) Coordinate {
	c.strand = target
	return c
}

// MoveForward returns the coordinate reached by walking magnitude positions
// in the strand's forward traversal direction: toward higher numeric
// positions on the positive strand and lower on the negative strand.  It
// fails with ErrOutOfRange when the walk would leave the system's valid
// range.
func (c Coordinate) MoveForward(magnitude Number) (Coordinate, error) {
	return c.move(magnitude, c.strand == Negative)
}

// MoveBackward returns the coordinate reached by walking magnitude positions
// against the strand's traversal direction.  It fails with ErrOutOfRange when
// the walk would leave the system's valid range.
func (c Coordinate) MoveBackward(magnitude Number) (Coordinate, error) {
	return c.move(magnitude, c.strand == Positive)
}

func (c Coordinate) move(magnitude Number, decreasing bool) (Coordinate, error) {
	var position Position
	var ok bool
	if decreasing {
		position, ok = c.position.CheckedSub(magnitude)
	} else {
		position, ok = c.position.CheckedAdd(magnitude)
	}
	if !ok || position.Value() < c.system.MinPosition() {
		return Coordinate{}, fmt.Errorf("moving %s by %d: %w", c, magnitude, ErrOutOfRange)
	}
	c.position = position
	return c, nil
}
