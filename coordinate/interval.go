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
	"fmt"
	"strings"
)

// Interval is a contiguous region between two coordinates on the same
// contig, strand, and system.
//
// The start coordinate is the 5'-most point in strand-relative traversal
// order, not the numerically smaller one: on the positive strand start <=
// end numerically, while on the negative strand start >= end.  Under the
// half-open Interbase system start == end denotes an empty region; the
// closed Base system cannot denote an empty region and a width-one interval
// has equal endpoints instead.
type Interval struct {
	start Coordinate
	end   Coordinate
}

// NewInterval returns the interval between start and end.  It fails with
// ErrMismatchedContig, ErrMismatchedStrand, or ErrMismatchedSystem when the
// endpoints disagree on those fields, and with ErrInvalidOrder when their
// numeric order violates the strand ordering rule above.
func NewInterval(start, end Coordinate) (Interval, error) {
	if start.contig != end.contig {
		return Interval{}, fmt.Errorf("%s and %s: %w", start.contig, end.contig, ErrMismatchedContig)
	}
	if start.strand != end.strand {
		return Interval{}, fmt.Errorf("%s and %s: %w", start.strand, end.strand, ErrMismatchedStrand)
	}
	if start.system != end.system {
		return Interval{}, fmt.Errorf("%s and %s: %w", start.system, end.system, ErrMismatchedSystem)
	}

	s, e := start.position.Value(), end.position.Value()
	switch start.strand {
	case Positive:
		if s > e {
			return Interval{}, fmt.Errorf("start %d after end %d on %s strand: %w", s, e, start.strand, ErrInvalidOrder)
		}
	case Negative:
		if s < e {
			return Interval{}, fmt.Errorf("start %d after end %d on %s strand: %w", s, e, start.strand, ErrInvalidOrder)
		}
	}

	return Interval{start: start, end: end}, nil
}

// ParseInterval attempts to parse input, in contig:strand:start-end
// notation, into an interval of the provided system.  The singular form
// contig:strand:position denotes the interval containing only that position.
func ParseInterval(input string, system System) (Interval, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 3 {
		return Interval{}, fmt.Errorf("interval %q: %w", input, ErrInvalidFormat)
	}

	contig, err := NewContig(parts[0])
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", input, err)
	}
	strand, err := ParseStrand(parts[1])
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", input, err)
	}

	positions := strings.Split(parts[2], "-")
	switch len(positions) {
	case 1:
		position, err := ParsePosition(positions[0])
		if err != nil {
			return Interval{}, fmt.Errorf("interval %q: %w", input, err)
		}
		start, err := NewCoordinate(contig, position, strand, system)
		if err != nil {
			return Interval{}, fmt.Errorf("interval %q: %w", input, err)
		}
		// A singular region is [p, p] when the end is inclusive and
		// [p, p+1) when it is not.
		end := start
		if !system.EndInclusive() {
			end, err = start.MoveForward(1)
			if err != nil {
				return Interval{}, fmt.Errorf("interval %q: %w", input, err)
			}
		}
		return NewInterval(start, end)
	case 2:
		startPosition, err := ParsePosition(positions[0])
		if err != nil {
			return Interval{}, fmt.Errorf("interval %q: %w", input, err)
		}
		endPosition, err := ParsePosition(positions[1])
		if err != nil {
			return Interval{}, fmt.Errorf("interval %q: %w", input, err)
		}
		start, err := NewCoordinate(contig, startPosition, strand, system)
		if err != nil {
			return Interval{}, fmt.Errorf("interval %q: %w", input, err)
		}
		end, err := NewCoordinate(contig, endPosition, strand, system)
		if err != nil {
			return Interval{}, fmt.Errorf("interval %q: %w", input, err)
		}
		return NewInterval(start, end)
	default:
		return Interval{}, fmt.Errorf("interval %q: %w", input, ErrInvalidFormat)
	}
}

// Start returns the interval's start coordinate, the 5'-most point in
// traversal order.
func (iv Interval) Start() Coordinate {
	return iv.start
}

// End returns the interval's end coordinate.
func (iv Interval) End() Coordinate {
	return iv.end
}

// Contig returns the contig both endpoints sit on.
func (iv Interval) Contig() Contig {
	return iv.start.contig
}

// Strand returns the strand both endpoints sit on.
func (iv Interval) Strand() Strand {
	return iv.start.strand
}

// System returns the numbering system of both endpoints.
func (iv Interval) System() System {
	return iv.start.system
}

// String returns the interval in contig:strand:start-end notation.
func (iv Interval) String() string {
	return fmt.Sprintf("%s:%s:%s-%s", iv.Contig(), iv.Strand(), iv.start.position, iv.end.position)
}

// Len returns the number of positions the interval covers: |end-start|+1 in
// the closed Base system and |end-start| in the half-open Interbase system.
//
// This is the single place the system- and strand-dependent length formula
// lives; callers must not recompute it by hand.
func (iv Interval) Len() Number {
	d := iv.start.position.Distance(iv.end.position)
	if iv.System().EndInclusive() {
		// A Base interval covers at most [1, maxNumber], so this cannot
		// overflow.
		d++
	}
	return d
}

// Empty reports whether the interval covers no positions.  Only Interbase
// intervals can be empty.
func (iv Interval) Empty() bool {
	return iv.Len() == 0
}

// Contains reports whether c falls within the interval.  A coordinate on a
// different contig, strand, or system is never contained.
func (iv Interval) Contains(c Coordinate) bool {
	if c.contig != iv.start.contig || c.strand != iv.start.strand || c.system != iv.start.system {
		return false
	}

	s, e, p := iv.start.position.Value(), iv.end.position.Value(), c.position.Value()
	if iv.Strand() == Negative {
		if p > s {
			return false
		}
		if iv.System().EndInclusive() {
			return p >= e
		}
		return p > e
	}
	if p < s {
		return false
	}
	if iv.System().EndInclusive() {
		return p <= e
	}
	return p < e
}

// Offset returns the distance from the interval's start to c in traversal
// order.  The second return value reports whether c falls within the
// interval; when it is false the offset is meaningless.
func (iv Interval) Offset(c Coordinate) (Number, bool) {
	if !iv.Contains(c) {
		return 0, false
	}
	return iv.start.position.Distance(c.position), true
}

// CoordinateAtOffset returns the coordinate reached by walking offset
// positions from the start in the strand's forward traversal direction.  It
// fails with ErrOffsetOutOfBounds when the offset is at or beyond Len(): the
// result always lands within the interval.
func (iv Interval) CoordinateAtOffset(offset Number) (Coordinate, error) {
	if offset >= iv.Len() {
		return Coordinate{}, fmt.Errorf("offset %d in interval %s of length %d: %w", offset, iv, iv.Len(), ErrOffsetOutOfBounds)
	}
	return iv.start.MoveForward(offset)
}

// ToBase returns the equivalent interval in the Base system.  An interval
// already in the Base system is returned unchanged.
//
// The endpoint playing the exclusive role moves one position inward: on the
// positive strand [s, e) becomes [s+1, e], and on the negative strand it
// becomes [s, e+1].  Length is preserved exactly.  An empty interval has no
// Base equivalent, because the closed system cannot denote a region of zero
// width; converting one fails with ErrInvalidOrder.
func (iv Interval) ToBase() (Interval, error) {
	if iv.System() == Base {
		return iv, nil
	}
	if iv.Empty() {
		return Interval{}, fmt.Errorf("empty interval %s has no base equivalent: %w", iv, ErrInvalidOrder)
	}

	s, e := iv.start.position.Value(), iv.end.position.Value()
	var ns, ne Number
	if iv.Strand() == Negative {
		ns, ne = s, e+1
	} else {
		ns, ne = s+1, e
	}
	// The increment cannot overflow: in a non-empty interval the shifted
	// endpoint stays at or below the other endpoint.
	return iv.rebuild(ns, ne, Base)
}

// ToInterbase returns the equivalent interval in the Interbase system.  An
// interval already in the Interbase system is returned unchanged.
//
// This is the inverse of ToBase: on the positive strand [s, e] becomes
// [s-1, e), and on the negative strand it becomes [s, e-1).  Length is
// preserved exactly and the conversion never fails for a valid interval.
func (iv Interval) ToInterbase() (Interval, error) {
	if iv.System() == Interbase {
		return iv, nil
	}

	s, e := iv.start.position.Value(), iv.end.position.Value()
	var ns, ne Number
	if iv.Strand() == Negative {
		ns, ne = s, e-1
	} else {
		ns, ne = s-1, e
	}
	// Base positions are at least 1, so the decrement cannot underflow.
	return iv.rebuild(ns, ne, Interbase)
}

func (iv Interval) rebuild(startValue, endValue Number, system System) (Interval, error) {
	start, err := NewCoordinate(iv.Contig(), NewPosition(startValue), iv.Strand(), system)
	if err != nil {
		return Interval{}, err
	}
	end, err := NewCoordinate(iv.Contig(), NewPosition(endValue), iv.Strand(), system)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

// Clamp shortens the interval to fit within the bounds interval.  Endpoints
// of bounds that fall inside the interval replace the corresponding
// endpoint; an interval already inside bounds is returned unchanged.  It
// fails with a Mismatched error when the two intervals disagree on contig,
// strand, or system, and with ErrInvalidOrder when they do not overlap at
// all.
func (iv Interval) Clamp(bounds Interval) (Interval, error) {
	if iv.Contig() != bounds.Contig() {
		return Interval{}, fmt.Errorf("clamping %s to %s: %w", iv, bounds, ErrMismatchedContig)
	}
	if iv.Strand() != bounds.Strand() {
		return Interval{}, fmt.Errorf("clamping %s to %s: %w", iv, bounds, ErrMismatchedStrand)
	}
	if iv.System() != bounds.System() {
		return Interval{}, fmt.Errorf("clamping %s to %s: %w", iv, bounds, ErrMismatchedSystem)
	}

	s, e := iv.start.position.Value(), iv.end.position.Value()
	bs, be := bounds.start.position.Value(), bounds.end.position.Value()
	var ns, ne Number
	if iv.Strand() == Negative {
		ns, ne = min(s, bs), max(e, be)
	} else {
		ns, ne = max(s, bs), min(e, be)
	}
	return iv.rebuild(ns, ne, iv.System())
}

// Complement returns the interval containing the same positions viewed from
// the opposite strand.  The endpoints swap roles, since the 5'-most point of
// one strand is the 3'-most point of the other.  In the closed Base system
// the swap alone suffices; in the half-open Interbase system both swapped
// endpoints also move one step forward in the new traversal direction, so
// that the exclusive end keeps excluding the same position.  Length is
// preserved and complementing twice returns the original interval.
//
// It fails with ErrOutOfRange when a shifted endpoint is not representable,
// such as the complement of a positive Interbase interval touching position
// zero.
func (iv Interval) Complement() (Interval, error) {
	start := iv.end.WithStrand(iv.end.strand.Other())
	end := iv.start.WithStrand(iv.start.strand.Other())
	if !iv.System().EndInclusive() {
		var err error
		if start, err = start.MoveForward(1); err != nil {
			return Interval{}, fmt.Errorf("complementing %s: %w", iv, err)
		}
		if end, err = end.MoveForward(1); err != nil {
			return Interval{}, fmt.Errorf("complementing %s: %w", iv, err)
		}
	}
	return NewInterval(start, end)
}
