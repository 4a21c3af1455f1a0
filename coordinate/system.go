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

import "fmt"

// System distinguishes the two genomic numbering conventions.
//
// Every Coordinate and Interval is tagged with its System, and every
// operation combining two values checks that the tags agree.  Values from
// different systems never mix without an explicit conversion
// (Coordinate.WithSystem, Interval.ToBase, Interval.ToInterbase).
type System int

const (
	// Interbase is the 0-based, half-open system: positions start at 0 and
	// denote the points between bases, and an interval [s, e) excludes its
	// end position.
	Interbase System = iota

	// Base is the 1-based, fully-closed system: positions start at 1 and
	// denote bases themselves, and an interval [s, e] includes both
	// endpoints.
	Base
)

// MinPosition returns the smallest valid position value in the system.
func (s System) MinPosition() Number {
	if s == Base {
		return 1
	}
	return 0
}

// EndInclusive reports whether an interval's end position is part of the
// region it denotes.
func (s System) EndInclusive() bool {
	return s == Base
}

// String returns the name of the system.
func (s System) String() string {
	if s == Base {
		return "base"
	}
	return "interbase"
}

// ParseSystem attempts to parse input into a System.
func ParseSystem(input string) (System, error) {
	switch input {
	case "interbase":
		return Interbase, nil
	case "base":
		return Base, nil
	default:
		return 0, fmt.Errorf("system %q: %w", input, ErrInvalidSystem)
	}
}
