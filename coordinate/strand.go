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

// Strand is the orientation of a coordinate or interval along its contig.
// It determines which physical direction "increasing position" moves in
// traversal order: toward higher numeric positions on the positive strand and
// toward lower numeric positions on the negative strand.
type Strand int

const (
	// Positive is the forward strand ("+").
	Positive Strand = iota

	// Negative is the reverse strand ("-").
	Negative
)

// Other returns the opposite strand.
func (s Strand) Other() Strand {
	if s == Positive {
		return Negative
	}
	return Positive
}

// String returns "+" for the positive strand and "-" for the negative strand.
func (s Strand) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// ParseStrand attempts to parse input into a Strand.
func ParseStrand(input string) (Strand, error) {
	switch input {
	case "+":
		return Positive, nil
	case "-":
		return Negative, nil
	case "":
		return 0, fmt.Errorf("empty strand: %w", ErrInvalidStrand)
	default:
		return 0, fmt.Errorf("strand %q: %w", input, ErrInvalidStrand)
	}
}
