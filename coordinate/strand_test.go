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
	"testing"
)

func TestParseStrand(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Strand
		err   error
	}{
		{"positive", "+", Positive, nil},
		{"negative", "-", Negative, nil},
		{"empty", "", 0, ErrInvalidStrand},
		{"unknown", "?", 0, ErrInvalidStrand},
		{"word", "plus", 0, ErrInvalidStrand},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStrand(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Wrong error for %q: got %v, want %v", tc.input, err, tc.err)
			}
			if err == nil && got != tc.want {
				t.Errorf("Wrong strand: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStrand_Other(t *testing.T) {
	if got, want := Positive.Other(), Negative; got != want {
		t.Errorf("Wrong opposite strand: got %v, want %v", got, want)
	}
	if got, want := Negative.Other(), Positive; got != want {
		t.Errorf("Wrong opposite strand: got %v, want %v", got, want)
	}
}

func TestStrand_String(t *testing.T) {
	if got, want := Positive.String(), "+"; got != want {
		t.Errorf("Wrong string result: got %q, want %q", got, want)
	}
	if got, want := Negative.String(), "-"; got != want {
		t.Errorf("Wrong string result: got %q, want %q", got, want)
	}
}
