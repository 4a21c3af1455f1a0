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

func TestPositionFromInt(t *testing.T) {
	testCases := []struct {
		name  string
		input int64
		want  Number
		err   error
	}{
		{"zero", 0, 0, nil},
		{"one", 1, 1, nil},
		{"large", 1 << 30, 1 << 30, nil},
		{"negative", -1, 0, ErrOutOfRange},
		{"very negative", -1 << 40, 0, ErrOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PositionFromInt(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Wrong error for %d: got %v, want %v", tc.input, err, tc.err)
			}
			if err == nil && got.Value() != tc.want {
				t.Errorf("Wrong value: got %d, want %d", got.Value(), tc.want)
			}
		})
	}
}

func TestPositionFrom(t *testing.T) {
	if _, err := PositionFrom(int8(-5)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Wrong error for negative input: got %v, want %v", err, ErrOutOfRange)
	}
	got, err := PositionFrom(uint16(42))
	if err != nil {
		t.Fatalf("Got error converting uint16: %v", err)
	}
	if want := Number(42); got.Value() != want {
		t.Errorf("Wrong value: got %d, want %d", got.Value(), want)
	}
}

func TestParsePosition(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Number
		err   error
	}{
		{"zero", "0", 0, nil},
		{"typical", "12345", 12345, nil},
		{"negative", "-1", 0, ErrInvalidFormat},
		{"non-numeric", "a", 0, ErrInvalidFormat},
		{"empty", "", 0, ErrInvalidFormat},
		{"too large", "99999999999999999999999", 0, ErrOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePosition(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Wrong error for %q: got %v, want %v", tc.input, err, tc.err)
			}
			if err == nil && got.Value() != tc.want {
				t.Errorf("Wrong value: got %d, want %d", got.Value(), tc.want)
			}
		})
	}
}

func TestPosition_CheckedAdd(t *testing.T) {
	if _, ok := NewPosition(maxNumber).CheckedAdd(1); ok {
		t.Error("Unexpected success adding past the maximum value")
	}
	got, ok := NewPosition(maxNumber - 1).CheckedAdd(1)
	if !ok {
		t.Fatal("Unexpected failure adding within range")
	}
	if want := maxNumber; got.Value() != want {
		t.Errorf("Wrong value: got %d, want %d", got.Value(), want)
	}
}

func TestPosition_CheckedSub(t *testing.T) {
	if _, ok := NewPosition(0).CheckedSub(1); ok {
		t.Error("Unexpected success subtracting below zero")
	}
	got, ok := NewPosition(10).CheckedSub(10)
	if !ok {
		t.Fatal("Unexpected failure subtracting within range")
	}
	if want := Number(0); got.Value() != want {
		t.Errorf("Wrong value: got %d, want %d", got.Value(), want)
	}
}

func TestPosition_Distance(t *testing.T) {
	testCases := []struct {
		name string
		a, b Number
		want Number
	}{
		{"equal", 10, 10, 0},
		{"ascending", 5, 10, 5},
		{"descending", 10, 5, 5},
		{"extremes", 0, maxNumber, maxNumber},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := NewPosition(tc.a), NewPosition(tc.b)
			if got := a.Distance(b); got != tc.want {
				t.Errorf("Wrong distance: got %d, want %d", got, tc.want)
			}
			if got := b.Distance(a); got != tc.want {
				t.Errorf("Distance is not symmetric: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPosition_String(t *testing.T) {
	if got, want := NewPosition(1234).String(), "1234"; got != want {
		t.Errorf("Wrong string result: got %q, want %q", got, want)
	}
}
