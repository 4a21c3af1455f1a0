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

// Contig is a named reference sequence, such as a chromosome, to which
// positions are scoped.
//
// Contigs compare by exact name only: "chr1" and "1" are different contigs
// even when they refer to the same physical sequence, and no aliasing is
// applied anywhere in this package.
type Contig struct {
	name string
}

// NewContig returns a contig with the provided name.  It fails with
// ErrEmptyName when the name is empty.
func NewContig(name string) (Contig, error) {
	if name == "" {
		return Contig{}, ErrEmptyName
	}
	return Contig{name: name}, nil
}

// Name returns the contig name.
func (c Contig) Name() string {
	return c.name
}

// String returns the contig name.
func (c Contig) String() string {
	return c.name
}
