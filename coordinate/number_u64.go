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

//go:build omics_position64

package coordinate

// Number is the integer representation backing Position values.  Under the
// omics_position64 tag it is a guaranteed 64-bit width regardless of the
// machine word size.
type Number = uint64

// numberBits is the bit width used when parsing Number values.
const numberBits = 64
