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

package coordinate_test

import (
	"fmt"
	"log"

	"github.com/omics-go/omics/coordinate"
)

func ExampleParseCoordinate() {
	c, err := coordinate.ParseCoordinate("chr1:+:100", coordinate.Base)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c)
	// Output: chr1:+:100
}

func ExampleCoordinate_MoveForward() {
	c, err := coordinate.ParseCoordinate("chr1:-:200", coordinate.Base)
	if err != nil {
		log.Fatal(err)
	}
	// Forward on the negative strand runs toward lower positions.
	moved, err := c.MoveForward(10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(moved)
	// Output: chr1:-:190
}

func ExampleInterval_ToInterbase() {
	iv, err := coordinate.ParseInterval("chr1:+:100-200", coordinate.Base)
	if err != nil {
		log.Fatal(err)
	}
	interbase, err := iv.ToInterbase()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(interbase, interbase.Len())
	// Output: chr1:+:99-200 101
}
