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
	"sync"
	"testing"
)

func TestCorpus_Intern(t *testing.T) {
	corpus := NewCorpus()

	first := corpus.Intern("chr1")
	second := corpus.Intern("chr2")
	if first == second {
		t.Errorf("Distinct names share an ID: %d", first)
	}

	// Interning is idempotent.
	if got := corpus.Intern("chr1"); got != first {
		t.Errorf("Wrong ID on repeat interning: got %d, want %d", got, first)
	}
	if got, want := corpus.Len(), 2; got != want {
		t.Errorf("Wrong corpus size: got %d, want %d", got, want)
	}
}

func TestCorpus_Resolve(t *testing.T) {
	corpus := NewCorpus()
	id := corpus.Intern("chrX")

	name, ok := corpus.Resolve(id)
	if !ok {
		t.Fatalf("Failed to resolve ID %d", id)
	}
	if want := "chrX"; name != want {
		t.Errorf("Wrong name: got %q, want %q", name, want)
	}

	if _, ok := corpus.Resolve(ID(999)); ok {
		t.Error("Unexpected success resolving an unassigned ID")
	}
	if _, ok := corpus.Resolve(ID(-1)); ok {
		t.Error("Unexpected success resolving a negative ID")
	}
}

func TestCorpus_ConcurrentIntern(t *testing.T) {
	corpus := NewCorpus()

	const workers = 16
	const names = 32

	var wg sync.WaitGroup
	ids := make([][]ID, workers)
	for w := 0; w < workers; w++ {
		w := w
		ids[w] = make([]ID, names)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < names; n++ {
				ids[w][n] = corpus.Intern(fmt.Sprintf("chr%d", n))
			}
		}()
	}
	wg.Wait()

	// Exactly one canonical ID survives per name, regardless of which
	// goroutine inserted it first.
	for n := 0; n < names; n++ {
		for w := 1; w < workers; w++ {
			if ids[w][n] != ids[0][n] {
				t.Fatalf("Divergent IDs for chr%d: got %d and %d", n, ids[w][n], ids[0][n])
			}
		}
	}
	if got, want := corpus.Len(), names; got != want {
		t.Errorf("Wrong corpus size: got %d, want %d", got, want)
	}
}
