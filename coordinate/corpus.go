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

import "sync"

// ID identifies an interned contig name within a Corpus.
type ID int

// Corpus is a pool of interned contig names.
//
// Interning is idempotent: the same name always maps to the same ID within a
// corpus.  A Corpus is safe for concurrent use; when two goroutines race to
// intern a new name, exactly one canonical ID survives and both callers
// receive it.
type Corpus struct {
	mu    sync.RWMutex
	ids   map[string]ID
	names []string
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{ids: make(map[string]ID)}
}

// Intern returns the canonical ID for name, assigning one if the name has not
// been seen before.
func (c *Corpus) Intern(name string) ID {
	c.mu.RLock()
	id, ok := c.ids[name]
	c.mu.RUnlock()
	if ok {
		return id
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.ids[name]; ok {
		return id
	}
	id = ID(len(c.names))
	c.ids[name] = id
	c.names = append(c.names, name)
	return id
}

// Resolve returns the name assigned to id, if any.
func (c *Corpus) Resolve(id ID) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if id < 0 || int(id) >= len(c.names) {
		return "", false
	}
	return c.names[id], true
}

// Len returns the number of distinct names interned so far.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}
