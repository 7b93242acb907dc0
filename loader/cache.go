// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package loader

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed files kept by NewCache(0).
const DefaultCacheSize = 256

// Cache keeps recently parsed files keyed by a digest of their name and
// content. A Cache is safe for concurrent use.
type Cache struct {
	files *lru.Cache[uint64, *WDLFile]
}

// NewCache returns a cache holding up to size files. A size of zero or less
// selects DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	files, err := lru.New[uint64, *WDLFile](size)
	if err != nil {
		// Only returned for non-positive sizes.
		panic(err)
	}
	return &Cache{files: files}
}

// Get returns the file previously parsed from the same name and content.
func (c *Cache) Get(name string, raw []byte) (*WDLFile, bool) {
	return c.files.Get(digest(name, raw))
}

// Add records a parsed file.
func (c *Cache) Add(f *WDLFile) {
	c.files.Add(digest(f.Name, f.Raw), f)
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	return c.files.Len()
}

// Purge removes every cached file.
func (c *Cache) Purge() {
	c.files.Purge()
}

func digest(name string, raw []byte) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(raw)
	return d.Sum64()
}
