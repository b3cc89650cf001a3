// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package opc

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// relsCacheSize bounds the number of parsed sidecars kept in memory. Large
// decks have a few thousand parts at most, so evictions are rare; the bound
// exists so a pathological package cannot hold every parse tree alive.
const relsCacheSize = 512

// Index memoizes parsed relationship sidecars for the duration of one
// analysis run. The same sidecar is queried several times during a
// traversal (a master's edge list is read once per referencing slide and
// again during the layout pull), so parses are cached by canonical part
// path. The cache is safe for concurrent readers.
type Index struct {
	cache *lru.Cache[string, *Relationships]
}

// NewIndex creates an empty relationship index. An Index must not be shared
// between analysis runs: the package may have been mutated in between.
func NewIndex() *Index {
	cache, err := lru.New[string, *Relationships](relsCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &Index{cache: cache}
}

// Load returns the part's outgoing edges, parsing and caching the sidecar
// on first use. Degradation rules are those of Load: missing or corrupt
// sidecars yield an empty edge list.
func (ix *Index) Load(p Part) *Relationships {
	if rels, ok := ix.cache.Get(p.Path); ok {
		return rels
	}
	rels := Load(p)
	ix.cache.Add(p.Path, rels)
	return rels
}
