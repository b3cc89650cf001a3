// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

// Package opc implements the small slice of the Open Packaging Conventions
// that an unzipped .pptx exposes on disk: part identities, relationship
// sidecars, and the rules for resolving relationship targets between parts.
package opc

import (
	"os"
	"path/filepath"
)

// PartKind classifies a part by its role inside the package.
type PartKind int

// The part kinds that appear in a presentation package.
const (
	KindManifest PartKind = iota
	KindSlide
	KindMaster
	KindLayout
	KindMedia
)

// Part is one file-identity unit inside a decompressed package. Parts are
// identified by their canonical absolute path, which makes them directly
// usable as set members. A Part may refer to a file that does not exist;
// existence is checked lazily by the callers that care.
type Part struct {
	Path string
	Kind PartKind
}

// Name returns the part's file name without any directory components.
func (p Part) Name() string {
	return filepath.Base(p.Path)
}

// Dir returns the directory containing the part. Relationship targets are
// resolved relative to this directory, not the package root.
func (p Part) Dir() string {
	return filepath.Dir(p.Path)
}

// Exists reports whether the part is physically present on disk.
func (p Part) Exists() bool {
	info, err := os.Stat(p.Path)
	return err == nil && !info.IsDir()
}

// RelsPath returns the conventional location of the part's relationship
// sidecar: a _rels folder next to the part holding <name>.rels.
func (p Part) RelsPath() string {
	return filepath.Join(p.Dir(), "_rels", p.Name()+".rels")
}

func (p Part) String() string {
	return p.Name()
}
