// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

import (
	"path/filepath"

	"github.com/IBM/pptxprune/opc"
)

// Result holds the universe, active, and unused sets produced by one
// analysis run. A Result is built once by Analyzer.Run and read-only
// afterwards; the sets are monotone during the traversal and must never be
// reused across runs, since a stale result would never shrink. Master and
// layout sets are keyed by canonical absolute path, image sets by filename.
type Result struct {
	// Root is the canonical package root the analysis ran against.
	Root string

	// ActiveSlides preserves the manifest's authoring order. Slides are
	// never classified as unused; they are the roots of the traversal.
	ActiveSlides []opc.Part

	AllMasters PartSet
	AllLayouts PartSet
	AllImages  PartSet

	ActiveMasters PartSet
	ActiveLayouts PartSet
	ActiveImages  PartSet

	UnusedMasters PartSet
	UnusedLayouts PartSet
	UnusedImages  PartSet
}

func newResult(root string) *Result {
	return &Result{
		Root:          root,
		AllMasters:    make(PartSet),
		AllLayouts:    make(PartSet),
		AllImages:     make(PartSet),
		ActiveMasters: make(PartSet),
		ActiveLayouts: make(PartSet),
		ActiveImages:  make(PartSet),
	}
}

// Serialized is a flattened, deterministic form of Result suitable for
// encoding. Paths are package-relative with forward slashes and every list
// is sorted, so two runs over the same package serialize identically.
type Serialized struct {
	ActiveSlides  []string `yaml:"active_slides"`
	ActiveMasters []string `yaml:"active_masters"`
	UnusedMasters []string `yaml:"unused_masters"`
	ActiveLayouts []string `yaml:"active_layouts"`
	UnusedLayouts []string `yaml:"unused_layouts"`
	ActiveImages  []string `yaml:"active_images"`
	UnusedImages  []string `yaml:"unused_images"`
}

// Serialized flattens the result for reporting or encoding.
func (r *Result) Serialized() *Serialized {
	slides := make([]string, 0, len(r.ActiveSlides))
	for _, s := range r.ActiveSlides {
		slides = append(slides, r.relPath(s.Path))
	}
	return &Serialized{
		ActiveSlides:  slides,
		ActiveMasters: r.relPaths(r.ActiveMasters),
		UnusedMasters: r.relPaths(r.UnusedMasters),
		ActiveLayouts: r.relPaths(r.ActiveLayouts),
		UnusedLayouts: r.relPaths(r.UnusedLayouts),
		ActiveImages:  r.ActiveImages.Sorted(),
		UnusedImages:  r.UnusedImages.Sorted(),
	}
}

func (r *Result) relPaths(s PartSet) []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.Sorted() {
		out = append(out, r.relPath(p))
	}
	return out
}

func (r *Result) relPath(p string) string {
	rel, err := filepath.Rel(r.Root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
