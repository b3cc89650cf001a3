// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

// Package analysis implements the reachability analysis over an unzipped
// presentation package. The package is modeled as a typed relationship
// graph; the slides the manifest declares in use are the roots, and every
// master, layout, and image not transitively reachable from them is
// classified as unused. This is a mark-and-sweep liveness pass: universes
// are enumerated from the manifest and the filesystem, the closure marks
// the live parts, and the sweep is left to the cleanup package.
package analysis

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IBM/pptxprune/opc"
)

// Options tunes an analysis run.
type Options struct {
	// Workers sets the number of goroutines resolving the per-slide step
	// of the closure. Zero or one means sequential. The per-slide step is
	// a pure function of one slide's files and the merge is a set union,
	// so any worker count produces the same result.
	Workers int

	// Progress renders a progress bar over the per-slide step.
	Progress bool
}

// Analyzer runs the reachability analysis for one package root. Each run
// builds a fresh Result; the Analyzer itself holds no state that survives
// a run besides the parsed-sidecar cache.
type Analyzer struct {
	root  string
	index *opc.Index
	opts  Options
}

// New creates an Analyzer for the package rooted at the given folder.
func New(root string, opts Options) *Analyzer {
	return &Analyzer{root: root, index: opc.NewIndex(), opts: opts}
}

// Run performs the full analysis: validate the package roots, resolve the
// manifest's slide and master lists, enumerate the layout and media
// universes, compute the reachability closure, and derive the unused sets.
// A missing or unparseable package root is a fatal error, distinct from a
// clean run that simply finds nothing unused; damage to secondary parts
// only shrinks the active sets.
func (a *Analyzer) Run() (*Result, error) {
	root, err := filepath.Abs(a.root)
	if err != nil {
		return nil, fmt.Errorf("resolve package root: %w", err)
	}
	if err := validatePackage(root); err != nil {
		return nil, err
	}

	res := newResult(root)
	if err := a.resolveRoots(res); err != nil {
		return nil, err
	}
	a.scanLayouts(res)
	a.scanMedia(res)
	a.closure(res)
	a.calculateUnused(res)

	log.WithFields(map[string]interface{}{
		"slides":  len(res.ActiveSlides),
		"masters": fmt.Sprintf("%d/%d", res.ActiveMasters.Len(), res.AllMasters.Len()),
		"layouts": fmt.Sprintf("%d/%d", res.ActiveLayouts.Len(), res.AllLayouts.Len()),
		"images":  fmt.Sprintf("%d/%d", res.ActiveImages.Len(), res.AllImages.Len()),
	}).Debug("analysis complete")
	return res, nil
}

// validatePackage checks for the root markers that every unzipped .pptx
// carries. Without them there is no trustworthy root set to traverse from.
func validatePackage(root string) error {
	markers := []string{
		filepath.Join(root, "ppt", "presentation.xml"),
		filepath.Join(root, "[Content_Types].xml"),
	}
	for _, m := range markers {
		if _, err := os.Stat(m); err != nil {
			return fmt.Errorf("%s not found, is this an unzipped .pptx?", m)
		}
	}
	return nil
}
