// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

import (
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/IBM/pptxprune/opc"
)

// manifestPart returns the presentation manifest for a package root.
func manifestPart(root string) opc.Part {
	return opc.Part{
		Path: filepath.Join(root, "ppt", "presentation.xml"),
		Kind: opc.KindManifest,
	}
}

// resolveRoots parses the presentation manifest into the ordered root set.
// The sldIdLst holds the slides in use, in authoring order; the
// sldMasterIdLst declares the full master universe whether used or not.
// Both lists reference the manifest's own relationship sidecar by id, and
// each id resolves to a part path relative to the manifest's folder.
// Failure of either document is fatal: there are no roots without them.
func (a *Analyzer) resolveRoots(res *Result) error {
	manifest := manifestPart(res.Root)

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(manifest.Path); err != nil {
		return fmt.Errorf("parse presentation manifest: %w", err)
	}
	if doc.Root() == nil {
		return fmt.Errorf("presentation manifest %s has no root element", manifest.Path)
	}
	rels, err := opc.Parse(manifest)
	if err != nil {
		return fmt.Errorf("parse presentation relationships: %w", err)
	}

	for _, id := range orderedRelIDs(doc, "sldMasterId") {
		if edge, ok := rels.ByID(id); ok {
			res.AllMasters.Add(rels.Resolve(edge))
		}
	}
	for _, id := range orderedRelIDs(doc, "sldId") {
		edge, ok := rels.ByID(id)
		if !ok {
			continue
		}
		res.ActiveSlides = append(res.ActiveSlides, opc.Part{
			Path: rels.Resolve(edge),
			Kind: opc.KindSlide,
		})
	}

	log.WithField("slides", len(res.ActiveSlides)).
		WithField("masters", res.AllMasters.Len()).
		Debug("resolved manifest roots")
	return nil
}

// orderedRelIDs collects the relationship ids of every element with the
// given local tag, in document order.
func orderedRelIDs(doc *etree.Document, tag string) []string {
	var ids []string
	for _, el := range opc.ElementsByTag(doc.Root(), tag) {
		if id := opc.RelationshipID(el); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
