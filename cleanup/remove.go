// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

// Package cleanup acts on the classification produced by the analysis
// package: backing up the package manifests, deleting unused parts, and
// rewriting the manifest and content-type documents that referenced them.
// It never re-derives liveness itself; a fresh analysis run is required
// for a consistent view after anything has been removed.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/IBM/pptxprune/analysis"
	"github.com/IBM/pptxprune/opc"
)

// Cleaner applies removal decisions for one package against the result of
// one analysis run over that same package.
type Cleaner struct {
	root string
	res  *analysis.Result
}

// New creates a Cleaner for the package the result was computed from.
func New(root string, res *analysis.Result) *Cleaner {
	return &Cleaner{root: root, res: res}
}

// RemoveImages deletes every unused file from the media folder. Images are
// plain leaf assets with no sidecars and no manifest entries, so no XML
// rewriting or backup is needed. Returns the number of files removed.
func (c *Cleaner) RemoveImages() (int, error) {
	if c.res.UnusedImages.Len() == 0 {
		log.Info("no unused images to remove")
		return 0, nil
	}

	removed := 0
	for _, name := range c.res.UnusedImages.Sorted() {
		if deletePart(filepath.Join(c.root, "ppt", "media", name)) {
			removed++
			log.WithField("image", name).Info("removed")
		}
	}
	return removed, nil
}

// RemoveLayouts deletes every unused layout and its sidecar, and drops the
// matching content-type overrides. The manifests are backed up first.
func (c *Cleaner) RemoveLayouts() (int, error) {
	if c.res.UnusedLayouts.Len() == 0 {
		log.Info("no unused layouts to remove")
		return 0, nil
	}
	if _, err := CreateBackup(c.root); err != nil {
		return 0, err
	}
	if err := c.dropOverrides("/ppt/slideLayouts/", c.res.UnusedLayouts); err != nil {
		return 0, err
	}
	return c.deleteParts(c.res.UnusedLayouts), nil
}

// RemoveMasters deletes every unused master and its sidecar, drops the
// master's entry from the presentation manifest's sldMasterIdLst, and drops
// the matching content-type overrides. The manifests are backed up first.
// The relationship ids to drop are found by matching the unused master's
// file name against the targets of the manifest's own relationship list.
func (c *Cleaner) RemoveMasters() (int, error) {
	if c.res.UnusedMasters.Len() == 0 {
		log.Info("no unused masters to remove")
		return 0, nil
	}
	if _, err := CreateBackup(c.root); err != nil {
		return 0, err
	}

	manifest := opc.Part{
		Path: filepath.Join(c.root, "ppt", "presentation.xml"),
		Kind: opc.KindManifest,
	}
	rels, err := opc.Parse(manifest)
	if err != nil {
		return 0, fmt.Errorf("parse presentation relationships: %w", err)
	}

	drop := make(map[string]bool)
	for _, master := range c.res.UnusedMasters.Sorted() {
		needle := "slideMasters/" + filepath.Base(master)
		for _, edge := range rels.Edges {
			if strings.Contains(edge.Target, needle) {
				drop[edge.ID] = true
				break
			}
		}
	}

	if err := dropMasterIDs(manifest.Path, drop); err != nil {
		return 0, err
	}
	if err := c.dropOverrides("/ppt/slideMasters/", c.res.UnusedMasters); err != nil {
		return 0, err
	}
	return c.deleteParts(c.res.UnusedMasters), nil
}

// dropMasterIDs rewrites the presentation manifest, removing every
// sldMasterId entry whose relationship id is marked for deletion.
func dropMasterIDs(manifestPath string, drop map[string]bool) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(manifestPath); err != nil {
		return fmt.Errorf("parse presentation manifest: %w", err)
	}
	for _, el := range opc.ElementsByTag(doc.Root(), "sldMasterId") {
		if drop[opc.RelationshipID(el)] {
			el.Parent().RemoveChild(el)
		}
	}
	if err := doc.WriteToFile(manifestPath); err != nil {
		return fmt.Errorf("rewrite presentation manifest: %w", err)
	}
	return nil
}

// dropOverrides rewrites [Content_Types].xml, removing the Override entry
// for each named part under the given package-absolute folder prefix.
func (c *Cleaner) dropOverrides(prefix string, parts analysis.PartSet) error {
	ctPath := filepath.Join(c.root, "[Content_Types].xml")
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(ctPath); err != nil {
		return fmt.Errorf("parse content types: %w", err)
	}

	dead := make(map[string]bool, parts.Len())
	for _, p := range parts.Sorted() {
		dead[prefix+filepath.Base(p)] = true
	}
	for _, el := range opc.ElementsByTag(doc.Root(), "Override") {
		if dead[el.SelectAttrValue("PartName", "")] {
			el.Parent().RemoveChild(el)
		}
	}

	if err := doc.WriteToFile(ctPath); err != nil {
		return fmt.Errorf("rewrite content types: %w", err)
	}
	return nil
}

// deleteParts removes each part file and its relationship sidecar,
// returning the number of part files actually deleted. Sidecars do not
// count toward the total and missing files are not an error; the caller
// may be re-running after a partial removal.
func (c *Cleaner) deleteParts(parts analysis.PartSet) int {
	removed := 0
	for _, p := range parts.Sorted() {
		part := opc.Part{Path: p}
		if deletePart(part.Path) {
			removed++
			log.WithField("part", part.Name()).Info("removed")
		}
		deletePart(part.RelsPath())
	}
	return removed
}

func deletePart(path string) bool {
	p := opc.Part{Path: path}
	if !p.Exists() {
		return false
	}
	if err := os.Remove(path); err != nil {
		log.WithError(err).WithField("part", p.Name()).Warn("could not remove part")
		return false
	}
	return true
}
