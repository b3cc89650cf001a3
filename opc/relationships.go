// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package opc

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Type markers matched by substring against a relationship's Type attribute.
// Real-world producers vary the capitalization and suffix of the full type
// URIs, so exact matching is deliberately avoided.
const (
	TypeSlideLayout = "slideLayout"
	TypeSlideMaster = "slideMaster"
)

// MediaFolder is the target-path marker identifying references into the
// shared media folder.
const MediaFolder = "media/"

// Relationship is one typed outgoing edge parsed from a part's sidecar.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Relationships holds the ordered outgoing edge list of a single part.
type Relationships struct {
	Source Part
	Edges  []Relationship
}

// Parse reads and parses the relationship sidecar for a part. A missing or
// malformed sidecar is an error here; most callers want the forgiving Load
// instead. Parse exists for the one part whose sidecar the analysis cannot
// do without: the presentation manifest.
func Parse(p Part) (*Relationships, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(p.RelsPath()); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%s: no root element", p.RelsPath())
	}
	rels := &Relationships{Source: p}
	for _, el := range ElementsByTag(doc.Root(), "Relationship") {
		rels.Edges = append(rels.Edges, Relationship{
			ID:     el.SelectAttrValue("Id", ""),
			Type:   el.SelectAttrValue("Type", ""),
			Target: el.SelectAttrValue("Target", ""),
		})
	}
	return rels, nil
}

// Load returns the part's outgoing edges, treating a missing sidecar as an
// empty edge list. A sidecar that exists but fails to parse degrades the
// same way; one corrupt secondary part must not abort a whole analysis run.
func Load(p Part) *Relationships {
	rels, err := Parse(p)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("part", p.Name()).Debug("ignoring unreadable relationship sidecar")
		}
		return &Relationships{Source: p}
	}
	return rels
}

// All returns every edge whose Type contains the given marker, in sidecar
// declaration order. Callers that expect a singular edge (a slide's layout,
// a layout's master) take the first element.
func (r *Relationships) All(marker string) []Relationship {
	var out []Relationship
	for _, e := range r.Edges {
		if strings.Contains(e.Type, marker) {
			out = append(out, e)
		}
	}
	return out
}

// AllTargeting returns every edge whose raw Target contains the given
// marker, in sidecar declaration order.
func (r *Relationships) AllTargeting(marker string) []Relationship {
	var out []Relationship
	for _, e := range r.Edges {
		if strings.Contains(e.Target, marker) {
			out = append(out, e)
		}
	}
	return out
}

// ByID returns the edge with the given relationship id.
func (r *Relationships) ByID(id string) (Relationship, bool) {
	for _, e := range r.Edges {
		if e.ID == id {
			return e, true
		}
	}
	return Relationship{}, false
}

// Resolve resolves an edge's target against the source part's directory.
func (r *Relationships) Resolve(e Relationship) string {
	return ResolveTarget(r.Source.Dir(), e.Target)
}
