// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package opc

import "github.com/beevik/etree"

// ElementsByTag returns el and its descendants whose local tag name matches
// tag, in document order. Matching ignores namespace prefixes; the prefixes
// bound to the OOXML namespaces are conventional, not guaranteed.
func ElementsByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	if el == nil {
		return out
	}
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == tag {
			out = append(out, e)
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(el)
	return out
}

// RelationshipID returns the relationship-namespace id attribute of an
// element such as sldId or sldMasterId. These elements also carry a plain
// unprefixed id attribute (the slide/master number); the relationship id is
// the one bound to a namespace prefix, conventionally r:id.
func RelationshipID(el *etree.Element) string {
	for _, a := range el.Attr {
		if a.Key == "id" && a.Space != "" && a.Space != "xmlns" {
			return a.Value
		}
	}
	return ""
}
