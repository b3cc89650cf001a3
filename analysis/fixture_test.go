// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IBM/pptxprune/analysis"
)

const (
	relSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relImage  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// deck builds unzipped presentation packages for tests. The standard deck is
// the reference scenario: two slides both landing on master1, five layouts of
// which master1 additionally owns layout3, and one of two images referenced.
type deck struct {
	t    *testing.T
	root string
}

func newDeck(t *testing.T) *deck {
	t.Helper()
	d := &deck{t: t, root: t.TempDir()}

	d.write("[Content_Types].xml", contentTypesXML())
	d.write("ppt/presentation.xml", presentationXML(
		[]string{"rId1", "rId2"},
		[]string{"rId3", "rId4"},
	))
	d.write("ppt/_rels/presentation.xml.rels", relsXML(
		edge{"rId1", relMaster, "slideMasters/slideMaster1.xml"},
		edge{"rId2", relMaster, "slideMasters/slideMaster2.xml"},
		edge{"rId3", relSlide, "slides/slide1.xml"},
		edge{"rId4", relSlide, "slides/slide2.xml"},
	))

	d.write("ppt/slides/slide1.xml", "<p:sld/>")
	d.write("ppt/slides/_rels/slide1.xml.rels", relsXML(
		edge{"rId1", relLayout, "../slideLayouts/slideLayout1.xml"},
		edge{"rId2", relImage, "../media/img1.png"},
	))
	d.write("ppt/slides/slide2.xml", "<p:sld/>")
	d.write("ppt/slides/_rels/slide2.xml.rels", relsXML(
		edge{"rId1", relLayout, "../slideLayouts/slideLayout2.xml"},
	))

	for i := 1; i <= 5; i++ {
		d.write(fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i), "<p:sldLayout/>")
	}
	d.write("ppt/slideLayouts/_rels/slideLayout1.xml.rels", relsXML(
		edge{"rId1", relMaster, "../slideMasters/slideMaster1.xml"},
	))
	d.write("ppt/slideLayouts/_rels/slideLayout2.xml.rels", relsXML(
		edge{"rId1", relMaster, "../slideMasters/slideMaster1.xml"},
	))

	d.write("ppt/slideMasters/slideMaster1.xml", "<p:sldMaster/>")
	d.write("ppt/slideMasters/_rels/slideMaster1.xml.rels", relsXML(
		edge{"rId1", relLayout, "../slideLayouts/slideLayout1.xml"},
		edge{"rId2", relLayout, "../slideLayouts/slideLayout2.xml"},
		edge{"rId3", relLayout, "../slideLayouts/slideLayout3.xml"},
	))
	d.write("ppt/slideMasters/slideMaster2.xml", "<p:sldMaster/>")
	d.write("ppt/slideMasters/_rels/slideMaster2.xml.rels", relsXML(
		edge{"rId1", relLayout, "../slideLayouts/slideLayout4.xml"},
		edge{"rId2", relLayout, "../slideLayouts/slideLayout5.xml"},
	))

	d.write("ppt/media/img1.png", "not really a png")
	d.write("ppt/media/img2.png", "not really a png either")
	return d
}

func (d *deck) write(rel, content string) {
	d.t.Helper()
	path := filepath.Join(d.root, filepath.FromSlash(rel))
	require.NoError(d.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(d.t, os.WriteFile(path, []byte(content), 0o644))
}

func (d *deck) remove(rel string) {
	d.t.Helper()
	require.NoError(d.t, os.Remove(filepath.Join(d.root, filepath.FromSlash(rel))))
}

func (d *deck) run(opts analysis.Options) *analysis.Result {
	d.t.Helper()
	res, err := analysis.New(d.root, opts).Run()
	require.NoError(d.t, err)
	return res
}

type edge struct {
	id     string
	typ    string
	target string
}

func relsXML(edges ...edge) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	for _, e := range edges {
		fmt.Fprintf(&b, `  <Relationship Id=%q Type=%q Target=%q/>`+"\n", e.id, e.typ, e.target)
	}
	b.WriteString("</Relationships>\n")
	return b.String()
}

func presentationXML(masterIDs, slideIDs []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` + "\n")
	b.WriteString("  <p:sldMasterIdLst>\n")
	for i, id := range masterIDs {
		fmt.Fprintf(&b, `    <p:sldMasterId id="%d" r:id=%q/>`+"\n", 2147483648+i, id)
	}
	b.WriteString("  </p:sldMasterIdLst>\n")
	b.WriteString("  <p:sldIdLst>\n")
	for i, id := range slideIDs {
		fmt.Fprintf(&b, `    <p:sldId id="%d" r:id=%q/>`+"\n", 256+i, id)
	}
	b.WriteString("  </p:sldIdLst>\n")
	b.WriteString("</p:presentation>\n")
	return b.String()
}

func contentTypesXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	b.WriteString(`  <Default Extension="png" ContentType="image/png"/>` + "\n")
	b.WriteString(`  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` + "\n")
	b.WriteString(`  <Default Extension="xml" ContentType="application/xml"/>` + "\n")
	for i := 1; i <= 2; i++ {
		fmt.Fprintf(&b, `  <Override PartName="/ppt/slideMasters/slideMaster%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`+"\n", i)
	}
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, `  <Override PartName="/ppt/slideLayouts/slideLayout%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`+"\n", i)
	}
	for i := 1; i <= 2; i++ {
		fmt.Fprintf(&b, `  <Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`+"\n", i)
	}
	b.WriteString("</Types>\n")
	return b.String()
}

// baseNames maps a path-keyed set to its sorted file names, which is what
// the fixtures assert against.
func baseNames(s analysis.PartSet) []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.Sorted() {
		out = append(out, filepath.Base(p))
	}
	return out
}
