// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package opc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slideRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image2.png"/>
</Relationships>
`

// writePart lays a part plus its sidecar out on disk following the _rels
// naming convention and returns the part.
func writePart(t *testing.T, dir, name, rels string) Part {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "_rels"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<p:sld/>"), 0o644))
	if rels != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "_rels", name+".rels"), []byte(rels), 0o644))
	}
	return Part{Path: filepath.Join(dir, name), Kind: KindSlide}
}

func TestParseQueries(t *testing.T) {
	part := writePart(t, filepath.Join(t.TempDir(), "ppt", "slides"), "slide1.xml", slideRels)

	rels, err := Parse(part)
	require.NoError(t, err)
	require.Len(t, rels.Edges, 3)

	t.Run("declaration order", func(t *testing.T) {
		assert.Equal(t, "rId1", rels.Edges[0].ID)
		assert.Equal(t, "rId3", rels.Edges[2].ID)
	})

	t.Run("all by type marker", func(t *testing.T) {
		layouts := rels.All(TypeSlideLayout)
		require.Len(t, layouts, 1)
		assert.Equal(t, "../slideLayouts/slideLayout2.xml", layouts[0].Target)
		assert.Empty(t, rels.All(TypeSlideMaster))
	})

	t.Run("all by target marker", func(t *testing.T) {
		media := rels.AllTargeting(MediaFolder)
		require.Len(t, media, 2)
		assert.Equal(t, "rId2", media[0].ID)
		assert.Equal(t, "rId3", media[1].ID)
	})

	t.Run("by id", func(t *testing.T) {
		edge, ok := rels.ByID("rId2")
		require.True(t, ok)
		assert.Equal(t, "../media/image1.png", edge.Target)
		_, ok = rels.ByID("rId99")
		assert.False(t, ok)
	})

	t.Run("resolve against source folder", func(t *testing.T) {
		edge, _ := rels.ByID("rId1")
		want := filepath.Join(filepath.Dir(part.Dir()), "slideLayouts", "slideLayout2.xml")
		assert.Equal(t, want, rels.Resolve(edge))
	})
}

func TestLoadDegradation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ppt", "slides")

	t.Run("missing sidecar means no edges", func(t *testing.T) {
		part := writePart(t, dir, "slide1.xml", "")
		rels := Load(part)
		assert.Empty(t, rels.Edges)
		assert.Equal(t, part, rels.Source)
	})

	t.Run("corrupt sidecar means no edges", func(t *testing.T) {
		part := writePart(t, dir, "slide2.xml", "<Relationships><Relationship Id=")
		rels := Load(part)
		assert.Empty(t, rels.Edges)
	})

	t.Run("parse surfaces the error", func(t *testing.T) {
		_, err := Parse(Part{Path: filepath.Join(dir, "slide3.xml")})
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestIndexMemoizes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ppt", "slides")
	part := writePart(t, dir, "slide1.xml", slideRels)

	ix := NewIndex()
	first := ix.Load(part)
	require.Len(t, first.Edges, 3)

	// mutating the sidecar must not show through the cache within a run
	require.NoError(t, os.Remove(part.RelsPath()))
	second := ix.Load(part)
	assert.Same(t, first, second)
}
