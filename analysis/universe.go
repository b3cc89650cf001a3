// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions is the allow-list of media file types the analysis
// classifies, matched case-insensitively on extension.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".emf":  true,
	".wmf":  true,
	".svg":  true,
}

// scanLayouts enumerates the layout universe: every slideLayout*.xml
// physically present in the layouts folder, referenced or not. A missing
// folder just means an empty universe.
func (a *Analyzer) scanLayouts(res *Result) {
	dir := filepath.Join(res.Root, "ppt", "slideLayouts")
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).Debug("no slideLayouts folder")
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "slideLayout") && strings.HasSuffix(name, ".xml") {
			res.AllLayouts.Add(filepath.Join(dir, name))
		}
	}
}

// scanMedia enumerates the image universe by filename: every file in the
// shared media folder whose extension is on the allow-list.
func (a *Analyzer) scanMedia(res *Result) {
	dir := filepath.Join(res.Root, "ppt", "media")
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).Debug("no media folder")
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			res.AllImages.Add(e.Name())
		}
	}
}
