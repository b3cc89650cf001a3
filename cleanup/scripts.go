// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IBM/pptxprune/analysis"
)

// WriteScripts drops ready-to-run removal shell scripts and a plain-text
// manifest of everything classified unused into the package root. The
// scripts let someone apply the cleanup by hand, or on a machine where this
// tool is not installed; paths inside them are package-relative so they run
// from the package root. Listings are sorted so repeated runs produce
// byte-identical files.
func WriteScripts(root string, res *analysis.Result) error {
	scripts := map[string]string{
		"remove_unused_images.sh":  imagesScript(res),
		"remove_unused_masters.sh": partsScript(res, "masters", res.UnusedMasters, "Update [Content_Types].xml and presentation.xml manually."),
		"remove_unused_layouts.sh": partsScript(res, "layouts", res.UnusedLayouts, "Update [Content_Types].xml manually."),
		"unused_components.txt":    componentsManifest(res),
	}

	for name, content := range scripts {
		mode := os.FileMode(0o755)
		if strings.HasSuffix(name, ".txt") {
			mode = 0o644
		}
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), mode); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		log.WithField("file", name).Info("generated")
	}
	return nil
}

func imagesScript(res *analysis.Result) string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n# Remove unused images\n\n")
	if res.UnusedImages.Len() == 0 {
		b.WriteString("echo 'No unused images.'\n")
		return b.String()
	}
	fmt.Fprintf(&b, "echo 'Removing %d unused images...'\n", res.UnusedImages.Len())
	for _, img := range res.UnusedImages.Sorted() {
		fmt.Fprintf(&b, "rm -f 'ppt/media/%s'\n", img)
	}
	b.WriteString("\necho 'Done!'\n")
	return b.String()
}

func partsScript(res *analysis.Result, what string, parts analysis.PartSet, warning string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#!/bin/bash\n# Remove unused %s\n", what)
	fmt.Fprintf(&b, "# WARNING: %s\n\n", warning)
	if parts.Len() == 0 {
		fmt.Fprintf(&b, "echo 'No unused %s.'\n", what)
		return b.String()
	}
	fmt.Fprintf(&b, "echo 'Removing %d unused %s...'\n", parts.Len(), what)
	for _, p := range parts.Sorted() {
		rel := relToRoot(res.Root, p)
		fmt.Fprintf(&b, "rm -f '%s'\n", rel)
		fmt.Fprintf(&b, "rm -f '%s/_rels/%s.rels'\n", pathDir(rel), filepath.Base(p))
	}
	fmt.Fprintf(&b, "\necho 'Done! %s'\n", warning)
	return b.String()
}

func componentsManifest(res *analysis.Result) string {
	var b strings.Builder
	b.WriteString("UNUSED COMPONENTS\n")
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	fmt.Fprintf(&b, "UNUSED IMAGES (%d):\n", res.UnusedImages.Len())
	for _, img := range res.UnusedImages.Sorted() {
		fmt.Fprintf(&b, "  ppt/media/%s\n", img)
	}

	fmt.Fprintf(&b, "\nUNUSED MASTERS (%d):\n", res.UnusedMasters.Len())
	for _, p := range res.UnusedMasters.Sorted() {
		fmt.Fprintf(&b, "  %s\n", relToRoot(res.Root, p))
	}

	fmt.Fprintf(&b, "\nUNUSED LAYOUTS (%d):\n", res.UnusedLayouts.Len())
	for _, p := range res.UnusedLayouts.Sorted() {
		fmt.Fprintf(&b, "  %s\n", relToRoot(res.Root, p))
	}
	return b.String()
}

// relToRoot renders a part path package-relative with forward slashes, the
// form both the scripts and the manifest use.
func relToRoot(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

func pathDir(slashPath string) string {
	if i := strings.LastIndex(slashPath, "/"); i >= 0 {
		return slashPath[:i]
	}
	return "."
}
