// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package opc

import "path/filepath"

// ResolveTarget resolves a relationship target string against the directory
// of the part that declared it, producing a canonical path suitable for
// equality comparison. Targets use forward slashes and are frequently
// relative with parent-directory steps (a slide referencing
// "../slideLayouts/slideLayout3.xml"); the ".." segments collapse against
// the source part's own folder. Malformed targets are not an error here,
// they simply resolve to a path that no existence check will ever match.
func ResolveTarget(sourceDir, target string) string {
	t := filepath.FromSlash(target)
	if filepath.IsAbs(t) {
		return filepath.Clean(t)
	}
	return filepath.Join(sourceDir, t)
}
