// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package cleanup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// backupFiles are the package-critical documents copied aside before any
// removal that rewrites them. Everything else in the package is either
// untouched or restorable by re-unzipping the original .pptx.
var backupFiles = []string{
	filepath.Join("ppt", "presentation.xml"),
	filepath.Join("ppt", "_rels", "presentation.xml.rels"),
	"[Content_Types].xml",
}

// CreateBackup copies the critical manifest documents into a timestamped
// backup folder inside the package root, preserving their relative layout.
// Files that are already missing are skipped. Returns the backup folder.
func CreateBackup(root string) (string, error) {
	stamp := time.Now().Format("20060102_150405")
	dir := filepath.Join(root, "backup_"+stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup folder: %w", err)
	}

	for _, rel := range backupFiles {
		src := filepath.Join(root, rel)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return "", fmt.Errorf("create backup folder: %w", err)
		}
		if err := copyFile(src, dst); err != nil {
			return "", fmt.Errorf("backup %s: %w", rel, err)
		}
	}

	log.WithField("dir", filepath.Base(dir)).Info("backup created")
	return dir, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
