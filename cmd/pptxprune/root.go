// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	workers  int
	progress bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pptxprune",
	Short: "Find and remove unused masters, layouts, and images in unzipped .pptx packages",
	Long: `The pptxprune utility analyzes a decompressed PowerPoint package to work out
which slide masters, slide layouts, and media files are actually reachable
from the slides the presentation declares in use. Everything not reachable is
classified as unused and can be reported on, listed in generated removal
scripts, or deleted in place along with the matching entries in the package
manifests.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 1, "goroutines used for per-slide resolution")
	rootCmd.PersistentFlags().BoolVar(&progress, "progress", false, "show a progress bar while resolving slides")
}
