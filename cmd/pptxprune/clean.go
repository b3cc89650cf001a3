// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IBM/pptxprune/cleanup"
)

var (
	cleanImages  bool
	cleanLayouts bool
	cleanMasters bool
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:                   "clean [flags] <FOLDER>",
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(1),
	Short:                 "Remove unused content from the package in place",
	Long: `Runs the same analysis as the analyze command and then deletes the selected
categories of unused content. Removing layouts or masters rewrites the
presentation manifest and [Content_Types].xml; those files are backed up into
a timestamped folder inside the package first. Re-zip the folder and rename
it to .pptx when done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cleanImages && !cleanLayouts && !cleanMasters {
			return errors.New("nothing selected: pass at least one of --images, --layouts, --masters")
		}

		res, err := runAnalysis(args[0])
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		cmd.SilenceUsage = true

		c := cleanup.New(res.Root, res)
		if cleanImages {
			n, err := c.RemoveImages()
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d unused images.\n", n)
		}
		if cleanLayouts {
			n, err := c.RemoveLayouts()
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d unused layouts.\n", n)
		}
		if cleanMasters {
			n, err := c.RemoveMasters()
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d unused masters.\n", n)
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanImages, "images", false, "remove unused images")
	cleanCmd.Flags().BoolVar(&cleanLayouts, "layouts", false, "remove unused layouts")
	cleanCmd.Flags().BoolVar(&cleanMasters, "masters", false, "remove unused masters (advanced)")
	rootCmd.AddCommand(cleanCmd)
}
