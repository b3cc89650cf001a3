// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/IBM/pptxprune/analysis"
	"github.com/IBM/pptxprune/cleanup"
)

var (
	analyzeFormat  string
	analyzeScripts bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:                   "analyze [flags] <FOLDER>",
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(1),
	Short:                 "Classify masters, layouts, and images as active or unused",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runAnalysis(args[0])
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		switch analyzeFormat {
		case "text":
			printReport(res)
		case "yaml":
			out, err := yaml.Marshal(res.Serialized())
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		default:
			return fmt.Errorf("unknown format %q, expected text or yaml", analyzeFormat)
		}

		if analyzeScripts {
			cmd.SilenceUsage = true
			return cleanup.WriteScripts(res.Root, res)
		}
		return nil
	},
}

// runAnalysis is the shared entry point for analyze and clean.
func runAnalysis(folder string) (*analysis.Result, error) {
	if _, err := os.Stat(folder); err != nil {
		return nil, fmt.Errorf("folder %q does not exist", folder)
	}
	a := analysis.New(folder, analysis.Options{
		Workers:  workers,
		Progress: progress,
	})
	return a.Run()
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "text", "report format (text or yaml)")
	analyzeCmd.Flags().BoolVar(&analyzeScripts, "scripts", true, "generate removal scripts and the unused components manifest")
	rootCmd.AddCommand(analyzeCmd)
}
