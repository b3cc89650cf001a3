// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IBM/pptxprune/analysis"
)

// layoutListCap limits how many unused layouts the text report spells out;
// decks produced by template-happy editors can have hundreds.
const layoutListCap = 20

func printReport(res *analysis.Result) {
	rule := "======================================================================"
	fmt.Println(rule)
	fmt.Println("CLEANUP REPORT")
	fmt.Println(rule)

	fmt.Printf("\nActive slides: %d\n", len(res.ActiveSlides))
	fmt.Printf("Active masters: %d / %d\n", res.ActiveMasters.Len(), res.AllMasters.Len())
	fmt.Printf("Active layouts: %d / %d\n", res.ActiveLayouts.Len(), res.AllLayouts.Len())
	fmt.Printf("Referenced images: %d / %d\n", res.ActiveImages.Len(), res.AllImages.Len())

	if res.UnusedImages.Len() > 0 {
		fmt.Printf("\n--- UNUSED IMAGES (%d) ---\n", res.UnusedImages.Len())
		var total int64
		for _, img := range res.UnusedImages.Sorted() {
			size := fileSize(filepath.Join(res.Root, "ppt", "media", img))
			total += size
			fmt.Printf("  %s: %d bytes\n", img, size)
		}
		fmt.Printf("\nTotal space to reclaim: %d bytes (%.2f MB)\n", total, float64(total)/1024/1024)
	}

	if res.UnusedMasters.Len() > 0 {
		fmt.Printf("\n--- UNUSED MASTERS (%d) ---\n", res.UnusedMasters.Len())
		for _, m := range res.UnusedMasters.Sorted() {
			fmt.Printf("  %s\n", filepath.Base(m))
		}
	}

	if res.UnusedLayouts.Len() > 0 {
		fmt.Printf("\n--- UNUSED LAYOUTS (%d) ---\n", res.UnusedLayouts.Len())
		layouts := res.UnusedLayouts.Sorted()
		for i, l := range layouts {
			if i == layoutListCap {
				fmt.Printf("  ... and %d more\n", len(layouts)-layoutListCap)
				break
			}
			fmt.Printf("  %s\n", filepath.Base(l))
		}
	}
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
