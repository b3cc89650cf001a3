// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

// calculateUnused derives each unused set as universe minus active. Pure
// set difference; together with the closure's universe-membership filter it
// gives the partition property: active and unused split each universe
// exactly, with no overlap.
func (a *Analyzer) calculateUnused(res *Result) {
	res.UnusedMasters = res.AllMasters.Diff(res.ActiveMasters)
	res.UnusedLayouts = res.AllLayouts.Diff(res.ActiveLayouts)
	res.UnusedImages = res.AllImages.Diff(res.ActiveImages)
}
