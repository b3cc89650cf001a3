// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

import (
	"path"
	"sync"

	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/IBM/pptxprune/opc"
)

// slideLinks is the per-slide traversal outcome: the layout the slide uses
// and the master that layout belongs to. Either may be empty when the chain
// breaks (missing sidecar, dangling target).
type slideLinks struct {
	layout string
	master string
}

// closure marks everything reachable from the active slides. The traversal
// has a fixed depth of three hops (slide -> layout -> master) followed by
// two fan-out passes:
//
//  1. per slide: the first slideLayout edge joins ActiveLayouts, and that
//     layout's first slideMaster edge joins ActiveMasters;
//  2. layout pull: every slideLayout edge of every active master joins
//     ActiveLayouts, keeping layouts that are wired into a live master
//     even when no current slide uses them;
//  3. media scan: every edge from any active part into the media folder
//     marks the target filename as used, whether or not the part's
//     rendered content actually draws it.
//
// Resolved targets only join a set when the corresponding universe already
// holds them; the closure never invents parts. Additions are unions, so the
// outcome is independent of slide processing order.
func (a *Analyzer) closure(res *Result) {
	a.walkSlides(res)
	a.pullMasterLayouts(res)
	a.markMedia(res)
}

// walkSlides runs the per-slide step, fanning out to a worker pool when
// configured. Each slide's resolution touches only that slide's files, so
// the only coordination needed is mutual exclusion around the set inserts.
func (a *Analyzer) walkSlides(res *Result) {
	slides := res.ActiveSlides
	if len(slides) == 0 {
		return
	}

	var bar *pb.ProgressBar
	if a.opts.Progress {
		bar = pb.New(len(slides)).Prefix("Slides:").Start()
	}

	workers := a.opts.Workers
	if workers > len(slides) {
		workers = len(slides)
	}
	if workers <= 1 {
		for _, slide := range slides {
			res.merge(a.resolveSlide(slide))
			if bar != nil {
				bar.Increment()
			}
		}
	} else {
		work := make(chan opc.Part, len(slides))
		for _, slide := range slides {
			work <- slide
		}
		close(work)

		var mu sync.Mutex
		wg := sync.WaitGroup{}
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for slide := range work {
					links := a.resolveSlide(slide)
					mu.Lock()
					res.merge(links)
					mu.Unlock()
					if bar != nil {
						bar.Increment()
					}
				}
			}()
		}
		wg.Wait()
	}

	if bar != nil {
		bar.Finish()
	}
}

// resolveSlide follows one slide's chain: its layout edge, then that
// layout's master edge. Any break in the chain ends it early; the slide
// still counts as active, it just contributes fewer live parts.
func (a *Analyzer) resolveSlide(slide opc.Part) slideLinks {
	rels := a.index.Load(slide)
	edge, ok := a.firstEdge(rels, opc.TypeSlideLayout)
	if !ok {
		return slideLinks{}
	}
	layout := opc.Part{Path: rels.Resolve(edge), Kind: opc.KindLayout}

	lrels := a.index.Load(layout)
	medge, ok := a.firstEdge(lrels, opc.TypeSlideMaster)
	if !ok {
		return slideLinks{layout: layout.Path}
	}
	return slideLinks{layout: layout.Path, master: lrels.Resolve(medge)}
}

// firstEdge applies the singular-edge convention: slides reference exactly
// one layout and layouts exactly one master, so the first matching edge in
// sidecar order wins. Extra matches indicate a malformed producer; they are
// flagged and ignored without changing the chosen edge.
func (a *Analyzer) firstEdge(rels *opc.Relationships, marker string) (opc.Relationship, bool) {
	edges := rels.All(marker)
	if len(edges) == 0 {
		return opc.Relationship{}, false
	}
	if len(edges) > 1 {
		log.WithField("part", rels.Source.Name()).
			WithField("type", marker).
			Warnf("expected one %s relationship, found %d, using the first", marker, len(edges))
	}
	return edges[0], true
}

// merge folds one slide's links into the active sets, dropping anything
// outside the declared universes.
func (r *Result) merge(links slideLinks) {
	if links.layout != "" && r.AllLayouts.Has(links.layout) {
		r.ActiveLayouts.Add(links.layout)
	}
	if links.master != "" && r.AllMasters.Has(links.master) {
		r.ActiveMasters.Add(links.master)
	}
}

// pullMasterLayouts adds every layout an active master declares as its own.
// This deliberately over-approximates liveness: a layout wired into a live
// master is kept even when no current slide uses it, so adding a slide
// later never lands on a deleted layout.
func (a *Analyzer) pullMasterLayouts(res *Result) {
	for _, master := range res.ActiveMasters.Sorted() {
		rels := a.index.Load(opc.Part{Path: master, Kind: opc.KindMaster})
		for _, edge := range rels.All(opc.TypeSlideLayout) {
			if p := rels.Resolve(edge); res.AllLayouts.Has(p) {
				res.ActiveLayouts.Add(p)
			}
		}
	}
}

// markMedia marks every image referenced from any active part. The match is
// on the raw target path containing the media folder marker, and the image
// is keyed by filename; any structural reference counts as use, including
// a dangling relationship left behind by an editor.
func (a *Analyzer) markMedia(res *Result) {
	parts := make([]opc.Part, 0, len(res.ActiveSlides)+res.ActiveMasters.Len()+res.ActiveLayouts.Len())
	parts = append(parts, res.ActiveSlides...)
	for _, p := range res.ActiveMasters.Sorted() {
		parts = append(parts, opc.Part{Path: p, Kind: opc.KindMaster})
	}
	for _, p := range res.ActiveLayouts.Sorted() {
		parts = append(parts, opc.Part{Path: p, Kind: opc.KindLayout})
	}

	for _, part := range parts {
		rels := a.index.Load(part)
		for _, edge := range rels.AllTargeting(opc.MediaFolder) {
			if name := path.Base(edge.Target); res.AllImages.Has(name) {
				res.ActiveImages.Add(name)
			}
		}
	}
}
