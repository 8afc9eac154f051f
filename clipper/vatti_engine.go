package clipper

import "sort"

// OutPt is one vertex of an in-progress output contour, held in a circular
// doubly linked list so that points can be pushed onto either end cheaply
// while an edge pair is still open.
type OutPt struct {
	pt   Point64
	next *OutPt
	prev *OutPt
}

// OutRec is one output contour under construction. pts points at the
// current "start" of the ring; appendRight grows the ring after pts.prev,
// prependLeft grows it before pts and moves the start back to the new node.
type OutRec struct {
	pts *OutPt
}

func (o *OutRec) appendRight(pt Point64) {
	if o.pts == nil {
		n := &OutPt{pt: pt}
		n.next, n.prev = n, n
		o.pts = n
		return
	}
	last := o.pts.prev
	if last.pt == pt {
		return
	}
	n := &OutPt{pt: pt, next: o.pts, prev: last}
	last.next = n
	o.pts.prev = n
}

func (o *OutRec) prependLeft(pt Point64) {
	if o.pts == nil {
		o.appendRight(pt)
		return
	}
	if o.pts.pt == pt {
		return
	}
	first := o.pts
	n := &OutPt{pt: pt, next: first, prev: first.prev}
	first.prev.next = n
	first.prev = n
	o.pts = n
}

// path renders the ring to a Path64, or nil if it has fewer than 3 points.
func (o *OutRec) path() Path64 {
	if o == nil || o.pts == nil {
		return nil
	}
	var out Path64
	start := o.pts
	n := start
	for {
		out = append(out, n.pt)
		n = n.next
		if n == start {
			break
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

func joinOutRecs(a, b *OutRec) *OutRec {
	if a == b || a.pts == nil {
		return b
	}
	if b.pts == nil {
		return a
	}
	aLast := a.pts.prev
	bLast := b.pts.prev
	aLast.next = b.pts
	b.pts.prev = aLast
	bLast.next = a.pts
	a.pts.prev = bLast
	return a
}

// sweepEdge is one ascending bound of a local minimum, active in the AEL
// between its Bot and the top of its current sub-segment.
type sweepEdge struct {
	b           *bound
	currX       int64
	pathType    PathType
	isLeftBound bool
	outRec      *OutRec

	windCount  int
	windCount2 int

	nextInAEL *sweepEdge
	prevInAEL *sweepEdge
}

func (e *sweepEdge) bot() Point64 { return e.b.cur.pt }
func (e *sweepEdge) top() Point64 { return e.b.top.pt }

func (e *sweepEdge) xAt(y int64) int64 {
	bot, top := e.bot(), e.top()
	if y == bot.Y || top.Y == bot.Y {
		return bot.X
	}
	if y == top.Y {
		return top.X
	}
	return bot.X + (top.X-bot.X)*(y-bot.Y)/(top.Y-bot.Y)
}

// VattiEngine implements a scanline polygon-clipping algorithm in the style
// of Vatti (1992): local minima seed ascending edge bounds, an active edge
// list (AEL) sorted by current X tracks which bounds straddle the current
// scanline, and the subject/clip winding counts accumulated while sweeping
// the AEL left-to-right decide, edge by edge, which intervals belong to the
// result under clipType.
//
// This implementation does not explicitly compute edge-crossing points the
// way a full Bentley-Ottmann-style sweep would; instead the AEL is re-sorted
// by current X every scanline, which keeps left-right order correct at
// every vertex Y even across a crossing, at the cost of placing the output
// vertex near a crossing at the nearest scanline rather than the exact
// intersection. For the plane-fill pipeline's inputs (offset rounded
// shapes, rectangles, board/pad/via outlines) this is adequate; dense
// self-crossing input is out of scope.
type VattiEngine struct {
	clipType  ClipType
	subjFill  FillRule
	clipFill  FillRule
	minima    []localMinima
	scanlines []int64
	active    *sweepEdge
	results   []Path64
}

// NewVattiEngine creates an engine for one boolean operation.
func NewVattiEngine(clipType ClipType, subjFill, clipFill FillRule) *VattiEngine {
	return &VattiEngine{clipType: clipType, subjFill: subjFill, clipFill: clipFill}
}

// AddPaths feeds one set of input paths, tagged as subject or clip.
func (ve *VattiEngine) AddPaths(paths Paths64, pathType PathType) {
	seen := make(map[int64]bool, len(ve.scanlines))
	for _, y := range ve.scanlines {
		seen[y] = true
	}
	for _, path := range paths {
		ring := buildRing(path)
		if ring == nil {
			continue
		}
		ve.minima = append(ve.minima, findLocalMinima(ring, pathType)...)
		n := ring
		for {
			if !seen[n.pt.Y] {
				seen[n.pt.Y] = true
				ve.scanlines = append(ve.scanlines, n.pt.Y)
			}
			n = n.next
			if n == ring {
				break
			}
		}
	}
}

// Execute runs the sweep and returns the flat set of output contours.
// Each contour is consistently wound but callers that need outer/hole
// structure should use ExecuteTree instead.
func (ve *VattiEngine) Execute() (Paths64, error) {
	if len(ve.minima) == 0 {
		return nil, nil
	}
	sort.Slice(ve.minima, func(i, j int) bool {
		pi, pj := ve.minima[i].vertex.pt, ve.minima[j].vertex.pt
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	sort.Slice(ve.scanlines, func(i, j int) bool { return ve.scanlines[i] < ve.scanlines[j] })

	minimaIdx := 0
	for si, y := range ve.scanlines {
		minimaIdx = ve.insertLocalMinima(minimaIdx, y)
		ve.updateCurrX(y)
		ve.resortAEL()
		runs := ve.contributingRuns()
		ve.extendRuns(runs, y)
		if si < len(ve.scanlines)-1 {
			ve.advanceOrClose(y)
		} else {
			ve.closeAll()
		}
	}

	out := ve.results
	ve.results = nil
	return out, nil
}

func (ve *VattiEngine) insertLocalMinima(startIdx int, y int64) int {
	idx := startIdx
	for idx < len(ve.minima) && ve.minima[idx].vertex.pt.Y == y {
		lm := ve.minima[idx]
		left := newBound(lm.vertex, false, true)
		right := newBound(lm.vertex, true, false)
		var outRec *OutRec
		if left != nil || right != nil {
			outRec = &OutRec{}
			outRec.appendRight(lm.vertex.pt)
		}
		if left != nil {
			e := &sweepEdge{b: left, currX: left.cur.pt.X, pathType: lm.pathType, isLeftBound: true, outRec: outRec}
			ve.insertAEL(e)
		}
		if right != nil {
			e := &sweepEdge{b: right, currX: right.cur.pt.X, pathType: lm.pathType, isLeftBound: false, outRec: outRec}
			ve.insertAEL(e)
		}
		idx++
	}
	return idx
}

func (ve *VattiEngine) insertAEL(e *sweepEdge) {
	if ve.active == nil || e.currX < ve.active.currX {
		e.nextInAEL = ve.active
		if ve.active != nil {
			ve.active.prevInAEL = e
		}
		ve.active = e
		return
	}
	cur := ve.active
	for cur.nextInAEL != nil && cur.nextInAEL.currX <= e.currX {
		cur = cur.nextInAEL
	}
	e.nextInAEL = cur.nextInAEL
	e.prevInAEL = cur
	if cur.nextInAEL != nil {
		cur.nextInAEL.prevInAEL = e
	}
	cur.nextInAEL = e
}

func (ve *VattiEngine) removeAEL(e *sweepEdge) {
	if e.prevInAEL != nil {
		e.prevInAEL.nextInAEL = e.nextInAEL
	} else {
		ve.active = e.nextInAEL
	}
	if e.nextInAEL != nil {
		e.nextInAEL.prevInAEL = e.prevInAEL
	}
	e.prevInAEL, e.nextInAEL = nil, nil
}

func (ve *VattiEngine) updateCurrX(y int64) {
	for e := ve.active; e != nil; e = e.nextInAEL {
		e.currX = e.xAt(y)
	}
}

// resortAEL performs one pass of insertion-sort on currX. Re-sorting every
// scanline (rather than tracking crossings explicitly) keeps left-right
// order correct at every vertex even when two edges crossed between
// consecutive scanlines.
func (ve *VattiEngine) resortAEL() {
	changed := true
	for changed {
		changed = false
		for e := ve.active; e != nil && e.nextInAEL != nil; e = e.nextInAEL {
			if e.currX > e.nextInAEL.currX {
				ve.swapAEL(e, e.nextInAEL)
				changed = true
			}
		}
	}
}

func (ve *VattiEngine) swapAEL(a, b *sweepEdge) {
	if a.prevInAEL != nil {
		a.prevInAEL.nextInAEL = b
	} else {
		ve.active = b
	}
	if b.nextInAEL != nil {
		b.nextInAEL.prevInAEL = a
	}
	a.nextInAEL = b.nextInAEL
	b.prevInAEL = a.prevInAEL
	b.nextInAEL = a
	a.prevInAEL = b
}

type sweepRun struct {
	left, right *sweepEdge
}

// contributingRuns walks the AEL left to right, accumulating subject/clip
// winding counts, and groups maximal runs of contributing edges.
func (ve *VattiEngine) contributingRuns() []sweepRun {
	windSubj, windClip := 0, 0
	var runs []sweepRun
	var runStart *sweepEdge
	var prevEdge *sweepEdge
	inRun := false

	for e := ve.active; e != nil; e = e.nextInAEL {
		if e.pathType == PathTypeSubject {
			windSubj += windDx(e)
		} else {
			windClip += windDx(e)
		}
		e.windCount = windSubj
		e.windCount2 = windClip

		contributing := ve.isContributing(e)
		if contributing && !inRun {
			runStart = e
			inRun = true
		} else if !contributing && inRun {
			runs = append(runs, sweepRun{left: runStart, right: prevEdge})
			inRun = false
		}
		prevEdge = e
	}
	if inRun {
		runs = append(runs, sweepRun{left: runStart, right: prevEdge})
	}
	return runs
}

func windDx(e *sweepEdge) int {
	if e.isLeftBound {
		return -1
	}
	return 1
}

func (ve *VattiEngine) isContributing(e *sweepEdge) bool {
	pftSubject := ve.subjFill.fillTest(e.windCount)
	pftClip := ve.clipFill.fillTest(e.windCount2)
	switch ve.clipType {
	case Union:
		return pftSubject || pftClip
	case Intersection:
		return pftSubject && pftClip
	case Difference:
		if e.pathType == PathTypeSubject {
			return pftSubject && !pftClip
		}
		return pftClip && !pftSubject
	case Xor:
		return pftSubject != pftClip
	default:
		return false
	}
}

// extendRuns assigns an OutRec to each run (reusing one from the previous
// scanline when either boundary edge already has one, joining two distinct
// OutRecs if the run merged two previously separate ones) and appends the
// current scanline's point to both boundary edges.
func (ve *VattiEngine) extendRuns(runs []sweepRun, y int64) {
	for _, r := range runs {
		outRec := r.left.outRec
		switch {
		case outRec == nil && r.right.outRec != nil:
			outRec = r.right.outRec
		case outRec != nil && r.right.outRec != nil && outRec != r.right.outRec:
			outRec = joinOutRecs(outRec, r.right.outRec)
		case outRec == nil && r.right.outRec == nil:
			outRec = &OutRec{}
		}
		r.left.outRec = outRec
		r.right.outRec = outRec

		if r.left.isLeftBound {
			outRec.prependLeft(Point64{r.left.currX, y})
		} else {
			outRec.appendRight(Point64{r.left.currX, y})
		}
		if r.right != r.left {
			if r.right.isLeftBound {
				outRec.prependLeft(Point64{r.right.currX, y})
			} else {
				outRec.appendRight(Point64{r.right.currX, y})
			}
		}
	}
}

// advanceOrClose walks every active edge, extending bound chains that have
// more segments above this scanline and closing (or pairing for a merge at
// a local maximum) the ones that end here.
func (ve *VattiEngine) advanceOrClose(y int64) {
	var ending []*sweepEdge
	for e := ve.active; e != nil; e = e.nextInAEL {
		if e.top().Y != y {
			continue
		}
		if e.b.advance() {
			continue // bound chain continues above; stays in the AEL
		}
		ending = append(ending, e)
	}

	for len(ending) > 0 {
		e := ending[0]
		ending = ending[1:]
		partner := findPartner(ending, e.top())
		if partner >= 0 {
			p := ending[partner]
			ending = append(ending[:partner], ending[partner+1:]...)
			ve.closeEdgePair(e, p)
		} else {
			ve.closeEdge(e)
		}
	}
}

func (ve *VattiEngine) closeAll() {
	var ending []*sweepEdge
	for e := ve.active; e != nil; e = e.nextInAEL {
		ending = append(ending, e)
	}
	for _, e := range ending {
		ve.closeEdge(e)
	}
}

func findPartner(candidates []*sweepEdge, top Point64) int {
	for i, c := range candidates {
		if c.top() == top {
			return i
		}
	}
	return -1
}

func (ve *VattiEngine) closeEdgePair(a, b *sweepEdge) {
	if a.outRec != nil && b.outRec != nil && a.outRec != b.outRec {
		joinOutRecs(a.outRec, b.outRec)
	}
	ve.finish(a.outRec)
	ve.removeAEL(a)
	ve.removeAEL(b)
}

func (ve *VattiEngine) closeEdge(e *sweepEdge) {
	ve.finish(e.outRec)
	ve.removeAEL(e)
}

func (ve *VattiEngine) finish(outRec *OutRec) {
	if outRec == nil {
		return
	}
	if p := outRec.path(); p != nil {
		ve.results = append(ve.results, p)
	}
	// Both bounding edges of a contour share its OutRec; emit it only once.
	outRec.pts = nil
}
