package planebuild

import (
	"github.com/go-pcb/planefill/board"
	"github.com/go-pcb/planefill/clipper"
)

// boardClip implements stage 2: combine every board-outline polygon with
// xor/even-odd, erode the result inward by the plane's clearance, and
// intersect the working set with what remains. Returns false only when the
// pipeline must terminate immediately: the board outline is missing or its
// erosion vanished entirely (§4.2 step 4). An empty intersection with a
// non-empty eroded board is a legitimate empty-fragment result, not
// termination, so that case still returns true.
func (b *Builder) boardClip() bool {
	var outlines clipper.Paths64
	for _, poly := range b.snapshot.Polygons() {
		if poly.Layer != board.BoardOutlinesLayer {
			continue
		}
		if ip := poly.Path.ToIntPath(); ip != nil {
			outlines = append(outlines, ip)
		}
	}
	if len(outlines) == 0 {
		return false
	}

	ring, err := clipper.Xor64(outlines, nil, clipper.EvenOdd)
	if err != nil || len(ring) == 0 {
		return false
	}

	eroded, err := clipper.InflatePaths64(ring, -float64(b.plane.MinClearance), clipper.Round, clipper.ClosedPolygon, arcToleranceOptions())
	if err != nil || len(eroded) == 0 {
		return false
	}

	working, err := clipper.Intersect64(b.result, eroded, clipper.NonZero)
	if err != nil {
		return false
	}
	b.result = working
	return true
}

// arcToleranceOptions is the offset tolerance shared by every stage that
// inflates or erodes with rounded joins.
func arcToleranceOptions() clipper.OffsetOptions {
	return clipper.OffsetOptions{ArcTolerance: 5000}
}
