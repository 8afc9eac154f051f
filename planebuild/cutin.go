package planebuild

import (
	"log"
	"sort"

	"github.com/go-pcb/planefill/clipper"
)

// convertHolesToCutIns implements §4.6: for every hole, cut a zero-width
// corridor from the hole's minimum-Y vertex straight up to the nearest
// outline edge above it, producing one closed path that encodes every hole
// as a cut-in rather than a separate inner ring.
func (b *Builder) convertHolesToCutIns(outline clipper.Path64, holes []clipper.Path64) clipper.Path64 {
	prepared := b.prepareHoles(holes)
	sort.Slice(prepared, func(i, j int) bool { return prepared[i][0].Y < prepared[j][0].Y })

	result := append(clipper.Path64(nil), outline...)
	for _, hole := range prepared {
		result = b.insertCutIn(result, hole)
	}
	return result
}

// prepareHoles drops degenerate holes and rotates each survivor to begin
// at its minimum-Y vertex (the connection vertex), breaking ties by the
// first such vertex encountered in the existing order.
func (b *Builder) prepareHoles(holes []clipper.Path64) []clipper.Path64 {
	out := make([]clipper.Path64, 0, len(holes))
	for _, hole := range holes {
		deduped := dedupeClosed(hole)
		if len(deduped) < 3 {
			b.diagnostics = append(b.diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Message:  "degenerate hole with fewer than 3 distinct vertices, skipped",
			})
			log.Printf("planebuild: degenerate hole with %d distinct vertices, skipping", len(deduped))
			continue
		}
		out = append(out, rotateToMinY(deduped))
	}
	return out
}

// dedupeClosed removes consecutive duplicate points and drops a closing
// point equal to the first.
func dedupeClosed(path clipper.Path64) clipper.Path64 {
	var out clipper.Path64
	for _, p := range path {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// rotateToMinY returns path starting at its minimum-Y vertex, keeping
// relative order, breaking ties by the earliest such vertex in path.
func rotateToMinY(path clipper.Path64) clipper.Path64 {
	minIdx := 0
	for i, p := range path {
		if p.Y < path[minIdx].Y {
			minIdx = i
		}
	}
	if minIdx == 0 {
		return path
	}
	out := make(clipper.Path64, len(path))
	copy(out, path[minIdx:])
	copy(out[len(path)-minIdx:], path[:minIdx])
	return out
}

// insertCutIn splices hole into outline at the outline edge immediately
// above hole's connection vertex (hole[0]), per the edge-straddle rule of
// §4.6/§9: an edge qualifies when its start is strictly left of the
// vertical line x = p.X and its end strictly right of it, or its start is
// at or right of that line and its end at or left of it, an intentionally
// asymmetric half-open comparison. If no qualifying edge exists, the
// outline is returned unchanged
// and a critical diagnostic is recorded.
func (b *Builder) insertCutIn(outline clipper.Path64, hole clipper.Path64) clipper.Path64 {
	p := hole[0]
	n := len(outline)
	bestIdx := -1
	var bestY int64
	haveBest := false

	for i := 0; i < n; i++ {
		a := outline[i]
		c := outline[(i+1)%n]
		if a.X == c.X {
			continue // vertical edge never straddles a vertical test line
		}
		straddles := (a.X < p.X) != (c.X <= p.X)
		if !straddles {
			continue
		}
		t := float64(p.X-a.X) / float64(c.X-a.X)
		y := float64(a.Y) + t*float64(c.Y-a.Y)
		yi := clampToEdgeY(int64(y+0.5), a.Y, c.Y)
		if yi > p.Y {
			continue
		}
		if !haveBest || yi > bestY {
			haveBest = true
			bestY = yi
			bestIdx = i
		}
	}

	if !haveBest {
		b.diagnostics = append(b.diagnostics, Diagnostic{
			Severity: SeverityCritical,
			Message:  "no outline edge found to connect hole, leaving outline unmodified (possible invalid output)",
		})
		log.Printf("planebuild: critical: no cut-in seam found for hole connection vertex %+v", p)
		return outline
	}

	seamPoint := clipper.Point64{X: p.X, Y: bestY}
	out := make(clipper.Path64, 0, len(outline)+len(hole)+2)
	out = append(out, outline[:bestIdx+1]...)
	out = append(out, seamPoint)
	out = append(out, hole...)
	out = append(out, seamPoint)
	out = append(out, outline[bestIdx+1:]...)
	return out
}

func clampToEdgeY(y, a, c int64) int64 {
	lo, hi := a, c
	if lo > hi {
		lo, hi = hi, lo
	}
	if y < lo {
		return lo
	}
	if y > hi {
		return hi
	}
	return y
}
