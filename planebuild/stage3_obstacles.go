package planebuild

import (
	"github.com/go-pcb/planefill/board"
	"github.com/go-pcb/planefill/clipper"
	"github.com/go-pcb/planefill/geom"
)

// subtractObstacles implements stage 3: assemble one clip group from every
// foreign obstacle and same-net cut-out, then subtract it from the working
// set in a single EvenOdd(subject)/NonZero(clip) difference, recording
// same-net contacts along the way for stage 6's orphan test.
func (b *Builder) subtractObstacles() {
	var clip clipper.Paths64

	clip = append(clip, b.otherPlaneObstacles()...)
	clip = append(clip, b.holeObstacles()...)
	clip = append(clip, b.padObstacles()...)
	clip = append(clip, b.viaObstacles()...)
	clip = append(clip, b.netLineObstacles()...)

	if len(clip) == 0 {
		return
	}
	diff, err := clipper.BooleanOp64(clipper.Difference, clipper.EvenOdd, clipper.NonZero, b.result, clip)
	if err != nil {
		return
	}
	b.result = diff
}

// otherPlaneObstacles collects the cached fragments of every other plane
// that qualifies as an obstacle: same layer, a different net, and not
// lower priority than self under the §4.8 ordering.
func (b *Builder) otherPlaneObstacles() clipper.Paths64 {
	var out clipper.Paths64
	for _, other := range b.snapshot.Planes() {
		if other == b.plane {
			continue
		}
		if other.Layer != b.plane.Layer {
			continue
		}
		if other.Net == b.plane.Net {
			continue
		}
		if other.Less(b.plane) {
			continue // lower priority: self wins, not an obstacle
		}
		for _, frag := range other.Fragments {
			out = append(out, frag.ToIntPath())
		}
	}
	if len(out) == 0 {
		return nil
	}
	inflated, err := clipper.InflatePaths64(out, float64(b.plane.MinClearance), clipper.Round, clipper.ClosedPolygon, arcToleranceOptions())
	if err != nil {
		return nil
	}
	return inflated
}

// holeObstacles turns every device hole into an inflated disc obstacle,
// regardless of net.
func (b *Builder) holeObstacles() clipper.Paths64 {
	var discs clipper.Paths64
	for _, dev := range b.snapshot.Devices() {
		for _, hole := range dev.Footprint.Holes {
			radius := hole.Diameter/2 + b.plane.MinClearance
			disc := geom.Circle(hole.Position, radius)
			discs = append(discs, disc.ToIntPath())
		}
	}
	return discs
}

// padObstacles applies the pad cut-out rule and records same-net contacts.
func (b *Builder) padObstacles() clipper.Paths64 {
	var out clipper.Paths64
	for _, dev := range b.snapshot.Devices() {
		for _, pad := range dev.Footprint.Pads {
			if !pad.IsOnLayer(b.plane.Layer) {
				continue
			}
			sameNet := pad.Net == b.plane.Net
			if sameNet {
				b.sameNetContacts = append(b.sameNetContacts, pad.SceneOutline.ToIntPath())
			}
			if b.plane.ConnectStyle == board.ConnectNone || !sameNet {
				if cut := inflateOne(pad.SceneOutline, b.plane.MinClearance); cut != nil {
					out = append(out, cut)
				}
			}
		}
	}
	return out
}

// viaObstacles mirrors padObstacles for vias.
func (b *Builder) viaObstacles() clipper.Paths64 {
	var out clipper.Paths64
	for _, seg := range b.snapshot.NetSegments() {
		sameNet := seg.Net == b.plane.Net
		for _, via := range seg.Vias {
			if sameNet {
				b.sameNetContacts = append(b.sameNetContacts, via.SceneOutline.ToIntPath())
			}
			if b.plane.ConnectStyle == board.ConnectNone || !sameNet {
				if cut := inflateOne(via.SceneOutline, b.plane.MinClearance); cut != nil {
					out = append(out, cut)
				}
			}
		}
	}
	return out
}

// netLineObstacles applies the net-line rule: same-net lines contribute to
// the contact set at their true (clearance-0) width and never cut the
// plane; foreign-net lines on the plane's layer are inflated cut-outs.
func (b *Builder) netLineObstacles() clipper.Paths64 {
	var out clipper.Paths64
	for _, seg := range b.snapshot.NetSegments() {
		for _, nl := range seg.NetLines {
			if nl.Layer != b.plane.Layer {
				continue
			}
			if seg.Net == b.plane.Net {
				b.sameNetContacts = append(b.sameNetContacts, nl.SceneOutline.ToIntPath())
				continue
			}
			if cut := inflateOne(nl.SceneOutline, b.plane.MinClearance); cut != nil {
				out = append(out, cut)
			}
		}
	}
	return out
}

// inflateOne offsets a single path outward by clearance, returning its
// first (and only) result contour.
func inflateOne(p geom.Path, clearance geom.Length) clipper.Path64 {
	ip := p.ToIntPath()
	if ip == nil {
		return nil
	}
	inflated, err := clipper.InflatePaths64(clipper.Paths64{ip}, float64(clearance), clipper.Round, clipper.ClosedPolygon, arcToleranceOptions())
	if err != nil || len(inflated) == 0 {
		return nil
	}
	return inflated[0]
}
