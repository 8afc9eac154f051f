package clipper

import "math"

const defaultArcToleranceFraction = 0.005 // fraction of |delta| when ArcTolerance is unset

type offsetPathGroup struct {
	path     Path64
	joinType JoinType
	endType  EndType
	positive bool // orientation at the time the group was added
}

// ClipperOffset inflates or erodes one or more paths by a fixed distance,
// building each offset contour vertex by vertex (per-vertex normal
// projection with a join inserted at each original vertex) and then
// self-unioning the raw output to merge any overlap the per-vertex
// construction introduced, the same two-pass structure classic Clipper
// offsetting uses.
type ClipperOffset struct {
	opts   OffsetOptions
	groups []offsetPathGroup
}

// NewClipperOffset creates an offsetter with the given options.
func NewClipperOffset(opts OffsetOptions) *ClipperOffset {
	return &ClipperOffset{opts: opts.normalized()}
}

// AddPaths queues paths for offsetting under joinType/endType.
func (co *ClipperOffset) AddPaths(paths Paths64, joinType JoinType, endType EndType) {
	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		co.groups = append(co.groups, offsetPathGroup{
			path: p, joinType: joinType, endType: endType, positive: IsPositive64(p),
		})
	}
}

// Execute produces the offset result for every queued path at distance delta.
func (co *ClipperOffset) Execute(delta float64) (Paths64, error) {
	if len(co.groups) == 0 {
		return nil, nil
	}
	var raw Paths64
	for _, g := range co.groups {
		r, err := co.offsetGroup(g, delta)
		if err != nil {
			return nil, err
		}
		raw = append(raw, r...)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	// Each group has already been self-cleaned (see cleanClosedOffset), so
	// this final pass only has to merge distinct groups together. Groups
	// can legitimately disagree on orientation (an outer boundary and one
	// of its holes), so it is a plain NonZero merge, not another
	// orientation filter.
	return Union64(raw, nil, NonZero)
}

func (co *ClipperOffset) offsetGroup(g offsetPathGroup, delta float64) (Paths64, error) {
	path := g.path
	if !g.endType.isClosed() && len(path) < 2 {
		return nil, nil
	}
	if g.endType.isClosed() {
		// Work in the path's own orientation; callers normalize upstream.
		if !g.positive {
			delta = -delta
		}
	}

	n := len(path)
	var normals []point2f
	if g.endType.isClosed() {
		normals = closedPathNormals(path)
	} else {
		normals = openPathNormals(path)
	}

	var out Path64
	lastIdx := n - 1
	if !g.endType.isClosed() {
		lastIdx = n - 2
	}
	for i := 0; i <= lastIdx; i++ {
		j := i + 1
		if g.endType.isClosed() {
			j = (i + 1) % n
		}
		out = co.applyJoin(out, path, normals, i, j, delta, g.joinType, g.endType)
	}
	if !g.endType.isClosed() {
		co.capEnd(&out, path, normals, n-1, delta, g.endType)
		for i := n - 1; i > 0; i-- {
			out = co.applyJoin(out, path, normals, i, i-1, delta, g.joinType, g.endType)
		}
		co.capEnd(&out, path, normals, 0, delta, g.endType)
		return Paths64{out}, nil
	}

	cleaned, err := co.cleanClosedOffset(out, g.positive)
	if err != nil {
		return nil, err
	}
	if g.endType == ClosedLine {
		inner, err := co.offsetGroup(offsetPathGroup{path: Reverse64(path), joinType: g.joinType, endType: ClosedPolygon, positive: !g.positive}, delta)
		if err != nil {
			return nil, err
		}
		return append(cleaned, inner...), nil
	}
	return cleaned, nil
}

// cleanClosedOffset resolves the self-intersection a closed-polygon offset
// develops when the distance overshoots the shape it is applied to (most
// commonly an erosion past a strand's own width, §4.4's sliver removal): the
// raw per-vertex contour folds back on itself, and a plain self-union under
// NonZero splits that fold into two kinds of loop, the legitimate remaining
// area and a reverse-wound artifact of the fold. A valid offset keeps its
// source path's winding sense, so any contour whose orientation does not
// match expectedPositive is that artifact and is dropped rather than carried
// through as spurious geometry; an over-erosion with nothing left therefore
// collapses to an empty result instead of surviving as an inverted island.
func (co *ClipperOffset) cleanClosedOffset(out Path64, expectedPositive bool) (Paths64, error) {
	if len(out) < 3 {
		return nil, nil
	}
	merged, err := Union64(Paths64{out}, nil, NonZero)
	if err != nil {
		return nil, err
	}
	cleaned := make(Paths64, 0, len(merged))
	for _, c := range merged {
		if IsPositive64(c) == expectedPositive {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned, nil
}

type point2f struct{ x, y float64 }

func edgeNormal(a, b Point64) point2f {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return point2f{}
	}
	return point2f{x: dy / length, y: -dx / length}
}

func closedPathNormals(path Path64) []point2f {
	n := len(path)
	out := make([]point2f, n)
	for i := 0; i < n; i++ {
		out[i] = edgeNormal(path[i], path[(i+1)%n])
	}
	return out
}

func openPathNormals(path Path64) []point2f {
	n := len(path)
	if n < 2 {
		return nil
	}
	out := make([]point2f, n-1)
	for i := 0; i < n-1; i++ {
		out[i] = edgeNormal(path[i], path[i+1])
	}
	return out
}

// applyJoin appends the offset point(s) for the vertex at index i (using
// the normal of the edge i->j) and, if i is an interior vertex, the join
// geometry connecting it to the previous edge's offset point.
func (co *ClipperOffset) applyJoin(out Path64, path Path64, normals []point2f, i, j int, delta float64, joinType JoinType, endType EndType) Path64 {
	n := normals[i%len(normals)]
	pt := path[i]
	offPt := Point64{
		X: pt.X + int64(math.Round(n.x*delta)),
		Y: pt.Y + int64(math.Round(n.y*delta)),
	}
	if len(out) == 0 {
		return append(out, offPt)
	}
	prevN := normals[(i-1+len(normals))%len(normals)]
	switch joinType {
	case Round:
		out = append(out, co.arcJoin(pt, prevN, n, delta)...)
	case Miter:
		out = append(out, co.miterJoin(pt, prevN, n, delta)...)
	case Bevel, Square:
		out = append(out, co.bevelJoin(pt, prevN, n, delta)...)
	}
	return append(out, offPt)
}

func (co *ClipperOffset) bevelJoin(pt Point64, n0, n1 point2f, delta float64) Path64 {
	p0 := Point64{pt.X + int64(math.Round(n0.x*delta)), pt.Y + int64(math.Round(n0.y*delta))}
	return Path64{p0}
}

func (co *ClipperOffset) miterJoin(pt Point64, n0, n1 point2f, delta float64) Path64 {
	cosA := n0.x*n1.x + n0.y*n1.y
	if cosA < -1 {
		cosA = -1
	}
	limit := co.opts.MiterLimit
	if cosA <= -0.999 || (1+cosA) == 0 {
		return co.bevelJoin(pt, n0, n1, delta)
	}
	// Miter distance scales as 1/cos(halfAngle); bail out to a bevel past MiterLimit.
	scale := math.Sqrt(2 / (1 + cosA))
	if scale > limit {
		return co.bevelJoin(pt, n0, n1, delta)
	}
	mx := (n0.x + n1.x) * 0.5
	my := (n0.y + n1.y) * 0.5
	mlen := math.Hypot(mx, my)
	if mlen == 0 {
		return co.bevelJoin(pt, n0, n1, delta)
	}
	mx, my = mx/mlen, my/mlen
	d := delta * scale
	p := Point64{pt.X + int64(math.Round(mx*d)), pt.Y + int64(math.Round(my*d))}
	return Path64{p}
}

// arcJoin flattens the round join from n0 to n1 about pt into a bounded
// number of segments, the step count chosen so the chord never deviates
// from the true arc by more than ArcTolerance.
func (co *ClipperOffset) arcJoin(pt Point64, n0, n1 point2f, delta float64) Path64 {
	a0 := math.Atan2(n0.y, n0.x)
	a1 := math.Atan2(n1.y, n1.x)
	da := a1 - a0
	for da <= -math.Pi {
		da += 2 * math.Pi
	}
	for da > math.Pi {
		da -= 2 * math.Pi
	}
	absDelta := math.Abs(delta)
	tol := co.opts.ArcTolerance
	if tol <= 0 {
		tol = math.Max(absDelta*defaultArcToleranceFraction, 1)
	}
	steps := arcStepCount(absDelta, tol, math.Abs(da))
	out := make(Path64, 0, steps)
	for s := 1; s < steps; s++ {
		a := a0 + da*float64(s)/float64(steps)
		out = append(out, Point64{
			pt.X + int64(math.Round(math.Cos(a)*delta)),
			pt.Y + int64(math.Round(math.Sin(a)*delta)),
		})
	}
	return out
}

// arcStepCount returns the number of segments needed to flatten an arc of
// the given radius and angular span within tolerance, using the standard
// chord-deviation bound steps = ceil(angle / (2*acos(1 - tol/radius))).
func arcStepCount(radius, tolerance, angle float64) int {
	if radius <= 0 || angle <= 0 {
		return 1
	}
	ratio := 1 - tolerance/radius
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		return 1
	}
	stepAngle := 2 * math.Acos(ratio)
	if stepAngle <= 0 {
		return 1
	}
	steps := int(math.Ceil(angle / stepAngle))
	if steps < 1 {
		steps = 1
	}
	if steps > 1000 {
		steps = 1000
	}
	return steps
}

func (co *ClipperOffset) capEnd(out *Path64, path Path64, normals []point2f, idx int, delta float64, endType EndType) {
	if len(normals) == 0 {
		return
	}
	var n point2f
	if idx == 0 {
		n = normals[0]
	} else {
		n = normals[len(normals)-1]
	}
	pt := path[idx]
	switch endType {
	case OpenButt:
		p := Point64{pt.X + int64(math.Round(n.x*delta)), pt.Y + int64(math.Round(n.y*delta))}
		*out = append(*out, p)
	case OpenSquare:
		perp := point2f{x: -n.y, y: n.x}
		if idx != 0 {
			perp = point2f{x: n.y, y: -n.x}
		}
		p1 := Point64{
			pt.X + int64(math.Round((n.x+perp.x)*delta)),
			pt.Y + int64(math.Round((n.y+perp.y)*delta)),
		}
		p2 := Point64{
			pt.X + int64(math.Round((-n.x+perp.x)*delta)),
			pt.Y + int64(math.Round((-n.y+perp.y)*delta)),
		}
		*out = append(*out, p1, p2)
	case OpenRound:
		a0 := math.Atan2(n.y, n.x)
		sign := 1.0
		if idx == 0 {
			sign = -1.0
		}
		steps := arcStepCount(math.Abs(delta), math.Max(math.Abs(delta)*defaultArcToleranceFraction, 1), math.Pi)
		for s := 0; s <= steps; s++ {
			a := a0 + sign*math.Pi*float64(s)/float64(steps)
			*out = append(*out, Point64{
				pt.X + int64(math.Round(math.Cos(a)*delta)),
				pt.Y + int64(math.Round(math.Sin(a)*delta)),
			})
		}
	}
}
