package clipper

// Area64 returns the signed area of path (shoelace formula). A positive
// result indicates a counter-clockwise path in a standard Y-up frame; the
// board-plane builder's coordinate frame is Y-down on screen, so callers
// there treat negative area as the "normal" orientation (see geom package).
func Area64(path Path64) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	var area int64
	prev := path[n-1]
	for _, pt := range path {
		area += (prev.X + pt.X) * (pt.Y - prev.Y)
		prev = pt
	}
	return float64(area) / 2.0
}

// IsPositive64 reports whether path has positive (counter-clockwise) orientation.
func IsPositive64(path Path64) bool {
	return Area64(path) > 0
}

// Reverse64 returns a copy of path with point order reversed.
func Reverse64(path Path64) Path64 {
	out := make(Path64, len(path))
	for i, pt := range path {
		out[len(path)-1-i] = pt
	}
	return out
}

// ReversePaths64 reverses every path in paths.
func ReversePaths64(paths Paths64) Paths64 {
	out := make(Paths64, len(paths))
	for i, p := range paths {
		out[i] = Reverse64(p)
	}
	return out
}

// Bounds64 returns the axis-aligned bounding box of path.
func Bounds64(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{}
	}
	r := Rect64{Left: path[0].X, Right: path[0].X, Top: path[0].Y, Bottom: path[0].Y}
	for _, pt := range path[1:] {
		if pt.X < r.Left {
			r.Left = pt.X
		}
		if pt.X > r.Right {
			r.Right = pt.X
		}
		if pt.Y < r.Top {
			r.Top = pt.Y
		}
		if pt.Y > r.Bottom {
			r.Bottom = pt.Y
		}
	}
	return r
}

// BoundsPaths64 returns the union bounding box of every path in paths.
func BoundsPaths64(paths Paths64) Rect64 {
	var r Rect64
	first := true
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		b := Bounds64(p)
		if first {
			r = b
			first = false
			continue
		}
		if b.Left < r.Left {
			r.Left = b.Left
		}
		if b.Right > r.Right {
			r.Right = b.Right
		}
		if b.Top < r.Top {
			r.Top = b.Top
		}
		if b.Bottom > r.Bottom {
			r.Bottom = b.Bottom
		}
	}
	return r
}

// WindingNumber64 returns the winding number of point about polygon, using
// the standard crossing-number accumulation (each upward crossing of the
// ray to the right of point contributes +1, each downward crossing -1).
func WindingNumber64(point Point64, polygon Path64) int {
	n := len(polygon)
	if n < 3 {
		return 0
	}
	wn := 0
	prev := polygon[n-1]
	for _, cur := range polygon {
		if prev.Y <= point.Y {
			if cur.Y > point.Y && isLeft(prev, cur, point) > 0 {
				wn++
			}
		} else {
			if cur.Y <= point.Y && isLeft(prev, cur, point) < 0 {
				wn--
			}
		}
		prev = cur
	}
	return wn
}

// isLeft returns >0 if point is left of the line a->b, <0 if right, 0 if on it.
func isLeft(a, b, point Point64) int64 {
	return (b.X-a.X)*(point.Y-a.Y) - (point.X-a.X)*(b.Y-a.Y)
}

// PointInPath64 reports whether point lies strictly inside polygon under fillRule.
func PointInPath64(point Point64, polygon Path64, fillRule FillRule) bool {
	return fillRule.fillTest(WindingNumber64(point, polygon))
}
