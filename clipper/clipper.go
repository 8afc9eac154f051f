package clipper

// Clipper64 accumulates subject and clip paths for a single boolean
// operation. The zero value is ready to use.
type Clipper64 struct {
	subjects Paths64
	clips    Paths64
}

// AddSubjectPaths appends paths to the subject set.
func (c *Clipper64) AddSubjectPaths(paths Paths64) {
	c.subjects = append(c.subjects, paths...)
}

// AddClipPaths appends paths to the clip set.
func (c *Clipper64) AddClipPaths(paths Paths64) {
	c.clips = append(c.clips, paths...)
}

// Execute runs clipType over the accumulated subject and clip paths,
// applying subjectFillRule to the subject side and clipFillRule to the
// clip side independently. This mirrors the classic ClipperLib1 contract
// of a per-side fill rule, rather than the single shared fill rule later
// Clipper2 APIs use: callers that need the same rule on both sides pass it
// twice, and callers combining sets built under different rules (e.g. an
// even-odd subject against a non-zero clip obstacle set) pass each rule
// once.
func (c *Clipper64) Execute(clipType ClipType, subjectFillRule, clipFillRule FillRule) (Paths64, error) {
	if !subjectFillRule.valid() || !clipFillRule.valid() {
		return nil, ErrInvalidFillRule
	}
	if clipType > Xor {
		return nil, ErrInvalidClipType
	}
	engine := NewVattiEngine(clipType, subjectFillRule, clipFillRule)
	engine.AddPaths(c.subjects, PathTypeSubject)
	engine.AddPaths(c.clips, PathTypeClip)
	return engine.Execute()
}

// ExecuteTree runs clipType as Execute does, then assembles the resulting
// flat contours into a hierarchical PolyTree64 of outer outlines and holes
// by point-in-polygon containment.
func (c *Clipper64) ExecuteTree(clipType ClipType, subjectFillRule, clipFillRule FillRule) (*PolyTree64, error) {
	paths, err := c.Execute(clipType, subjectFillRule, clipFillRule)
	if err != nil {
		return nil, err
	}
	return buildPolyTree(paths), nil
}

// BooleanOp64 is the functional form of Clipper64: a one-shot boolean
// operation over explicit subject and clip sets with independent fill
// rules on each side.
func BooleanOp64(clipType ClipType, subjectFillRule, clipFillRule FillRule, subjects, clips Paths64) (Paths64, error) {
	var c Clipper64
	c.AddSubjectPaths(subjects)
	c.AddClipPaths(clips)
	return c.Execute(clipType, subjectFillRule, clipFillRule)
}

// BooleanOpTree64 is the PolyTree64-producing counterpart of BooleanOp64.
func BooleanOpTree64(clipType ClipType, subjectFillRule, clipFillRule FillRule, subjects, clips Paths64) (*PolyTree64, error) {
	var c Clipper64
	c.AddSubjectPaths(subjects)
	c.AddClipPaths(clips)
	return c.ExecuteTree(clipType, subjectFillRule, clipFillRule)
}

// Union64 returns the union of subjects and clips, both under fillRule.
func Union64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Union, fillRule, fillRule, subjects, clips)
}

// Intersect64 returns the intersection of subjects and clips, both under fillRule.
func Intersect64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Intersection, fillRule, fillRule, subjects, clips)
}

// Difference64 returns subjects minus clips, both under fillRule.
func Difference64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Difference, fillRule, fillRule, subjects, clips)
}

// Xor64 returns the symmetric difference of subjects and clips, both under fillRule.
func Xor64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Xor, fillRule, fillRule, subjects, clips)
}

// InflatePaths64 offsets paths outward (positive delta) or inward (negative
// delta) by delta units, joining edges per joinType and, for open paths,
// capping ends per endType. See ClipperOffset for the full algorithm.
func InflatePaths64(paths Paths64, delta float64, joinType JoinType, endType EndType, opts ...OffsetOptions) (Paths64, error) {
	if !joinType.valid() {
		return nil, ErrInvalidJoinType
	}
	if !endType.valid() {
		return nil, ErrInvalidEndType
	}
	var o OffsetOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	co := NewClipperOffset(o.normalized())
	co.AddPaths(paths, joinType, endType)
	return co.Execute(delta)
}
