// Package planebuild computes the copper fragments of a single plane by
// running its outline through board clipping, obstacle subtraction,
// minimum-width enforcement, flattening to cut-in paths, and orphan
// removal.
package planebuild

import (
	"github.com/go-pcb/planefill/board"
	"github.com/go-pcb/planefill/clipper"
	"github.com/go-pcb/planefill/geom"
)

// Builder computes the fragments of exactly one plane against a read-only
// board snapshot. A Builder is not safe to share across goroutines; build
// independent planes with independent Builders.
type Builder struct {
	plane    *board.Plane
	snapshot board.Board

	result          clipper.Paths64
	sameNetContacts clipper.Paths64
	diagnostics     []Diagnostic
}

// Diagnostic is a non-fatal condition the builder recorded while computing
// fragments: the build still returns a result, but a caller that wants
// visibility into latent bugs (per the hole-seam fallback in §4.6 of the
// originating design) can inspect these afterward.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Message  string
}

// DiagnosticSeverity classifies a Diagnostic.
type DiagnosticSeverity uint8

const (
	// SeverityWarning marks a recoverable condition, e.g. a degenerate hole.
	SeverityWarning DiagnosticSeverity = iota
	// SeverityCritical marks a condition likely to produce invalid output,
	// e.g. a hole that could not be connected to its outline.
	SeverityCritical
)

// NewBuilder constructs a builder for plane against snapshot. Neither is
// copied; the builder only reads snapshot and only ever writes
// plane.Fragments.
func NewBuilder(plane *board.Plane, snapshot board.Board) *Builder {
	return &Builder{plane: plane, snapshot: snapshot}
}

// Diagnostics returns the non-fatal conditions recorded by the most recent
// BuildFragments call.
func (b *Builder) Diagnostics() []Diagnostic { return b.diagnostics }

// BuildFragments runs the full six-stage pipeline and both returns and
// caches the plane's fragments. It is idempotent: calling it repeatedly
// against an unchanged snapshot produces the same sequence.
func (b *Builder) BuildFragments() []geom.Path {
	b.diagnostics = nil
	b.sameNetContacts = nil

	b.seed()
	if !b.boardClip() {
		b.plane.Fragments = nil
		return nil
	}
	b.subtractObstacles()
	b.enforceMinimumWidth()
	flattened := b.flatten()
	flattened = b.removeOrphans(flattened)

	b.plane.Fragments = flattened
	return flattened
}

// seed installs the plane's own outline as the initial working set (stage 1).
func (b *Builder) seed() {
	ip := b.plane.Outline.ToIntPath()
	if ip == nil {
		b.result = nil
		return
	}
	b.result = clipper.Paths64{ip}
}
