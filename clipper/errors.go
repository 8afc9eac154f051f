package clipper

import "errors"

var (
	// ErrInvalidFillRule indicates a FillRule value outside the documented range.
	ErrInvalidFillRule = errors.New("clipper: invalid fill rule")

	// ErrInvalidClipType indicates a ClipType value outside the documented range.
	ErrInvalidClipType = errors.New("clipper: invalid clip type")

	// ErrInvalidJoinType indicates a JoinType value outside the documented range.
	ErrInvalidJoinType = errors.New("clipper: invalid join type")

	// ErrInvalidEndType indicates an EndType value outside the documented range.
	ErrInvalidEndType = errors.New("clipper: invalid end type")

	// ErrInvalidOptions indicates an invalid numeric option. Offset
	// operations do not return it: a non-positive arc tolerance selects the
	// default tolerance instead.
	ErrInvalidOptions = errors.New("clipper: invalid options")

	// ErrClipperExecution indicates the scanline algorithm could not
	// produce a result for the given input (e.g. numerically degenerate
	// edges it could not order).
	ErrClipperExecution = errors.New("clipper: execution failed")
)
