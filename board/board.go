// Package board defines the read-only board-model surface the plane
// builder consumes, plus a minimal in-memory implementation used by tests
// and standalone tooling.
package board

import (
	"github.com/go-pcb/planefill/geom"
	"github.com/google/uuid"
)

// LayerName identifies a copper layer. Layers are compared by reference
// equality: two LayerName values naming the same layer must be the same
// pointer, which NewLayer guarantees by always allocating a fresh one.
type LayerName struct {
	name string
}

// NewLayer returns a new LayerName identity; callers keep the returned
// pointer and reuse it for every geometry on that layer.
func NewLayer(name string) *LayerName { return &LayerName{name: name} }

// String returns the layer's display name.
func (l *LayerName) String() string {
	if l == nil {
		return ""
	}
	return l.name
}

// BoardOutlinesLayer is the distinguished layer whose polygons define the
// physical board shape, as opposed to a copper layer.
var BoardOutlinesLayer = NewLayer("board_outlines")

// NetRef identifies a net signal. Like LayerName, nets are compared by
// reference equality.
type NetRef struct {
	name string
}

// NewNet returns a new NetRef identity.
func NewNet(name string) *NetRef { return &NetRef{name: name} }

func (n *NetRef) String() string {
	if n == nil {
		return "(no net)"
	}
	return n.name
}

// PlaneID is a stable total-order tiebreaker for planes of equal priority.
type PlaneID uuid.UUID

// NewPlaneID returns a fresh random identifier.
func NewPlaneID() PlaneID { return PlaneID(uuid.New()) }

// String renders the identifier in canonical UUID form.
func (id PlaneID) String() string { return uuid.UUID(id).String() }

// Compare returns -1, 0, or 1 comparing id to other lexicographically,
// matching the "lexicographic UUID" tiebreak of the plane ordering.
func (id PlaneID) Compare(other PlaneID) int {
	a, b := uuid.UUID(id), uuid.UUID(other)
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ConnectStyle selects how a plane unites with a same-net pad or via.
type ConnectStyle uint8

const (
	// ConnectSolid means no clearance cut-out around a same-net pad/via.
	ConnectSolid ConnectStyle = iota
	// ConnectNone means the plane treats a same-net pad/via as a foreign
	// obstacle requiring a full clearance cut.
	ConnectNone
	// connectThermal is reserved for round-trip compatibility with saved
	// files; the builder never receives it; see ParseConnectStyle.
	connectThermal
)

// ParseConnectStyle decodes a serialized connect-style name. Thermal is a
// recognized but unimplemented variant: deserializing it is a hard error
// rather than a silent fallback to Solid, per the stated non-goal.
func ParseConnectStyle(s string) (ConnectStyle, error) {
	switch s {
	case "solid":
		return ConnectSolid, nil
	case "none":
		return ConnectNone, nil
	case "thermal":
		return connectThermal, &UnsupportedConnectStyleError{Name: s}
	default:
		return 0, &UnsupportedConnectStyleError{Name: s}
	}
}

// Plane is the input to the fragment builder.
type Plane struct {
	ID           PlaneID
	Outline      geom.Path
	Layer        *LayerName
	Net          *NetRef
	Priority     int32
	MinWidth     geom.Length
	MinClearance geom.Length
	KeepOrphans  bool
	ConnectStyle ConnectStyle

	// Fragments is the output cache: build_fragments replaces it wholesale
	// and it is the only field the builder mutates.
	Fragments []geom.Path
}

// Less implements the total order of §4.8: priority ascending, tie-broken
// by the plane's stable identifier.
func (p *Plane) Less(other *Plane) bool {
	if p.Priority != other.Priority {
		return p.Priority < other.Priority
	}
	return p.ID.Compare(other.ID) < 0
}

// BoardPolygon is a polygon on some layer, typically a board outline.
type BoardPolygon struct {
	Layer *LayerName
	Path  geom.Path
}

// Hole is a circular cutout in a device footprint.
type Hole struct {
	Position geom.Point
	Diameter geom.Length
}

// Pad is a copper pad on a device footprint.
type Pad struct {
	Layer        *LayerName
	Net          *NetRef
	SceneOutline geom.Path
}

// IsOnLayer reports whether the pad is present on layer.
func (p Pad) IsOnLayer(layer *LayerName) bool { return p.Layer == layer }

// Footprint groups the holes and pads of one device.
type Footprint struct {
	Holes []Hole
	Pads  []Pad
}

// Device is one placed component.
type Device struct {
	Footprint Footprint
}

// Via is a plated through-hole belonging to a net segment.
type Via struct {
	Net          *NetRef
	SceneOutline geom.Path
}

// NetLine is a trace segment belonging to a net segment.
type NetLine struct {
	Layer        *LayerName
	Width        geom.Length
	SceneOutline geom.Path
}

// NetSegment groups the vias and net lines of one electrically connected
// net region.
type NetSegment struct {
	Net      *NetRef
	Vias     []Via
	NetLines []NetLine
}

// Board is the read-only snapshot surface the builder consumes.
type Board interface {
	Polygons() []BoardPolygon
	Planes() []*Plane
	Devices() []Device
	NetSegments() []NetSegment
}

// Snapshot is a plain in-memory Board, the reference implementation used
// by tests and standalone tools that don't carry their own board model.
type Snapshot struct {
	BoardPolygons    []BoardPolygon
	BoardPlanes      []*Plane
	BoardDevices     []Device
	BoardNetSegments []NetSegment
}

func (s *Snapshot) Polygons() []BoardPolygon  { return s.BoardPolygons }
func (s *Snapshot) Planes() []*Plane          { return s.BoardPlanes }
func (s *Snapshot) Devices() []Device         { return s.BoardDevices }
func (s *Snapshot) NetSegments() []NetSegment { return s.BoardNetSegments }
