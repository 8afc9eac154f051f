package planebuild

import (
	"testing"

	"github.com/go-pcb/planefill/board"
	"github.com/go-pcb/planefill/clipper"
	"github.com/go-pcb/planefill/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardSize is the side length, in nm, of the board every scenario test
// below builds on: 100 mm, matching the scale of spec.md §8's concrete
// scenarios rather than an arbitrary small fixture.
const boardSize = 100_000_000

func rectPlane(layer *board.LayerName, net *board.NetRef, priority int32) *board.Plane {
	return &board.Plane{
		ID:           board.NewPlaneID(),
		Outline:      geom.Rectangle(0, 0, boardSize, boardSize),
		Layer:        layer,
		Net:          net,
		Priority:     priority,
		MinWidth:     200_000,
		MinClearance: 200_000,
		KeepOrphans:  true,
	}
}

func boardOutlineSnapshot() *board.Snapshot {
	return &board.Snapshot{
		BoardPolygons: []board.BoardPolygon{
			{Layer: board.BoardOutlinesLayer, Path: geom.Rectangle(0, 0, boardSize, boardSize)},
		},
	}
}

func TestScenarioRectangularPlaneNoObstacles(t *testing.T) {
	layer := board.NewLayer("top")
	net := board.NewNet("GND")
	plane := rectPlane(layer, net, 0)
	snap := boardOutlineSnapshot()
	snap.BoardPlanes = []*board.Plane{plane}

	b := NewBuilder(plane, snap)
	frags := b.BuildFragments()
	require.Len(t, frags, 1)
	ip := frags[0].ToIntPath()
	bounds := clipper.Bounds64(ip)
	assert.Greater(t, bounds.Left, int64(0))
	assert.Greater(t, bounds.Top, int64(0))
	assert.Less(t, bounds.Right, int64(boardSize))
	assert.Less(t, bounds.Bottom, int64(boardSize))
}

// TestScenarioForeignPadCutsOutline is spec.md §8 scenario 2: a 100x100 mm
// board and plane, one foreign-net circular pad at the board center,
// 500 um clearance. The fragment must keep copper across the rest of the
// board but actually punch a cut-in hole around the pad.
func TestScenarioForeignPadCutsOutline(t *testing.T) {
	layer := board.NewLayer("top")
	selfNet := board.NewNet("GND")
	foreignNet := board.NewNet("VCC")
	plane := rectPlane(layer, selfNet, 0)
	plane.MinClearance = 500_000 // 500 um

	center := geom.Point{X: boardSize / 2, Y: boardSize / 2}
	snap := boardOutlineSnapshot()
	snap.BoardPlanes = []*board.Plane{plane}
	snap.BoardDevices = []board.Device{
		{
			Footprint: board.Footprint{
				Pads: []board.Pad{
					{Layer: layer, Net: foreignNet, SceneOutline: geom.Circle(center, 1_000_000)},
				},
			},
		},
	}

	b := NewBuilder(plane, snap)
	frags := b.BuildFragments()
	require.Len(t, frags, 1, "expected a single fragment with a cut-in")
	assert.Greater(t, len(frags[0].Vertices), 4, "expected a cut-in seam to add vertices")

	ip := frags[0].ToIntPath()
	padCenter := clipper.Point64{X: center.X, Y: center.Y}
	assert.False(t, clipper.PointInPath64(padCenter, ip, clipper.NonZero),
		"pad center should fall inside the cut-in hole, not the remaining copper")

	awayFromPad := clipper.Point64{X: 10_000_000, Y: 10_000_000}
	assert.True(t, clipper.PointInPath64(awayFromPad, ip, clipper.NonZero),
		"a point far from both the pad and the board edge should remain copper")
}

// TestScenarioSameNetViaSolidConnectNoCutout is spec.md §8 scenario 3: the
// same layout as scenario 2, but the obstacle is a same-net via with
// connect_style=Solid, so no cut-out should appear anywhere, including
// directly under the via.
func TestScenarioSameNetViaSolidConnectNoCutout(t *testing.T) {
	layer := board.NewLayer("top")
	net := board.NewNet("GND")
	plane := rectPlane(layer, net, 0)
	plane.ConnectStyle = board.ConnectSolid
	plane.MinClearance = 500_000

	center := geom.Point{X: boardSize / 2, Y: boardSize / 2}
	snap := boardOutlineSnapshot()
	snap.BoardPlanes = []*board.Plane{plane}
	snap.BoardNetSegments = []board.NetSegment{
		{
			Net: net,
			Vias: []board.Via{
				{Net: net, SceneOutline: geom.Circle(center, 1_000_000)},
			},
		},
	}

	b := NewBuilder(plane, snap)
	frags := b.BuildFragments()
	require.Len(t, frags, 1)

	ip := frags[0].ToIntPath()
	viaCenter := clipper.Point64{X: center.X, Y: center.Y}
	assert.True(t, clipper.PointInPath64(viaCenter, ip, clipper.NonZero),
		"solid connect on a same-net via must not punch a cut-in at the via")
}

// TestScenarioOrphanRemoval is spec.md §8 scenario 4: a foreign-net
// obstacle splits the plane into two disconnected islands, the same-net
// pad sits in only one of them, and keep_orphans=false must drop the
// other.
func TestScenarioOrphanRemoval(t *testing.T) {
	layer := board.NewLayer("top")
	net := board.NewNet("GND")
	foreignNet := board.NewNet("VCC")
	plane := rectPlane(layer, net, 0)
	plane.Outline = geom.Rectangle(0, 0, boardSize, 20_000_000)
	plane.KeepOrphans = false
	plane.MinClearance = 200_000
	plane.MinWidth = 200_000

	snap := boardOutlineSnapshot()
	snap.BoardPlanes = []*board.Plane{plane}
	snap.BoardDevices = []board.Device{
		{
			Footprint: board.Footprint{
				Pads: []board.Pad{
					// Foreign-net wall, full plane height plus overshoot,
					// splitting the plane into a left and a right island
					// well clear of min_clearance on either side.
					{Layer: layer, Net: foreignNet, SceneOutline: geom.Rectangle(48_000_000, -1_000_000, 52_000_000, 21_000_000)},
					// Same-net pad sitting only in the left island.
					{Layer: layer, Net: net, SceneOutline: geom.Circle(geom.Point{X: 10_000_000, Y: 10_000_000}, 1_000_000)},
				},
			},
		},
	}

	b := NewBuilder(plane, snap)
	frags := b.BuildFragments()
	require.Len(t, frags, 1, "only the island touching the same-net pad should survive")

	bounds := clipper.Bounds64(frags[0].ToIntPath())
	assert.Less(t, bounds.Right, int64(48_000_000), "the surviving fragment must be the left island, not the right one")
}

func TestScenarioHigherPriorityPlaneWins(t *testing.T) {
	layer := board.NewLayer("top")
	netA := board.NewNet("A")
	netB := board.NewNet("B")

	planeB := rectPlane(layer, netB, 10)
	planeB.Outline = geom.Rectangle(0, 0, boardSize/2, boardSize)
	planeA := rectPlane(layer, netA, 0)
	planeA.Outline = geom.Rectangle(boardSize*3/10, 0, boardSize, boardSize)

	snap := boardOutlineSnapshot()
	snap.BoardPlanes = []*board.Plane{planeA, planeB}

	bB := NewBuilder(planeB, snap)
	bB.BuildFragments()

	bA := NewBuilder(planeA, snap)
	fragsA := bA.BuildFragments()
	assert.NotEmpty(t, fragsA, "expected plane A to retain some area outside plane B's expanded region")
}

func TestEmptyBoardOutlineReturnsNilSilently(t *testing.T) {
	layer := board.NewLayer("top")
	net := board.NewNet("GND")
	plane := rectPlane(layer, net, 0)
	snap := &board.Snapshot{} // no board outline polygons at all

	b := NewBuilder(plane, snap)
	frags := b.BuildFragments()
	assert.Nil(t, frags, "want nil fragments for missing board outline")
}
