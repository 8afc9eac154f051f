package planebuild

import (
	"github.com/go-pcb/planefill/clipper"
	"github.com/go-pcb/planefill/geom"
)

// flatten implements stage 5: xor the working set into a polygon tree,
// then walk it depth-first pairing each non-hole outline with its
// immediate hole children and converting each pair into one simple path
// with cut-ins. A hole's own children are nested outlines (holes of
// holes) and become new top-level outputs.
func (b *Builder) flatten() []geom.Path {
	tree, err := clipper.BooleanOpTree64(clipper.Xor, clipper.EvenOdd, clipper.EvenOdd, b.result, nil)
	if err != nil {
		return nil
	}
	var out []geom.Path
	for _, outline := range tree.Children() {
		b.flattenOutline(outline, &out)
	}
	return out
}

func (b *Builder) flattenOutline(outline *clipper.PolyPath64, out *[]geom.Path) {
	holes := make([]clipper.Path64, 0, outline.Count())
	for _, h := range outline.Children() {
		holes = append(holes, h.Polygon())
	}
	combined := b.convertHolesToCutIns(outline.Polygon(), holes)
	*out = append(*out, geom.FromIntPath(combined))

	for _, hole := range outline.Children() {
		for _, nested := range hole.Children() {
			b.flattenOutline(nested, out)
		}
	}
}
